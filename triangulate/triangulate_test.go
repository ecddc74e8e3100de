package triangulate

import (
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

func square(cx, cz, half float64) []vec.Vec {
	return []vec.Vec{
		vec.NewSimVec(cx-half, 0, cz-half),
		vec.NewSimVec(cx+half, 0, cz-half),
		vec.NewSimVec(cx+half, 0, cz+half),
		vec.NewSimVec(cx-half, 0, cz+half),
	}
}

// projectLikeFace recomputes the same 2D projection Face uses
// internally, so a test can check the CCW/area contract on the
// triangles Face actually returned.
func projectLikeFace(outer []vec.Vec, all []vec.Vec) []point2 {
	normal := newellNormal(outer)
	u, v := basisFor(normal)
	origin := outer[0]
	pts := make([]point2, len(all))
	for i, p := range all {
		pts[i] = point2{p.Subtract(origin).Dot(u), p.Subtract(origin).Dot(v)}
	}
	return pts
}

func TestFaceDegenerateOuterReturnsNil(t *testing.T) {
	for _, outer := range [][]vec.Vec{nil, {vec.Zero}, {vec.Zero, vec.X}} {
		if tris := Face(outer, nil); tris != nil {
			t.Fatalf("Face(%v, nil) = %v, want nil", outer, tris)
		}
	}
}

func TestFaceConvexQuadNoHoles(t *testing.T) {
	outer := square(0, 0, 1)
	tris := Face(outer, nil)

	if len(tris) != 2 {
		t.Fatalf("len(tris) = %d, want 2", len(tris))
	}

	pts := projectLikeFace(outer, outer)
	seen := map[int]bool{}
	for _, tri := range tris {
		for _, idx := range tri {
			if idx < 0 || idx >= len(outer) {
				t.Fatalf("triangle %v references out-of-range index %d", tri, idx)
			}
			seen[idx] = true
		}
		a, b, c := pts[tri[0]], pts[tri[1]], pts[tri[2]]
		if area := triangleArea(a, b, c); area <= epsilon {
			t.Fatalf("triangle %v has non-positive signed area %g, want CCW with area > epsilon", tri, area)
		}
	}
	if len(seen) != len(outer) {
		t.Fatalf("triangles cover %d distinct vertices, want all %d outer vertices", len(seen), len(outer))
	}
}

func TestFaceWithSingleHoleBridges(t *testing.T) {
	outer := square(0, 0, 5)
	hole := square(0, 0, 1)

	tris := Face(outer, [][]vec.Vec{hole})
	if len(tris) == 0 {
		t.Fatal("Face returned no triangles for a square with an interior hole")
	}

	all := append(append([]vec.Vec(nil), outer...), hole...)
	pts := projectLikeFace(outer, all)

	holeStart := len(outer)
	holeSeen := make([]bool, len(hole))
	sumArea := 0.0
	for _, tri := range tris {
		for _, idx := range tri {
			if idx < 0 || idx >= len(all) {
				t.Fatalf("triangle %v references out-of-range index %d", tri, idx)
			}
			if idx >= holeStart {
				holeSeen[idx-holeStart] = true
			}
		}
		a, b, c := pts[tri[0]], pts[tri[1]], pts[tri[2]]
		area := triangleArea(a, b, c)
		if area <= epsilon {
			t.Fatalf("triangle %v has non-positive signed area %g, want CCW with area > epsilon", tri, area)
		}
		sumArea += area
	}
	for i, seen := range holeSeen {
		if !seen {
			t.Fatalf("hole vertex %d never appears in any triangle; hole was not bridged in", i)
		}
	}

	// The triangulated area must account for exactly the outer face
	// minus the hole: bridging that leaks area into or out of the hole
	// would throw this off.
	outerArea := signedAreaAbs(indexRange(0, len(outer)), pts)
	holeArea := signedAreaAbs(indexRange(holeStart, holeStart+len(hole)), pts)
	want := outerArea - holeArea
	if diff := sumArea - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("sum of triangle areas = %g, want outer-hole = %g - %g = %g", sumArea, outerArea, holeArea, want)
	}
}

func signedAreaAbs(ring []int, pts []point2) float64 {
	a := signedArea(ring, pts)
	if a < 0 {
		return -a
	}
	return a
}

func TestSignedAreaCCWAndCW(t *testing.T) {
	pts := []point2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	ring := []int{0, 1, 2, 3}

	if area := signedArea(ring, pts); area <= epsilon {
		t.Fatalf("signedArea(CCW square) = %g, want > epsilon", area)
	}

	reversed := reversedInts(ring)
	if area := signedArea(reversed, pts); area >= -epsilon {
		t.Fatalf("signedArea(reversed square) = %g, want < -epsilon", area)
	}
}

func TestIsConvex(t *testing.T) {
	a, b, c := point2{0, 0}, point2{1, 0}, point2{1, 1}
	if !isConvex(a, b, c) {
		t.Fatal("isConvex(CCW left turn) = false, want true")
	}
	if isConvex(a, c, b) {
		t.Fatal("isConvex(CW right turn) = true, want false")
	}
}
