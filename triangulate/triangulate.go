// Package triangulate implements the face-triangulation interface
// contract of the kernel: ear-clipping with right-most-point hole
// bridging, matching the approach documented (if inconsistently
// finished) in the original source's triangulate.rs. No ready-made
// triangulation library turned up anywhere in the reference pack, so
// this is a from-scratch implementation of the documented contract;
// see DESIGN.md for why this is the one hand-rolled algorithm in the
// kernel rather than a wired third-party dependency.
package triangulate

import (
	"math"
	"sort"

	"github.com/aprice2704/geomkernel/vec"
)

const epsilon = 1e-9

type point2 struct{ x, y float64 }

// Face triangulates an outer loop plus zero or more hole loops (all
// Vector3, assumed coplanar up to epsilon). It returns index triples
// into the concatenated outer ++ holes[0] ++ holes[1] ++ ... list,
// each triangle CCW when viewed from the face normal, with signed
// area > epsilon. Degenerate input (outer loop < 3 points) returns nil.
func Face(outer []vec.Vec, holes [][]vec.Vec) [][3]int {
	if len(outer) < 3 {
		return nil
	}

	all := append([]vec.Vec(nil), outer...)
	holeIndexRanges := make([][2]int, 0, len(holes))
	for _, h := range holes {
		start := len(all)
		all = append(all, h...)
		holeIndexRanges = append(holeIndexRanges, [2]int{start, len(all)})
	}

	normal := newellNormal(outer)
	u, v := basisFor(normal)
	pts := make([]point2, len(all))
	for i, p := range all {
		pts[i] = point2{p.Subtract(all[0]).Dot(u), p.Subtract(all[0]).Dot(v)}
	}

	ring := indexRange(0, len(outer))
	if signedArea(ring, pts) < 0 {
		ring = reversedInts(ring)
	}

	type holeRing struct {
		idx     []int
		rightX  float64
	}
	holeRings := make([]holeRing, 0, len(holes))
	for _, r := range holeIndexRanges {
		hi := indexRange(r[0], r[1])
		if signedArea(hi, pts) > 0 {
			hi = reversedInts(hi)
		}
		rx := math.Inf(-1)
		for _, idx := range hi {
			if pts[idx].x > rx {
				rx = pts[idx].x
			}
		}
		holeRings = append(holeRings, holeRing{idx: hi, rightX: rx})
	}
	sort.Slice(holeRings, func(i, j int) bool { return holeRings[i].rightX > holeRings[j].rightX })

	for _, hr := range holeRings {
		ring = bridgeHole(ring, hr.idx, pts)
	}

	return earClip(ring, pts)
}

func indexRange(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func reversedInts(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

func signedArea(ring []int, pts []point2) float64 {
	n := len(ring)
	area := 0.0
	for i := 0; i < n; i++ {
		a := pts[ring[i]]
		b := pts[ring[(i+1)%n]]
		area += a.x*b.y - b.x*a.y
	}
	return area * 0.5
}

// bridgeHole splices hole into ring via the right-most hole vertex and
// its nearest visible ring vertex, duplicating both bridge endpoints
// so the result remains a single simple polygon.
func bridgeHole(ring, hole []int, pts []point2) []int {
	hvPos := 0
	best := math.Inf(-1)
	for i, idx := range hole {
		if pts[idx].x > best {
			best = pts[idx].x
			hvPos = i
		}
	}
	hv := hole[hvPos]
	rotated := append(append([]int(nil), hole[hvPos:]...), hole[:hvPos]...)

	ov, ovPos := findVisible(ring, hv, pts)

	newRing := make([]int, 0, len(ring)+len(rotated)+2)
	newRing = append(newRing, ring[:ovPos+1]...)
	newRing = append(newRing, rotated...)
	newRing = append(newRing, hv, ov)
	newRing = append(newRing, ring[ovPos+1:]...)
	return newRing
}

// findVisible returns the ring vertex nearest to hv whose connecting
// segment does not properly cross any ring edge. Falls back to the
// plain nearest vertex if no candidate is fully visible, matching the
// documented robustness fallback for this bridging step.
func findVisible(ring []int, hv int, pts []point2) (int, int) {
	bestPos, bestVisiblePos := -1, -1
	bestDist, bestVisibleDist := math.Inf(1), math.Inf(1)
	for i, idx := range ring {
		d := dist2(pts[hv], pts[idx])
		if d < bestDist {
			bestDist = d
			bestPos = i
		}
		if segmentVisible(ring, hv, idx, pts) && d < bestVisibleDist {
			bestVisibleDist = d
			bestVisiblePos = i
		}
	}
	if bestVisiblePos >= 0 {
		return ring[bestVisiblePos], bestVisiblePos
	}
	return ring[bestPos], bestPos
}

func segmentVisible(ring []int, a, b int, pts []point2) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		c, d := ring[i], ring[(i+1)%n]
		if c == a || c == b || d == a || d == b {
			continue
		}
		if segmentsIntersect(pts[a], pts[b], pts[c], pts[d]) {
			return false
		}
	}
	return true
}

func segmentsIntersect(p1, p2, p3, p4 point2) bool {
	d1 := cross(sub(p4, p3), sub(p1, p3))
	d2 := cross(sub(p4, p3), sub(p2, p3))
	d3 := cross(sub(p2, p1), sub(p3, p1))
	d4 := cross(sub(p2, p1), sub(p4, p1))
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func dist2(a, b point2) float64 {
	dx, dy := a.x-b.x, a.y-b.y
	return dx*dx + dy*dy
}

func sub(a, b point2) point2 { return point2{a.x - b.x, a.y - b.y} }
func cross(a, b point2) float64 { return a.x*b.y - a.y*b.x }

// earClip triangulates a simple polygon (given as a ring of indices
// into pts) by repeatedly clipping convex, empty ears.
func earClip(ring []int, pts []point2) [][3]int {
	poly := append([]int(nil), ring...)
	var tris [][3]int

	guard := 0
	for len(poly) > 3 && guard < len(ring)*len(ring)+16 {
		guard++
		earFound := false
		n := len(poly)
		for i := 0; i < n; i++ {
			ia := poly[(i-1+n)%n]
			ib := poly[i]
			ic := poly[(i+1)%n]

			if !isConvex(pts[ia], pts[ib], pts[ic]) {
				continue
			}
			if triangleArea(pts[ia], pts[ib], pts[ic]) <= epsilon {
				continue
			}
			if anyOtherVertexInside(poly, i, pts, ia, ib, ic) {
				continue
			}

			tris = append(tris, [3]int{ia, ib, ic})
			poly = append(append([]int(nil), poly[:i]...), poly[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			break // robustness fallback: stop rather than loop forever on degenerate input
		}
	}
	if len(poly) == 3 {
		tris = append(tris, [3]int{poly[0], poly[1], poly[2]})
	}
	return tris
}

func isConvex(a, b, c point2) bool {
	return cross(sub(b, a), sub(c, b)) > 0
}

func triangleArea(a, b, c point2) float64 {
	return cross(sub(b, a), sub(c, a)) * 0.5
}

func anyOtherVertexInside(poly []int, skipPos int, pts []point2, a, b, c int) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		if i == skipPos || i == (skipPos-1+n)%n || i == (skipPos+1)%n {
			continue
		}
		idx := poly[i]
		if idx == a || idx == b || idx == c {
			continue
		}
		if pointInTriangle(pts[idx], pts[a], pts[b], pts[c]) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c point2) bool {
	d1 := cross(sub(p, a), sub(b, a))
	d2 := cross(sub(p, b), sub(c, b))
	d3 := cross(sub(p, c), sub(a, c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// newellNormal computes a loop's normal via Newell's method.
func newellNormal(loop []vec.Vec) vec.Vec {
	n := len(loop)
	nx, ny, nz := 0.0, 0.0, 0.0
	for i := 0; i < n; i++ {
		a := loop[i]
		c := loop[(i+1)%n]
		nx += (a.Y() - c.Y()) * (a.Z() + c.Z())
		ny += (a.Z() - c.Z()) * (a.X() + c.X())
		nz += (a.X() - c.X()) * (a.Y() + c.Y())
	}
	raw := vec.NewSimVec(nx, ny, nz)
	if nrm, ok := vec.NormalizedOK(raw); ok {
		return nrm
	}
	return vec.Y
}

// basisFor returns an orthonormal (u, v) pair spanning the plane
// perpendicular to normal, for projecting a coplanar loop to 2D.
func basisFor(normal vec.Vec) (vec.Vec, vec.Vec) {
	reference := vec.Y
	if math.Abs(normal.Dot(reference)) > 0.95 {
		reference = vec.X
	}
	u, ok := vec.NormalizedOK(reference.Cross(normal))
	if !ok {
		u = vec.X
	}
	v := normal.Cross(u)
	return u, v
}
