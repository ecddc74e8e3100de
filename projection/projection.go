// Package projection implements the core world-to-screen pipeline:
// camera-frame construction, face front/back classification, hidden
// line removal, near-plane clipping and ortho/perspective division,
// turning a brep.Brep into a 2D line scene (scene2d.Scene2D). It is a
// direct Go port of the algorithm in the original source's
// export/projection.rs, restructured around brep.Brep/vec.Vec and the
// camera package's Frame instead of free functions over raw arrays.
package projection

import (
	"math"
	"sort"

	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Epsilon matches the kernel-wide geometric tolerance.
const Epsilon = 1e-9

// CreaseCosThreshold is the minimum normal-dot-product below which two
// front-facing faces sharing an edge are considered a feature crease
// (and so the edge stays visible rather than being treated as a flat
// continuation across a tessellated curved surface).
const CreaseCosThreshold = 0.9995

type edgeKey struct{ a, b int }

func newEdgeKey(v1, v2 int) (edgeKey, bool) {
	if v1 == v2 {
		return edgeKey{}, false
	}
	if v1 < v2 {
		return edgeKey{v1, v2}, true
	}
	return edgeKey{v2, v1}, true
}

type viewPoint struct{ x, y, z float64 }

type faceInfo struct {
	frontFacing bool
	normal      vec.Vec
}

// Brep projects b through cam using hlr, returning a named Scene2D.
// Degenerate camera frames and empty BReps yield an empty scene rather
// than an error.
func Brep(b *brep.Brep, cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	scene := scene2d.WithName(brepSceneName(b))
	if len(b.Vertices) == 0 {
		return scene
	}

	frame, ok := camera.Build(cam)
	if !ok {
		return scene
	}

	infos := computeFaceInfo(b, frame)
	adjacency := buildEdgeAdjacency(b)
	candidates := collectCandidateEdges(b, adjacency)

	path := scene2d.NewPath2D()
	for _, key := range candidates {
		if key.a < 0 || key.a >= len(b.Vertices) || key.b < 0 || key.b >= len(b.Vertices) {
			continue // InvalidIndex: skip silently
		}

		if hlr.HideHiddenEdges && !isEdgeVisible(key, adjacency, infos) {
			continue
		}

		startWorld := b.Vertices[key.a].Position
		endWorld := b.Vertices[key.b].Position

		startView := worldToView(startWorld, frame)
		endView := worldToView(endWorld, frame)

		startClip, endClip, ok := clipToNearPlane(startView, endView, frame.Near)
		if !ok {
			continue
		}

		start2D, ok := projectViewPoint(startClip, frame.Mode)
		if !ok {
			continue
		}
		end2D, ok := projectViewPoint(endClip, frame.Mode)
		if !ok {
			continue
		}

		if zeroLength2D(start2D, end2D) {
			continue
		}

		path.PushSegment(scene2d.Segment2D{Start: start2D, End: end2D})
	}

	scene.AddPath(*path)
	return scene
}

func brepSceneName(b *brep.Brep) string {
	return "BRep " + itoa(b.ID)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func worldToView(p vec.Vec, f camera.Frame) viewPoint {
	relative := camera.ToMgl(p).Sub(f.Position)
	return viewPoint{
		x: relative.Dot(f.Right),
		y: relative.Dot(f.Up),
		z: relative.Dot(f.Forward),
	}
}

func clipToNearPlane(start, end viewPoint, near float64) (viewPoint, viewPoint, bool) {
	if start.z < near && end.z < near {
		return viewPoint{}, viewPoint{}, false
	}
	if start.z < near {
		denom := end.z - start.z
		if math.Abs(denom) < Epsilon {
			return viewPoint{}, viewPoint{}, false
		}
		t := (near - start.z) / denom
		start = interpolate(start, end, t)
		start.z = near
	} else if end.z < near {
		denom := end.z - start.z
		if math.Abs(denom) < Epsilon {
			return viewPoint{}, viewPoint{}, false
		}
		t := (near - start.z) / denom
		end = interpolate(start, end, t)
		end.z = near
	}
	return start, end, true
}

func interpolate(start, end viewPoint, t float64) viewPoint {
	return viewPoint{
		x: start.x + (end.x-start.x)*t,
		y: start.y + (end.y-start.y)*t,
		z: start.z + (end.z-start.z)*t,
	}
}

func projectViewPoint(p viewPoint, mode camera.Mode) (scene2d.Vec2, bool) {
	switch mode {
	case camera.Perspective:
		if p.z <= Epsilon {
			return scene2d.Vec2{}, false
		}
		return scene2d.Vec2{X: p.x / p.z, Y: p.y / p.z}, true
	default:
		return scene2d.Vec2{X: p.x, Y: p.y}, true
	}
}

func zeroLength2D(a, b scene2d.Vec2) bool {
	return a.Subtract(b).LengthSq() <= Epsilon*Epsilon
}

func buildEdgeAdjacency(b *brep.Brep) map[edgeKey][]int {
	adjacency := make(map[edgeKey][]int)
	for faceIdx, face := range b.Faces {
		n := len(face.Loop)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			key, ok := newEdgeKey(face.Loop[i], face.Loop[(i+1)%n])
			if !ok {
				continue
			}
			faces := adjacency[key]
			found := false
			for _, f := range faces {
				if f == faceIdx {
					found = true
					break
				}
			}
			if !found {
				adjacency[key] = append(faces, faceIdx)
			}
		}
	}
	return adjacency
}

func collectCandidateEdges(b *brep.Brep, adjacency map[edgeKey][]int) []edgeKey {
	keys := make(map[edgeKey]struct{}, len(adjacency))
	for k := range adjacency {
		keys[k] = struct{}{}
	}
	for _, e := range b.Edges {
		if key, ok := newEdgeKey(e.V1, e.V2); ok {
			keys[key] = struct{}{}
		}
	}
	for _, e := range b.HoleEdges {
		if key, ok := newEdgeKey(e.V1, e.V2); ok {
			keys[key] = struct{}{}
		}
	}

	out := make([]edgeKey, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].a != out[j].a {
			return out[i].a < out[j].a
		}
		return out[i].b < out[j].b
	})
	return out
}

func computeFaceInfo(b *brep.Brep, frame camera.Frame) []faceInfo {
	infos := make([]faceInfo, len(b.Faces))
	for i, face := range b.Faces {
		normal, center, ok := faceNormalAndCenter(b, face)
		if !ok {
			infos[i] = faceInfo{frontFacing: true}
			continue
		}
		toCamera := frame.Position.Sub(camera.ToMgl(center))
		infos[i] = faceInfo{
			frontFacing: camera.ToMgl(normal).Dot(toCamera) > 0,
			normal:      normal,
		}
	}
	return infos
}

func faceNormalAndCenter(b *brep.Brep, face brep.Face) (vec.Vec, vec.Vec, bool) {
	points := make([]vec.Vec, 0, len(face.Loop))
	for _, idx := range face.Loop {
		if idx < 0 || idx >= len(b.Vertices) {
			continue
		}
		points = append(points, b.Vertices[idx].Position)
	}
	if len(points) < 3 {
		return vec.Zero, vec.Zero, false
	}

	center := vec.Zero
	for _, p := range points {
		center = center.Add(p)
	}
	center = center.Scale(1 / float64(len(points)))

	if face.HasNormal {
		if n, ok := vec.NormalizedOK(face.Normal); ok {
			return n, center, true
		}
	}

	p0 := points[0]
	for i := 1; i < len(points)-1; i++ {
		edgeA := points[i].Subtract(p0)
		edgeB := points[i+1].Subtract(p0)
		if n, ok := vec.NormalizedOK(edgeA.Cross(edgeB)); ok {
			return n, center, true
		}
	}
	return vec.Zero, vec.Zero, false
}

func isEdgeVisible(key edgeKey, adjacency map[edgeKey][]int, infos []faceInfo) bool {
	adjacent, ok := adjacency[key]
	if !ok || len(adjacent) == 0 {
		return true // non-manifold / wireframe-only edge
	}

	var frontFaces []faceInfo
	for _, fi := range adjacent {
		if fi < 0 || fi >= len(infos) {
			continue
		}
		if infos[fi].frontFacing {
			frontFaces = append(frontFaces, infos[fi])
		}
	}

	if len(frontFaces) == 0 {
		return false // all adjacent faces back-facing
	}
	if len(frontFaces) < len(adjacent) {
		return true // silhouette: mixed front/back
	}
	if len(adjacent) == 1 {
		return true
	}
	return hasCrease(frontFaces)
}

func hasCrease(faces []faceInfo) bool {
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			if faces[i].normal.Dot(faces[j].normal) < CreaseCosThreshold {
				return true
			}
		}
	}
	return false
}
