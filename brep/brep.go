// Package brep implements the boundary-representation graph: vertices,
// edges, hole-loop edges and faces-with-holes, built additively the way
// eshell.go grows its Vertex/Edge/Panel slices (index == insertion
// position, never reused). Unlike eshell's EShell, a Brep is treated as
// immutable once handed to a consumer, operations like extrude and
// sweep build a fresh Brep rather than mutating one in place.
//
// Half-edge back-references (declared but "largely unused" in the
// source this was distilled from) are omitted entirely per the choice
// recorded in DESIGN.md: projection and triangulation only need the
// index-based outer-loop representation below.
package brep

import (
	"github.com/aprice2704/geomkernel/internal/geomerr"
	"github.com/aprice2704/geomkernel/vec"
)

// Vertex is a single point in the graph.
type Vertex struct {
	Position vec.Vec
}

// Edge is an unordered pair of vertex indices. Boundary is true when
// the edge belongs to at most one face; it is not maintained
// automatically on push (faces are often pushed after their edges);
// call (*Brep).RecomputeBoundaryFlags after a Brep's topology is final.
type Edge struct {
	V1, V2   int
	Boundary bool
}

// Face is an outer loop (CCW viewed from +normal) with zero or more
// hole loops, each stored in Holes as a loop of vertex indices.
type Face struct {
	Loop      []int
	Holes     [][]int // hole loops, each a cyclic list of vertex indices, stored directly (mirrors FaceHoles but keeps the common case self-contained)
	Normal    vec.Vec
	HasNormal bool
	Area      float64
}

// Brep is a single boundary-representation solid or sheet.
type Brep struct {
	ID        int
	Vertices  []Vertex
	Edges     []Edge
	HoleEdges []Edge
	Faces     []Face
	// FaceHoles maps a face index to the indices (into Faces[f].Holes)
	// of its hole loops. Populated by extrude for parity with the
	// face_holes_map field of the data model this graph is modeled on;
	// since Faces[f].Holes already stores the loops directly, no
	// accessor needs to read FaceHoles back out. See DESIGN.md.
	FaceHoles map[int][]int
}

// New creates an empty Brep with the given identifier.
func New(id int) *Brep {
	return &Brep{ID: id, FaceHoles: map[int][]int{}}
}

// Clear wipes all arrays, keeping the identifier.
func (b *Brep) Clear() {
	b.Vertices = nil
	b.Edges = nil
	b.HoleEdges = nil
	b.Faces = nil
	b.FaceHoles = map[int][]int{}
}

// PushVertex appends a vertex and returns its index.
func (b *Brep) PushVertex(p vec.Vec) int {
	b.Vertices = append(b.Vertices, Vertex{Position: p})
	return len(b.Vertices) - 1
}

// PushEdge appends an outer/primary edge and returns its index. Panics
// (via geomerr) if v1 == v2 or either index is out of range: a
// degenerate edge request is a programmer error, not degenerate input,
// since callers are expected to have already sanitized their point
// sequence before reaching the graph.
func (b *Brep) PushEdge(v1, v2 int) int {
	b.checkEdgeVerts(v1, v2)
	b.Edges = append(b.Edges, Edge{V1: v1, V2: v2})
	return len(b.Edges) - 1
}

// PushHoleEdge appends a hole-loop edge and returns its index.
func (b *Brep) PushHoleEdge(v1, v2 int) int {
	b.checkEdgeVerts(v1, v2)
	b.HoleEdges = append(b.HoleEdges, Edge{V1: v1, V2: v2})
	return len(b.HoleEdges) - 1
}

func (b *Brep) checkEdgeVerts(v1, v2 int) {
	if v1 == v2 {
		geomerr.Invariant("brep: degenerate edge %d==%d", v1, v2)
	}
	geomerr.CheckIndex("vertex", v1, len(b.Vertices))
	geomerr.CheckIndex("vertex", v2, len(b.Vertices))
}

// PushFace appends a face with the given outer loop and optional hole
// loops, and returns its index. Panics if the outer loop has fewer
// than 3 indices or any index is out of range.
func (b *Brep) PushFace(loop []int, holes [][]int) int {
	if len(loop) < 3 {
		geomerr.Invariant("brep: face loop has %d vertices, need >= 3", len(loop))
	}
	for _, v := range loop {
		geomerr.CheckIndex("vertex", v, len(b.Vertices))
	}
	for _, h := range holes {
		for _, v := range h {
			geomerr.CheckIndex("vertex", v, len(b.Vertices))
		}
	}
	b.Faces = append(b.Faces, Face{Loop: append([]int(nil), loop...), Holes: holes})
	return len(b.Faces) - 1
}

// GetVerticesByFaceID flattens the outer loop of face f into world
// positions. Out-of-range f returns nil rather than aborting.
func (b *Brep) GetVerticesByFaceID(f int) []vec.Vec {
	if f < 0 || f >= len(b.Faces) {
		return nil
	}
	return b.loopPositions(b.Faces[f].Loop)
}

// GetVerticesAndHolesByFaceID returns the outer loop plus hole loops
// of face f, as world positions, reading Faces[f].Holes directly.
// Out-of-range f returns (nil, nil).
func (b *Brep) GetVerticesAndHolesByFaceID(f int) ([]vec.Vec, [][]vec.Vec) {
	if f < 0 || f >= len(b.Faces) {
		return nil, nil
	}
	face := b.Faces[f]
	outer := b.loopPositions(face.Loop)
	holes := make([][]vec.Vec, 0, len(face.Holes))
	for _, h := range face.Holes {
		holes = append(holes, b.loopPositions(h))
	}
	return outer, holes
}

func (b *Brep) loopPositions(loop []int) []vec.Vec {
	out := make([]vec.Vec, 0, len(loop))
	for _, idx := range loop {
		if idx < 0 || idx >= len(b.Vertices) {
			continue // InvalidIndex: skip silently rather than panic
		}
		out = append(out, b.Vertices[idx].Position)
	}
	return out
}

// RecomputeBoundaryFlags sets Edges[i].Boundary true iff the edge is
// adjacent to at most one face, by walking every face's outer loop
// cyclically and matching against Edges by endpoint pair (undirected).
// Hole edges are left untouched, holes are always interior to their
// owning face by construction.
func (b *Brep) RecomputeBoundaryFlags() {
	counts := make([]int, len(b.Edges))
	index := make(map[[2]int]int, len(b.Edges))
	for i, e := range b.Edges {
		index[key(e.V1, e.V2)] = i
	}
	for _, f := range b.Faces {
		n := len(f.Loop)
		for i := 0; i < n; i++ {
			a, c := f.Loop[i], f.Loop[(i+1)%n]
			if ei, ok := index[key(a, c)]; ok {
				counts[ei]++
			}
		}
	}
	for i := range b.Edges {
		b.Edges[i].Boundary = counts[i] <= 1
	}
}

func key(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
