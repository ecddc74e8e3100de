// Package extrude implements the extrude engine: a planar outer loop
// (with optional hole loops) translated along +Y by a signed height,
// with top/bottom caps and side quads, following the same
// push-face-then-push-edges idiom as package sweep.
package extrude

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/vec"
)

const epsilon = 1e-9

// Loops extrudes an outer loop (plus optional hole loops), all
// Vector3 on a shared plane, by height along +Y, returning a fresh
// Brep with the given id.
func Loops(id int, outer []vec.Vec, holes [][]vec.Vec, height float64) *brep.Brep {
	b := brep.New(id)
	if len(outer) < 3 {
		return b
	}

	up := vec.NewSimVec(0, height, 0)
	normal := newellNormal(outer)
	reverseBottom := normal.Dot(vec.Y) > 0

	bottomOuter := pushLoop(b, outer, vec.Zero, reverseBottom)
	topOuter := pushLoop(b, outer, up, !reverseBottom)

	bottomHoles := make([][]int, 0, len(holes))
	topHoles := make([][]int, 0, len(holes))
	for _, h := range holes {
		bottomHoles = append(bottomHoles, pushLoop(b, h, vec.Zero, reverseBottom))
		topHoles = append(topHoles, pushLoop(b, h, up, !reverseBottom))
	}

	bottomFace := b.PushFace(bottomOuter, bottomHoles)
	topFace := b.PushFace(topOuter, topHoles)
	b.FaceHoles[bottomFace] = rangeIdx(len(bottomHoles))
	b.FaceHoles[topFace] = rangeIdx(len(topHoles))

	sideQuadsFromOuter(b, outer, bottomOuter, topOuter, reverseBottom)
	for hi, h := range holes {
		sideQuadsFromHole(b, h, bottomHoles[hi], topHoles[hi], reverseBottom)
	}

	return b
}

// pushLoop pushes a translated (and optionally reversed) copy of loop
// as new vertices, returning their indices in emission order.
func pushLoop(b *brep.Brep, loop []vec.Vec, offset vec.Vec, reverse bool) []int {
	ordered := loop
	if reverse {
		ordered = reversedVecs(loop)
	}
	idx := make([]int, len(ordered))
	for i, p := range ordered {
		idx[i] = b.PushVertex(p.Add(offset))
	}
	return idx
}

func rangeIdx(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// sideQuadsFromOuter emits one quad + its 4 edges per outer-loop edge,
// using the ORIGINAL (unreversed) loop order, mapping back into the
// (possibly-reversed) bottom/top index arrays.
func sideQuadsFromOuter(b *brep.Brep, original []vec.Vec, bottomIdx, topIdx []int, bottomReversed bool) {
	n := len(original)
	bottomAt := indexer(bottomIdx, bottomReversed, n)
	topAt := indexer(topIdx, !bottomReversed, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		quad := []int{bottomAt(i), bottomAt(j), topAt(j), topAt(i)}
		addFaceWithEdges(b, quad)
	}
}

// sideQuadsFromHole mirrors sideQuadsFromOuter but reverses winding so
// the side-face normal points into the hole rather than out of it.
func sideQuadsFromHole(b *brep.Brep, original []vec.Vec, bottomIdx, topIdx []int, bottomReversed bool) {
	n := len(original)
	if n == 0 {
		return
	}
	bottomAt := indexer(bottomIdx, bottomReversed, n)
	topAt := indexer(topIdx, !bottomReversed, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		quad := []int{bottomAt(i), topAt(i), topAt(j), bottomAt(j)}
		addFaceWithEdges(b, quad)
	}
}

// indexer returns a function mapping an original-loop position to the
// corresponding entry of idx, accounting for idx having been built
// from a reversed copy of the original loop.
func indexer(idx []int, reversed bool, n int) func(int) int {
	return func(pos int) int {
		if !reversed {
			return idx[pos]
		}
		return idx[n-1-pos]
	}
}

func addFaceWithEdges(b *brep.Brep, loop []int) {
	if len(loop) < 3 {
		return
	}
	b.PushFace(loop, nil)
	for i := range loop {
		b.PushEdge(loop[i], loop[(i+1)%len(loop)])
	}
}

func reversedVecs(in []vec.Vec) []vec.Vec {
	out := make([]vec.Vec, len(in))
	for i, p := range in {
		out[len(in)-1-i] = p
	}
	return out
}

// newellNormal computes a loop's normal via Newell's method, robust to
// mild non-planarity/collinear runs that a simple 3-point cross
// product would trip on.
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
