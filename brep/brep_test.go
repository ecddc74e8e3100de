package brep

import (
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

func TestPushVertexIndexEqualsPosition(t *testing.T) {
	b := New(1)
	for i := 0; i < 5; i++ {
		idx := b.PushVertex(vec.NewSimVec(float64(i), 0, 0))
		if idx != i {
			t.Errorf("vertex %d got index %d", i, idx)
		}
	}
}

func TestGetVerticesByFaceIDOutOfRangeReturnsEmpty(t *testing.T) {
	b := New(1)
	b.PushVertex(vec.Origin)
	if got := b.GetVerticesByFaceID(7); got != nil {
		t.Errorf("expected nil for out-of-range face, got %v", got)
	}
}

func TestGetVerticesAndHolesByFaceID(t *testing.T) {
	b := New(1)
	outer := []int{
		b.PushVertex(vec.NewSimVec(0, 0, 0)),
		b.PushVertex(vec.NewSimVec(4, 0, 0)),
		b.PushVertex(vec.NewSimVec(4, 0, 4)),
		b.PushVertex(vec.NewSimVec(0, 0, 4)),
	}
	hole := []int{
		b.PushVertex(vec.NewSimVec(1, 0, 1)),
		b.PushVertex(vec.NewSimVec(2, 0, 1)),
		b.PushVertex(vec.NewSimVec(2, 0, 2)),
		b.PushVertex(vec.NewSimVec(1, 0, 2)),
	}
	f := b.PushFace(outer, [][]int{hole})

	outPts, holePts := b.GetVerticesAndHolesByFaceID(f)
	if len(outPts) != 4 {
		t.Fatalf("expected 4 outer points, got %d", len(outPts))
	}
	if len(holePts) != 1 || len(holePts[0]) != 4 {
		t.Fatalf("expected 1 hole of 4 points, got %v", holePts)
	}
}

func TestRecomputeBoundaryFlags(t *testing.T) {
	b := New(1)
	v := make([]int, 4)
	v[0] = b.PushVertex(vec.NewSimVec(0, 0, 0))
	v[1] = b.PushVertex(vec.NewSimVec(1, 0, 0))
	v[2] = b.PushVertex(vec.NewSimVec(1, 0, 1))
	v[3] = b.PushVertex(vec.NewSimVec(0, 0, 1))

	e := b.PushEdge(v[0], v[1])
	b.PushFace(v, nil)
	b.RecomputeBoundaryFlags()

	if !b.Edges[e].Boundary {
		t.Errorf("edge used by a single face should be boundary")
	}
}

func TestPushFaceRejectsTooFewVertices(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic pushing a 2-vertex face")
		}
	}()
	b := New(1)
	v0 := b.PushVertex(vec.Origin)
	v1 := b.PushVertex(vec.NewSimVec(1, 0, 0))
	b.PushFace([]int{v0, v1}, nil)
}
