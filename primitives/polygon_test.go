package primitives

import (
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

func TestNewPolygonVerticesOnlyNoEdges(t *testing.T) {
	pts := []vec.Vec{
		vec.NewSimVec(0, 0, 0),
		vec.NewSimVec(1, 0, 0),
		vec.NewSimVec(1, 0, 1),
		vec.NewSimVec(0, 0, 1),
	}
	p := NewPolygon("p", 0, pts)
	if len(p.Brep().Vertices) != 4 {
		t.Fatalf("vertices = %d, want 4", len(p.Brep().Vertices))
	}
	if len(p.Brep().Edges) != 0 {
		t.Fatalf("edges = %d, want 0", len(p.Brep().Edges))
	}
	if got := p.Points(); len(got) != 4 {
		t.Fatalf("Points() len = %d, want 4", len(got))
	}
}
