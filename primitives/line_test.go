package primitives

import (
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

func TestNewLineTwoVerticesOneEdge(t *testing.T) {
	l := NewLine("l", 0, vec.NewSimVec(0, 0, 0), vec.NewSimVec(1, 0, 0))
	b := l.Brep()
	if len(b.Vertices) != 2 {
		t.Fatalf("vertices = %d, want 2", len(b.Vertices))
	}
	if len(b.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(b.Edges))
	}
	if len(b.Faces) != 0 {
		t.Fatalf("faces = %d, want 0", len(b.Faces))
	}
}
