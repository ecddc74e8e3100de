package primitives

import (
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

func TestNewWedgeVertexAndFaceCounts(t *testing.T) {
	w := NewWedge("w", 0, vec.Zero, 2, 3, 4)
	b := w.Brep()
	if len(b.Vertices) != 6 {
		t.Fatalf("vertices = %d, want 6 (3 bottom + 3 top)", len(b.Vertices))
	}
	// 2 caps + one side quad per edge of the triangular profile.
	if len(b.Faces) != 5 {
		t.Fatalf("faces = %d, want 5", len(b.Faces))
	}
}
