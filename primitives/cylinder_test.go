package primitives

import (
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

func TestNewCylinderVertexAndFaceCounts(t *testing.T) {
	segments := 12
	c := NewCylinder("c", 0, vec.Zero, 1, 2, segments)
	b := c.Brep()
	if len(b.Vertices) != 2*segments {
		t.Fatalf("vertices = %d, want %d", len(b.Vertices), 2*segments)
	}
	// 2 caps + one side quad per segment.
	if len(b.Faces) != segments+2 {
		t.Fatalf("faces = %d, want %d", len(b.Faces), segments+2)
	}
}
