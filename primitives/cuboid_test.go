package primitives

import (
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

// TestNewCuboidVertexAndFaceCounts exercises the extrude end-to-end
// scenario: a rectangle profile extruded by height must yield 8
// vertices (4 bottom + 4 top) and 6 faces (2 caps + 4 sides).
func TestNewCuboidVertexAndFaceCounts(t *testing.T) {
	c := NewCuboid("c", 0, vec.Zero, 2, 3, 4)
	b := c.Brep()
	if len(b.Vertices) != 8 {
		t.Fatalf("vertices = %d, want 8", len(b.Vertices))
	}
	if len(b.Faces) != 6 {
		t.Fatalf("faces = %d, want 6", len(b.Faces))
	}
	if len(b.Edges) != 16 {
		t.Fatalf("edges = %d, want 16 (4 per side face)", len(b.Edges))
	}
}
