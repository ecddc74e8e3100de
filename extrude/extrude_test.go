package extrude

import (
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

func unitSquare() []vec.Vec {
	return []vec.Vec{
		vec.NewSimVec(0, 0, 0),
		vec.NewSimVec(1, 0, 0),
		vec.NewSimVec(1, 0, 1),
		vec.NewSimVec(0, 0, 1),
	}
}

func TestExtrudeCuboidTopology(t *testing.T) {
	b := Loops(1, unitSquare(), nil, 2)

	if len(b.Vertices) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(b.Vertices))
	}
	// bottom + top + 4 sides = 6 faces
	if len(b.Faces) != 6 {
		t.Fatalf("expected 6 faces, got %d", len(b.Faces))
	}
}

func TestExtrudeWithHoleRecordsFaceHoles(t *testing.T) {
	hole := []vec.Vec{
		vec.NewSimVec(0.25, 0, 0.25),
		vec.NewSimVec(0.75, 0, 0.25),
		vec.NewSimVec(0.75, 0, 0.75),
		vec.NewSimVec(0.25, 0, 0.75),
	}

	b := Loops(1, unitSquare(), [][]vec.Vec{hole}, 1)

	if len(b.FaceHoles) != 2 {
		t.Fatalf("expected 2 faces with holes recorded (bottom, top), got %d", len(b.FaceHoles))
	}
	for face, holes := range b.FaceHoles {
		if len(holes) != 1 {
			t.Errorf("face %d expected 1 hole loop, got %d", face, len(holes))
		}
	}
}

func TestExtrudeTooFewOuterVerticesIsEmpty(t *testing.T) {
	b := Loops(1, []vec.Vec{vec.Origin, vec.X}, nil, 1)
	if len(b.Vertices) != 0 {
		t.Errorf("expected empty brep for a 2-point outer loop, got %d vertices", len(b.Vertices))
	}
}
