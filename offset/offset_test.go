package offset

import (
	"math"
	"testing"

	"github.com/aprice2704/geomkernel/vec"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestHorizontalLineOffset(t *testing.T) {
	input := []vec.Vec{vec.NewSimVec(0, 0, 0), vec.NewSimVec(5, 0, 0)}

	r := Path(input, 1.0, ForceOpen, DefaultOptions())

	if len(r.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(r.Points))
	}
	if !approxEqual(r.Points[0].Z(), 1.0) || !approxEqual(r.Points[1].Z(), 1.0) {
		t.Errorf("expected both points at z=1, got %v %v", r.Points[0], r.Points[1])
	}
}

func TestAcuteVOuterBeveled(t *testing.T) {
	input := []vec.Vec{
		vec.NewSimVec(0, 0, 0),
		vec.NewSimVec(2, 0, 0),
		vec.NewSimVec(1, 0, 0.3),
	}

	r := Path(input, 0.3, ForceOpen, Options{Bevel: true, AcuteThresholdDegrees: 45})

	if len(r.Points) < 4 {
		t.Fatalf("expected >= 4 points, got %d", len(r.Points))
	}
	found := false
	for _, idx := range r.BeveledVertexIndices {
		if idx == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected vertex 1 beveled, got %v", r.BeveledVertexIndices)
	}
}

func TestClosedUnitSquareOffset(t *testing.T) {
	input := []vec.Vec{
		vec.NewSimVec(0, 0, 0),
		vec.NewSimVec(2, 0, 0),
		vec.NewSimVec(2, 0, 2),
		vec.NewSimVec(0, 0, 2),
		vec.NewSimVec(0, 0, 0),
	}

	r := Path(input, 0.2, Auto, DefaultOptions())

	if !r.IsClosed {
		t.Fatalf("expected closed result")
	}
	if len(r.Points) < 5 {
		t.Fatalf("expected >= 5 points, got %d", len(r.Points))
	}
	first, last := r.Points[0], r.Points[len(r.Points)-1]
	if !approxEqual(first.X(), last.X()) || !approxEqual(first.Z(), last.Z()) {
		t.Errorf("expected first == last, got %v vs %v", first, last)
	}
}

func TestOpenInnerCornerClipped(t *testing.T) {
	input := []vec.Vec{
		vec.NewSimVec(0, 0, 0),
		vec.NewSimVec(2, 0, 0),
		vec.NewSimVec(1, 0, 1),
		vec.NewSimVec(3, 0, 1),
	}

	r := Path(input, 0.5, ForceOpen, Options{Bevel: false, AcuteThresholdDegrees: 1})

	if len(r.Points) != 5 {
		t.Fatalf("expected exactly 5 points, got %d", len(r.Points))
	}

	sqrt2 := math.Sqrt2
	expX := 1 - 0.5/sqrt2
	expZ := 1 - 0.5/sqrt2

	if !approxEqual(r.Points[2].X(), expX) || !approxEqual(r.Points[2].Z(), expZ) {
		t.Errorf("point[2] = %v, want (%g,_,%g)", r.Points[2], expX, expZ)
	}
	if !approxEqual(r.Points[3].X(), 1) || !approxEqual(r.Points[3].Z(), 1.5) {
		t.Errorf("point[3] = %v, want (1,_,1.5)", r.Points[3])
	}
}

func TestZeroDistanceReturnsSanitizedInput(t *testing.T) {
	input := []vec.Vec{vec.NewSimVec(0, 0, 0), vec.NewSimVec(0, 0, 0), vec.NewSimVec(5, 0, 0)}

	r := Path(input, 0, ForceOpen, DefaultOptions())

	if len(r.Points) != 2 {
		t.Fatalf("expected duplicates dropped, got %d points", len(r.Points))
	}
}

func TestOffsetClosureMatchesInputClosure(t *testing.T) {
	closedInput := []vec.Vec{
		vec.NewSimVec(0, 0, 0),
		vec.NewSimVec(1, 0, 0),
		vec.NewSimVec(1, 0, 1),
		vec.NewSimVec(0, 0, 0),
	}
	r := Path(closedInput, 0.1, Auto, DefaultOptions())
	if !r.IsClosed {
		t.Errorf("expected auto-detected closure to be true")
	}

	openInput := []vec.Vec{vec.NewSimVec(0, 0, 0), vec.NewSimVec(1, 0, 0)}
	r2 := Path(openInput, 0.1, Auto, DefaultOptions())
	if r2.IsClosed {
		t.Errorf("expected auto-detected closure to be false")
	}
}
