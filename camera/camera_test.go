package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBuildDegenerateWhenTargetEqualsPosition(t *testing.T) {
	c := Default()
	c.Target = c.Position
	if _, ok := Build(c); ok {
		t.Errorf("expected degenerate frame when target == position")
	}
}

func TestBuildOrthonormalBasis(t *testing.T) {
	c := Camera{
		Position: mgl64.Vec3{0, 0, 5},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
		Near:     0.01,
		Mode:     Orthographic,
	}
	f, ok := Build(c)
	if !ok {
		t.Fatal("expected valid frame")
	}
	if math.Abs(f.Right.Dot(f.Up)) > 1e-9 || math.Abs(f.Right.Dot(f.Forward)) > 1e-9 || math.Abs(f.Up.Dot(f.Forward)) > 1e-9 {
		t.Errorf("basis not orthogonal: right=%v up=%v forward=%v", f.Right, f.Up, f.Forward)
	}
	if math.Abs(f.Forward.Len()-1) > 1e-9 {
		t.Errorf("forward not unit length: %v", f.Forward)
	}
}

func TestBuildFallsBackWhenUpParallelToForward(t *testing.T) {
	c := Camera{
		Position: mgl64.Vec3{0, 0, 5},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 0, 1}, // parallel to forward
		Near:     0.01,
	}
	f, ok := Build(c)
	if !ok {
		t.Fatal("expected fallback to succeed via world +Y or +X")
	}
	if f.Right.LenSqr() <= Epsilon*Epsilon {
		t.Errorf("expected a non-degenerate right vector")
	}
}
