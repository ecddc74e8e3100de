// Package camera describes the pinhole camera and HLR switches the
// projection pipeline consumes, and builds the orthonormal view frame
// from them. Frame construction uses mgl64 (github.com/go-gl/mathgl),
// the vector/matrix library the akmonengine-feather example leans on
// throughout its actor/transform code, for the Cross/Dot/Normalize
// arithmetic that resolves Frame's basis vectors, instead of
// hand-rolling it a second time next to vec.Vec.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/aprice2704/geomkernel/vec"
)

// Epsilon matches the kernel-wide geometric tolerance.
const Epsilon = 1e-9

// Mode selects how view-space points become 2D.
type Mode int

// Projection modes.
const (
	Orthographic Mode = iota
	Perspective
)

// Camera is the pinhole camera state: eye position, look-at target, an
// up hint used to derive the view basis, the near-plane distance, and
// the projection mode.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Near     float64
	Mode     Mode
}

// Default matches the source's CameraParameters::default(): an
// orthographic camera sitting at (3,3,3) on the (1,1,1) diagonal,
// looking at the origin.
func Default() Camera {
	return Camera{
		Position: mgl64.Vec3{3, 3, 3},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
		Near:     0.01,
		Mode:     Orthographic,
	}
}

// HLROptions is the hidden-line-removal switch set; currently a single
// boolean, left as a struct so it can grow without breaking callers.
type HLROptions struct {
	HideHiddenEdges bool
}

// DefaultHLROptions enables hidden-line removal, matching the source's
// HlrOptions::default().
func DefaultHLROptions() HLROptions {
	return HLROptions{HideHiddenEdges: true}
}

// Frame is the camera's orthonormal view basis, resolved once per
// projection and reused for every edge.
type Frame struct {
	Position mgl64.Vec3
	Right    mgl64.Vec3
	Up       mgl64.Vec3
	Forward  mgl64.Vec3
	Near     float64
	Mode     Mode
}

// Build resolves c into a Frame. It fails (ok=false) when the target
// coincides with the position, or when every right-vector fallback
// (up hint, then world +Y, then world +X) is parallel to forward,
// the degenerate-camera case.
func Build(c Camera) (Frame, bool) {
	forward := c.Target.Sub(c.Position)
	if forward.LenSqr() <= Epsilon*Epsilon {
		return Frame{}, false
	}
	forward = forward.Normalize()

	right, ok := tryCross(forward, c.Up)
	if !ok {
		right, ok = tryCross(forward, mgl64.Vec3{0, 1, 0})
	}
	if !ok {
		right, ok = tryCross(forward, mgl64.Vec3{1, 0, 0})
	}
	if !ok {
		return Frame{}, false
	}

	up := right.Cross(forward)
	if up.LenSqr() <= Epsilon*Epsilon {
		return Frame{}, false
	}
	up = up.Normalize()

	near := math.Max(c.Near, Epsilon)

	return Frame{
		Position: c.Position,
		Right:    right,
		Up:       up,
		Forward:  forward,
		Near:     near,
		Mode:     c.Mode,
	}, true
}

func tryCross(forward, hint mgl64.Vec3) (mgl64.Vec3, bool) {
	c := forward.Cross(hint)
	if c.LenSqr() <= Epsilon*Epsilon {
		return mgl64.Vec3{}, false
	}
	return c.Normalize(), true
}

// ToMgl converts a kernel vec.Vec to an mgl64.Vec3.
func ToMgl(v vec.Vec) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), v.Y(), v.Z()}
}
