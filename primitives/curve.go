package primitives

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Curve is a control-point sequence whose geometry is, for now, its
// control points verbatim; interpolation is a future extension, and
// until then Curve is offset-equivalent to Polyline. Kept as a
// distinct type (rather than a Polyline alias) so a future smoothing
// pass has somewhere to live without changing the Polyline contract.
type Curve struct {
	Name          string
	ControlPoints []vec.Vec
	b             *brep.Brep
}

// NewCurve builds a Curve primitive with the given id.
func NewCurve(name string, id int, controlPoints []vec.Vec) *Curve {
	b := brep.New(id)
	idx := make([]int, len(controlPoints))
	for i, p := range controlPoints {
		idx[i] = b.PushVertex(p)
	}
	for i := 0; i+1 < len(idx); i++ {
		b.PushEdge(idx[i], idx[i+1])
	}
	return &Curve{Name: name, ControlPoints: controlPoints, b: b}
}

// Brep returns the owned BRep.
func (c *Curve) Brep() *brep.Brep { return c.b }

// ToProjectedScene2D projects the curve through cam.
func (c *Curve) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(c.b, cam, hlr)
}
