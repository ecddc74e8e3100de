package primitives

import (
	"math"

	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/extrude"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Cylinder is a closed-disc Arc (full 2π sweep) extruded by height: a
// thin composition over Arc and the extrude engine, not a new
// geometric algorithm of its own.
type Cylinder struct {
	Name                  string
	Center                vec.Vec
	Radius, Height        float64
	Segments              int
	b                     *brep.Brep
}

// NewCylinder builds a Cylinder primitive with the given id, centered
// on Center with the given radius and height along Y.
func NewCylinder(name string, id int, center vec.Vec, radius, height float64, segments int) *Cylinder {
	bottomCenter := vec.NewSimVec(center.X(), center.Y()-height/2, center.Z())
	disc := NewArc("", 0, bottomCenter, radius, 0, 2*math.Pi, segments)
	b := extrude.Loops(id, disc.OuterLoopPoints(), nil, height)
	return &Cylinder{Name: name, Center: center, Radius: radius, Height: height, Segments: segments, b: b}
}

// Brep returns the owned BRep.
func (c *Cylinder) Brep() *brep.Brep { return c.b }

// ToProjectedScene2D projects the cylinder through cam.
func (c *Cylinder) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(c.b, cam, hlr)
}
