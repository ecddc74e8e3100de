package primitives

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/extrude"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Cuboid is a Rectangle profile, centered on its own bottom face,
// extruded by height, mirroring how the original source's cuboid.rs
// builds an explicit bottom face and hands it to extrude_brep_face
// rather than deriving a new solid-construction algorithm.
type Cuboid struct {
	Name                        string
	Center                      vec.Vec
	Width, Height, Depth        float64
	b                           *brep.Brep
}

// NewCuboid builds a Cuboid primitive with the given id, centered on
// Center with the given width (X), height (Y) and depth (Z).
func NewCuboid(name string, id int, center vec.Vec, width, height, depth float64) *Cuboid {
	bottomCenter := vec.NewSimVec(center.X(), center.Y()-height/2, center.Z())
	profile := NewRectangle("", 0, bottomCenter, width, depth)
	b := extrude.Loops(id, profile.Points(), nil, height)
	return &Cuboid{Name: name, Center: center, Width: width, Height: height, Depth: depth, b: b}
}

// Brep returns the owned BRep.
func (c *Cuboid) Brep() *brep.Brep { return c.b }

// ToProjectedScene2D projects the cuboid through cam.
func (c *Cuboid) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(c.b, cam, hlr)
}
