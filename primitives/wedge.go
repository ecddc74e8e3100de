package primitives

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/extrude"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Wedge is a right-triangle cross-section (in the XZ plane, the right
// angle at the -X/-Z corner) extruded by height, another thin
// composition over a primitive (here Polygon) and the extrude engine.
type Wedge struct {
	Name                        string
	Center                      vec.Vec
	Width, Height, Depth        float64
	b                           *brep.Brep
}

// NewWedge builds a Wedge primitive with the given id.
func NewWedge(name string, id int, center vec.Vec, width, height, depth float64) *Wedge {
	halfW, halfH, halfD := width/2, height/2, depth/2
	bottomY := center.Y() - halfH

	profile := NewPolygon("", 0, []vec.Vec{
		vec.NewSimVec(center.X()-halfW, bottomY, center.Z()-halfD),
		vec.NewSimVec(center.X()+halfW, bottomY, center.Z()-halfD),
		vec.NewSimVec(center.X()-halfW, bottomY, center.Z()+halfD),
	})
	b := extrude.Loops(id, profile.Points(), nil, height)
	return &Wedge{Name: name, Center: center, Width: width, Height: height, Depth: depth, b: b}
}

// Brep returns the owned BRep.
func (w *Wedge) Brep() *brep.Brep { return w.b }

// ToProjectedScene2D projects the wedge through cam.
func (w *Wedge) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(w.b, cam, hlr)
}
