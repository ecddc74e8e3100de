package primitives

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Rectangle emits four vertices on the XZ plane in CCW order around
// +Y, with no edges, it is a pure profile template meant to be
// extruded (see Cuboid) or sampled directly by sweep/offset callers.
type Rectangle struct {
	Name          string
	Center        vec.Vec
	Width, Depth  float64
	b             *brep.Brep
}

// NewRectangle builds a Rectangle primitive with the given id.
func NewRectangle(name string, id int, center vec.Vec, width, depth float64) *Rectangle {
	b := brep.New(id)
	halfW := width / 2
	halfD := depth / 2

	b.PushVertex(vec.NewSimVec(center.X()-halfW, center.Y(), center.Z()-halfD))
	b.PushVertex(vec.NewSimVec(center.X()-halfW, center.Y(), center.Z()+halfD))
	b.PushVertex(vec.NewSimVec(center.X()+halfW, center.Y(), center.Z()+halfD))
	b.PushVertex(vec.NewSimVec(center.X()+halfW, center.Y(), center.Z()-halfD))

	return &Rectangle{Name: name, Center: center, Width: width, Depth: depth, b: b}
}

// Points returns the four corner vertices in emission order, the raw
// profile loop consumed by Cuboid's extrude call.
func (r *Rectangle) Points() []vec.Vec {
	out := make([]vec.Vec, len(r.b.Vertices))
	for i, v := range r.b.Vertices {
		out[i] = v.Position
	}
	return out
}

// Brep returns the owned BRep.
func (r *Rectangle) Brep() *brep.Brep { return r.b }

// ToProjectedScene2D projects the rectangle through cam.
func (r *Rectangle) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(r.b, cam, hlr)
}
