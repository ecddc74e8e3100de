package primitives

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Polygon is an arbitrary ordered outer loop with no edges generated
// at construction, a pure face-loop template consumed by extrude and
// triangulation, the same role Rectangle plays for the axis-aligned
// case.
type Polygon struct {
	Name  string
	Outer []vec.Vec
	b     *brep.Brep
}

// NewPolygon builds a Polygon primitive with the given id.
func NewPolygon(name string, id int, outer []vec.Vec) *Polygon {
	b := brep.New(id)
	for _, p := range outer {
		b.PushVertex(p)
	}
	return &Polygon{Name: name, Outer: outer, b: b}
}

// Points returns the outer loop in emission order.
func (p *Polygon) Points() []vec.Vec {
	out := make([]vec.Vec, len(p.b.Vertices))
	for i, v := range p.b.Vertices {
		out[i] = v.Position
	}
	return out
}

// Brep returns the owned BRep.
func (p *Polygon) Brep() *brep.Brep { return p.b }

// ToProjectedScene2D projects the polygon through cam.
func (p *Polygon) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(p.b, cam, hlr)
}
