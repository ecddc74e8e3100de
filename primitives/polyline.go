package primitives

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Polyline is an ordered chain of points, one vertex per point and one
// edge per consecutive pair. Closedness is a derived property, not
// stored state: first and last points coinciding within vec.Epsilon.
type Polyline struct {
	Name   string
	Points []vec.Vec
	b      *brep.Brep
}

// NewPolyline builds a Polyline primitive with the given id.
func NewPolyline(name string, id int, points []vec.Vec) *Polyline {
	b := brep.New(id)
	idx := make([]int, len(points))
	for i, p := range points {
		idx[i] = b.PushVertex(p)
	}
	for i := 0; i+1 < len(idx); i++ {
		b.PushEdge(idx[i], idx[i+1])
	}
	return &Polyline{Name: name, Points: points, b: b}
}

// IsClosed reports whether the first and last points coincide.
func (p *Polyline) IsClosed() bool {
	if len(p.Points) < 2 {
		return false
	}
	return vec.ApproxEqual(p.Points[0], p.Points[len(p.Points)-1])
}

// Brep returns the owned BRep.
func (p *Polyline) Brep() *brep.Brep { return p.b }

// ToProjectedScene2D projects the polyline through cam.
func (p *Polyline) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(p.b, cam, hlr)
}
