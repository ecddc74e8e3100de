package primitives

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// Line is the two-endpoint primitive. Since it has no faces,
// projection's face-loop adjacency sees nothing, it relies entirely
// on the explicit edge pushed here to become visible, as every open,
// faceless primitive must.
type Line struct {
	Name       string
	Start, End vec.Vec
	b          *brep.Brep
}

// NewLine builds a Line primitive with the given id.
func NewLine(name string, id int, start, end vec.Vec) *Line {
	b := brep.New(id)
	v0 := b.PushVertex(start)
	v1 := b.PushVertex(end)
	b.PushEdge(v0, v1)
	return &Line{Name: name, Start: start, End: end, b: b}
}

// Brep returns the owned BRep.
func (l *Line) Brep() *brep.Brep { return l.b }

// ToProjectedScene2D projects the line through cam.
func (l *Line) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(l.b, cam, hlr)
}
