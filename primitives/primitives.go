// Package primitives implements the BRep-emitting builders: Line,
// Polyline, Arc, Rectangle, Polygon, Curve, Cuboid, Cylinder and
// Wedge. Each is a distinct Go type implementing Entity rather than
// sharing a base class, the scene graph only needs an owned Brep
// plus a kind tag, so a common interface is all that's modeled, in
// keeping with the small concrete types used elsewhere in this module
// (brep.Brep itself, offset.Result, sweep.Along) over inheritance.
package primitives

import (
	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/projection"
	"github.com/aprice2704/geomkernel/scene2d"
)

// Entity is the capability set every primitive builder exposes: its
// owned BRep, and a convenience to project that BRep straight to a 2D
// scene through a given camera and HLR setting.
type Entity interface {
	Brep() *brep.Brep
	ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D
}

// projectedScene2D is shared by every Entity implementation.
func projectedScene2D(b *brep.Brep, cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projection.Brep(b, cam, hlr)
}
