package primitives

import (
	"math"

	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/scene2d"
	"github.com/aprice2704/geomkernel/vec"
)

// sweepClosureEpsilon is the tolerance on the angular sweep itself
// (end-start vs 2π), distinct from arcClosureEpsilonSq below.
const sweepClosureEpsilon = 1e-9

// arcClosureEpsilonSq is a stricter (1e-12, already squared) threshold
// for deciding whether the sampled first and last points actually
// coincide; the looser kernel-wide epsilon would over-merge
// near-but-not-equal points on a full-circle arc with many segments.
const arcClosureEpsilonSq = 1e-12

// Arc samples a circular arc in the XZ plane around center. A sweep of
// 2π within sweepClosureEpsilon is treated as a closed disc boundary:
// the duplicated closing vertex is dropped, a wrap edge added, and a
// single face loop recorded over all vertices.
type Arc struct {
	Name                       string
	Center                     vec.Vec
	Radius                     float64
	StartAngle, EndAngle       float64
	Segments                   int
	b                          *brep.Brep
}

// NewArc builds an Arc primitive with the given id. Segments is
// clamped to at least 1.
func NewArc(name string, id int, center vec.Vec, radius, startAngle, endAngle float64, segments int) *Arc {
	if segments < 1 {
		segments = 1
	}
	b := brep.New(id)

	angleStep := (endAngle - startAngle) / float64(segments)
	angle := startAngle
	for i := 0; i <= segments; i++ {
		x := center.X() + radius*math.Cos(angle)
		y := center.Y()
		z := center.Z() + radius*math.Sin(angle)
		b.PushVertex(vec.NewSimVec(x, y, z))
		angle += angleStep
	}

	isClosed := math.Abs(math.Abs(endAngle-startAngle)-2*math.Pi) <= sweepClosureEpsilon
	n := len(b.Vertices)

	if isClosed && n > 2 {
		first := b.Vertices[0].Position
		last := b.Vertices[n-1].Position
		d := first.Subtract(last)
		if d.LengthSq() <= arcClosureEpsilonSq {
			n--
			b.Vertices = b.Vertices[:n]
		}
	}

	if n < 2 {
		return &Arc{Name: name, Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle, Segments: segments, b: b}
	}

	for i := 0; i < n-1; i++ {
		b.PushEdge(i, i+1)
	}

	if isClosed && n > 2 {
		b.PushEdge(n-1, 0)
		loop := make([]int, n)
		for i := range loop {
			loop[i] = i
		}
		b.PushFace(loop, nil)
	}

	return &Arc{Name: name, Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle, Segments: segments, b: b}
}

// IsClosedDisc reports whether the arc forms a full closed loop with a
// single face (i.e. is a disc boundary rather than an open arc).
func (a *Arc) IsClosedDisc() bool {
	return len(a.b.Faces) == 1
}

// OuterLoopPoints returns the vertex positions of the arc's face loop
// when it is a closed disc, or nil otherwise, used by Cylinder to
// extrude the disc into a solid.
func (a *Arc) OuterLoopPoints() []vec.Vec {
	if !a.IsClosedDisc() {
		return nil
	}
	return a.b.GetVerticesByFaceID(0)
}

// Brep returns the owned BRep.
func (a *Arc) Brep() *brep.Brep { return a.b }

// ToProjectedScene2D projects the arc through cam.
func (a *Arc) ToProjectedScene2D(cam camera.Camera, hlr camera.HLROptions) *scene2d.Scene2D {
	return projectedScene2D(a.b, cam, hlr)
}
