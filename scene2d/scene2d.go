// Package scene2d is the flat 2D drawing model the projection pipeline
// emits: Vec2, Segment2D, Path2D and Scene2D, adapted from the
// teacher's cam.Vec2/cam.Segment/cam.Path/cam.Drawing turtle-graphics
// model to the shape this kernel's export contract requires (named
// scenes of stroked line paths, not a pen-position turtle log).
package scene2d

import (
	"fmt"
	"math"
)

// Vec2 is a point or vector in the 2D drawing plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.4g,%.4g)", v.X, v.Y)
}

// Subtract returns v-w.
func (v Vec2) Subtract(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// LengthSq returns the squared length of v.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Segment2D is a single straight-line piece of a Path2D, given by its
// two endpoints. It carries no kind tag: arcs and béziers are not
// represented.
type Segment2D struct {
	Start, End Vec2
}

// Path2D is a sequence of segments sharing stroke metadata.
type Path2D struct {
	Segments    []Segment2D
	StrokeWidth *float64
	StrokeColor *RGB
}

// RGB is a stroke color with components in [0,1].
type RGB struct {
	R, G, B float64
}

// NewPath2D returns an empty path.
func NewPath2D() *Path2D {
	return &Path2D{}
}

// IsEmpty reports whether the path has no segments.
func (p *Path2D) IsEmpty() bool {
	return len(p.Segments) == 0
}

// PushSegment appends a segment to the path.
func (p *Path2D) PushSegment(s Segment2D) {
	p.Segments = append(p.Segments, s)
}

// Scene2D is a named collection of 2D line paths, the sole output
// format the projection pipeline produces.
type Scene2D struct {
	Name  string
	Paths []Path2D
}

// NewScene2D returns an empty, unnamed scene.
func NewScene2D() *Scene2D {
	return &Scene2D{}
}

// WithName returns an empty scene carrying the given name.
func WithName(name string) *Scene2D {
	return &Scene2D{Name: name}
}

// IsEmpty reports whether every path in the scene is empty.
func (s *Scene2D) IsEmpty() bool {
	for _, p := range s.Paths {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// AddPath appends path, eliding it entirely when empty.
func (s *Scene2D) AddPath(p Path2D) {
	if p.IsEmpty() {
		return
	}
	s.Paths = append(s.Paths, p)
}

// Extend merges another scene's paths into this one, eliding empties.
func (s *Scene2D) Extend(other *Scene2D) {
	for _, p := range other.Paths {
		s.AddPath(p)
	}
}

// BoundingBox returns the min/max corners of all segment endpoints, or
// ok=false if the scene carries no geometry.
func (s *Scene2D) BoundingBox() (min, max Vec2, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, p := range s.Paths {
		for _, seg := range p.Segments {
			minX = math.Min(minX, math.Min(seg.Start.X, seg.End.X))
			minY = math.Min(minY, math.Min(seg.Start.Y, seg.End.Y))
			maxX = math.Max(maxX, math.Max(seg.Start.X, seg.End.X))
			maxY = math.Max(maxY, math.Max(seg.Start.Y, seg.End.Y))
			found = true
		}
	}
	if !found {
		return Vec2{}, Vec2{}, false
	}
	return Vec2{X: minX, Y: minY}, Vec2{X: maxX, Y: maxY}, true
}

// NormalizeToFit returns a copy of s translated so its bounding-box
// center sits at the origin, then uniformly scaled so it fits within a
// W x H rectangle. Idempotent: normalizing an already-normalized scene
// for the same W,H returns the same scene (up to float round-off).
func (s *Scene2D) NormalizeToFit(w, h float64) *Scene2D {
	min, max, ok := s.BoundingBox()
	out := &Scene2D{Name: s.Name}
	if !ok {
		return out
	}

	centerX := (min.X + max.X) / 2
	centerY := (min.Y + max.Y) / 2
	spanX := max.X - min.X
	spanY := max.Y - min.Y

	scale := 1.0
	sx, sy := math.Inf(1), math.Inf(1)
	if spanX > 0 {
		sx = w / spanX
	}
	if spanY > 0 {
		sy = h / spanY
	}
	scale = math.Min(sx, sy)
	if math.IsInf(scale, 0) || scale <= 0 {
		scale = 1
	}

	for _, p := range s.Paths {
		np := Path2D{StrokeWidth: p.StrokeWidth, StrokeColor: p.StrokeColor}
		for _, seg := range p.Segments {
			np.PushSegment(Segment2D{
				Start: normalizePoint(seg.Start, centerX, centerY, scale),
				End:   normalizePoint(seg.End, centerX, centerY, scale),
			})
		}
		out.AddPath(np)
	}
	return out
}

func normalizePoint(p Vec2, cx, cy, scale float64) Vec2 {
	return Vec2{X: (p.X - cx) * scale, Y: (p.Y - cy) * scale}
}

// Line2D is a single flattened line, carrying its parent path's stroke
// metadata, used by Scene2DLines.
type Line2D struct {
	Start, End  Vec2
	StrokeWidth *float64
	StrokeColor *RGB
}

// Scene2DLines is the flat companion representation of a Scene2D,
// derived by ToLines.
type Scene2DLines struct {
	Name  string
	Lines []Line2D
}

// ToLines flattens every path's segments into a single line stream.
func (s *Scene2D) ToLines() Scene2DLines {
	out := Scene2DLines{Name: s.Name}
	for _, p := range s.Paths {
		for _, seg := range p.Segments {
			out.Lines = append(out.Lines, Line2D{
				Start:       seg.Start,
				End:         seg.End,
				StrokeWidth: p.StrokeWidth,
				StrokeColor: p.StrokeColor,
			})
		}
	}
	return out
}
