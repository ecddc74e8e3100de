// Package offset implements the parallel-offset engine for open and
// closed polylines, as a plain struct plus free functions rather than
// an interface-heavy design. Offsetting happens entirely in the XZ
// plane; each output point carries the Y of the input vertex it was
// derived from.
package offset

import (
	"math"

	"github.com/aprice2704/geomkernel/vec"
)

// Epsilon matches the kernel-wide geometric tolerance (spec'd
// separately from vec.Epsilon so this package stays self-contained).
const Epsilon = 1e-9

const collinearCrossThreshold = 1e-7

// Closure selects how an input path's closedness is determined.
type Closure int

const (
	// Auto treats the path as closed iff its first and last points
	// coincide within Epsilon.
	Auto Closure = iota
	ForceClosed
	ForceOpen
)

// Options configures corner handling.
type Options struct {
	Bevel                 bool
	AcuteThresholdDegrees float64
}

// DefaultOptions mirrors the source's Default impl: bevel on, 35°.
func DefaultOptions() Options {
	return Options{Bevel: true, AcuteThresholdDegrees: 35}
}

// Result is the outcome of an offset operation.
type Result struct {
	Points               []vec.Vec
	BeveledVertexIndices []int
	IsClosed             bool
}

func empty(isClosed bool) Result {
	return Result{IsClosed: isClosed}
}

type point2 struct{ x, z float64 }

func fromVec(v vec.Vec) point2    { return point2{v.X(), v.Z()} }
func (p point2) add(q point2) point2  { return point2{p.x + q.x, p.z + q.z} }
func (p point2) sub(q point2) point2  { return point2{p.x - q.x, p.z - q.z} }
func (p point2) scale(s float64) point2 { return point2{p.x * s, p.z * s} }
func (p point2) dot(q point2) float64 { return p.x*q.x + p.z*q.z }
func (p point2) cross(q point2) float64 { return p.x*q.z - p.z*q.x }
func (p point2) length() float64  { return math.Hypot(p.x, p.z) }

func (p point2) normalize() (point2, bool) {
	l := p.length()
	if l <= Epsilon {
		return point2{}, false
	}
	return p.scale(1 / l), true
}

// Path offsets points by distance, honoring force and options.
func Path(points []vec.Vec, distance float64, force Closure, opts Options) Result {
	clean, isClosed := sanitize(points, force)

	if len(clean) < 2 {
		return empty(isClosed)
	}
	if isClosed && len(clean) < 3 {
		return empty(isClosed)
	}

	if math.Abs(distance) <= Epsilon {
		r := Result{Points: append([]vec.Vec(nil), clean...), IsClosed: isClosed}
		closeIfNeeded(&r)
		return r
	}

	segCount := len(clean) - 1
	if isClosed {
		segCount = len(clean)
	}

	dirs := make([]point2, 0, segCount)
	normals := make([]point2, 0, segCount)
	for i := 0; i < segCount; i++ {
		i0 := i
		i1 := i + 1
		if isClosed {
			i1 = (i + 1) % len(clean)
		}
		start := fromVec(clean[i0])
		end := fromVec(clean[i1])
		dir, ok := end.sub(start).normalize()
		if !ok {
			return empty(isClosed)
		}
		dirs = append(dirs, dir)
		normals = append(normals, point2{-dir.z, dir.x})
	}

	result := empty(isClosed)

	if !isClosed {
		first := clean[0]
		firstOffset := fromVec(first).add(normals[0].scale(distance))
		pushUnique(&result.Points, vec.NewSimVec(firstOffset.x, first.Y(), firstOffset.z))

		for vi := 1; vi < len(clean)-1; vi++ {
			appendCorner(clean, dirs, normals, false, vi, distance, opts, &result)
		}

		last := clean[len(clean)-1]
		lastOffset := fromVec(last).add(normals[len(normals)-1].scale(distance))
		pushUnique(&result.Points, vec.NewSimVec(lastOffset.x, last.Y(), lastOffset.z))

		closeIfNeeded(&result)
		return result
	}

	for vi := 0; vi < len(clean); vi++ {
		appendCorner(clean, dirs, normals, true, vi, distance, opts, &result)
	}
	closeIfNeeded(&result)
	return result
}

func appendCorner(clean []vec.Vec, dirs, normals []point2, isClosedPath bool, vi int, distance float64, opts Options, result *Result) {
	point := clean[vi]
	corner := fromVec(point)

	prevSeg := vi - 1
	if vi == 0 {
		prevSeg = len(dirs) - 1
	}
	nextSeg := vi % len(dirs)

	prevDir, nextDir := dirs[prevSeg], dirs[nextSeg]
	prevNormal, nextNormal := normals[prevSeg], normals[nextSeg]

	prevAnchor := corner.add(prevNormal.scale(distance))
	nextAnchor := corner.add(nextNormal.scale(distance))

	dot := clamp(prevDir.dot(nextDir), -1, 1)
	turnAngle := math.Acos(dot)
	interiorAngle := math.Pi - turnAngle
	threshold := clamp(opts.AcuteThresholdDegrees, 1, 179) * math.Pi / 180

	turnCross := prevDir.cross(nextDir)
	nearlyCollinear := math.Abs(turnCross) <= collinearCrossThreshold

	if nearlyCollinear && dot > 0.9999 {
		pushUnique(&result.Points, vec.NewSimVec(prevAnchor.x, point.Y(), prevAnchor.z))
		return
	}

	turnSign := turnCross * distance
	isOuter := turnSign > Epsilon
	isInner := turnSign < -Epsilon

	if !isClosedPath && isInner {
		pushUnique(&result.Points, vec.NewSimVec(prevAnchor.x, point.Y(), prevAnchor.z))
		pushUnique(&result.Points, vec.NewSimVec(nextAnchor.x, point.Y(), nextAnchor.z))
		return
	}

	bevelDueToAngle := opts.Bevel && isOuter && interiorAngle <= threshold
	if bevelDueToAngle {
		pushUnique(&result.Points, vec.NewSimVec(prevAnchor.x, point.Y(), prevAnchor.z))
		pushUnique(&result.Points, vec.NewSimVec(nextAnchor.x, point.Y(), nextAnchor.z))
		result.BeveledVertexIndices = append(result.BeveledVertexIndices, vi)
		return
	}

	if inter, ok := lineIntersection2D(prevAnchor, prevDir, nextAnchor, nextDir); ok {
		pushUnique(&result.Points, vec.NewSimVec(inter.x, point.Y(), inter.z))
	} else if opts.Bevel && isOuter {
		pushUnique(&result.Points, vec.NewSimVec(prevAnchor.x, point.Y(), prevAnchor.z))
		pushUnique(&result.Points, vec.NewSimVec(nextAnchor.x, point.Y(), nextAnchor.z))
		result.BeveledVertexIndices = append(result.BeveledVertexIndices, vi)
	} else {
		mid := point2{(prevAnchor.x + nextAnchor.x) * 0.5, (prevAnchor.z + nextAnchor.z) * 0.5}
		pushUnique(&result.Points, vec.NewSimVec(mid.x, point.Y(), mid.z))
	}
}

func lineIntersection2D(p1, d1, p2, d2 point2) (point2, bool) {
	denom := d1.cross(d2)
	if math.Abs(denom) <= Epsilon {
		return point2{}, false
	}
	delta := p2.sub(p1)
	t := delta.cross(d2) / denom
	return p1.add(d1.scale(t)), true
}

func sanitize(points []vec.Vec, force Closure) ([]vec.Vec, bool) {
	clean := make([]vec.Vec, 0, len(points))
	for _, p := range points {
		if len(clean) > 0 && areClose3D(clean[len(clean)-1], p) {
			continue
		}
		clean = append(clean, p)
	}

	if len(clean) == 0 {
		return clean, force == ForceClosed
	}

	isClosed := force == ForceClosed
	if force == Auto && len(clean) >= 3 {
		isClosed = areClose3D(clean[0], clean[len(clean)-1])
	}

	if isClosed && len(clean) >= 2 && areClose3D(clean[0], clean[len(clean)-1]) {
		clean = clean[:len(clean)-1]
	}

	return clean, isClosed
}

func closeIfNeeded(r *Result) {
	if !r.IsClosed || len(r.Points) < 2 {
		return
	}
	first, last := r.Points[0], r.Points[len(r.Points)-1]
	if !areClose3D(first, last) {
		r.Points = append(r.Points, first)
	}
}

func pushUnique(points *[]vec.Vec, candidate vec.Vec) {
	if len(*points) > 0 && areClose3D((*points)[len(*points)-1], candidate) {
		return
	}
	*points = append(*points, candidate)
}

func areClose3D(a, b vec.Vec) bool {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	dz := a.Z() - b.Z()
	return dx*dx+dy*dy+dz*dz <= Epsilon*Epsilon
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
