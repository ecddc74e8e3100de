// Package sweep implements the swept-solid generator: a planar profile
// carried along a 3D path using parallel-transport (minimum-rotation)
// frames, emitted into a brep.Brep the way extrude does, faces pushed
// together with their bounding edges so topology stays self-consistent
// for projection.
package sweep

import (
	"math"

	"github.com/aprice2704/geomkernel/brep"
	"github.com/aprice2704/geomkernel/vec"
)

const epsilon = 1e-9

// Options toggles end caps for open paths; closed paths never get caps.
type Options struct {
	CapStart bool
	CapEnd   bool
}

// DefaultOptions caps both ends, matching the source's Default impl.
func DefaultOptions() Options {
	return Options{CapStart: true, CapEnd: true}
}

type frame struct {
	Tangent, Normal, Binormal vec.Vec
}

type localPoint struct {
	u, v, w float64
}

// Along sweeps profilePoints along pathPoints, returning a fresh Brep
// with the given id. Degenerate input (path < 2 points, profile < 3
// distinct points) yields an empty Brep rather than aborting, per the
// kernel's degenerate-input policy. A zero-length path tangent does not
// empty the result: that station reuses the previous tangent (+Y at
// the first station).
func Along(id int, pathPoints, profilePoints []vec.Vec, opts Options) *brep.Brep {
	b := brep.New(id)

	cleanPath, pathClosed := sanitizePath(pathPoints)
	cleanProfile := sanitizeProfile(profilePoints)

	if len(cleanPath) < 2 || len(cleanProfile) < 3 {
		return b
	}

	frames := buildPathFrames(cleanPath, pathClosed)
	if len(frames) != len(cleanPath) {
		return b
	}

	localProfile := buildLocalProfile(cleanProfile)
	if len(localProfile) != len(cleanProfile) {
		return b
	}

	sectionCount := len(cleanPath)
	ringSize := len(localProfile)

	for si := 0; si < sectionCount; si++ {
		origin := cleanPath[si]
		f := frames[si]
		for _, lp := range localProfile {
			world := origin.
				Add(f.Normal.Scale(lp.u)).
				Add(f.Binormal.Scale(lp.v)).
				Add(f.Tangent.Scale(lp.w))
			b.PushVertex(world)
		}
	}

	sideSegments := sectionCount - 1
	if pathClosed {
		sideSegments = sectionCount
	}

	for si := 0; si < sideSegments; si++ {
		nextSection := (si + 1) % sectionCount
		for pi := 0; pi < ringSize; pi++ {
			nextProfile := (pi + 1) % ringSize
			a := si*ringSize + pi
			c1 := si*ringSize + nextProfile
			c2 := nextSection*ringSize + nextProfile
			d := nextSection*ringSize + pi
			addFaceWithEdges(b, []int{a, c1, c2, d})
		}
	}

	if !pathClosed {
		if opts.CapStart {
			startFace := make([]int, ringSize)
			for i := range startFace {
				startFace[i] = ringSize - 1 - i
			}
			addFaceWithEdges(b, startFace)
		}
		if opts.CapEnd {
			endStart := (sectionCount - 1) * ringSize
			endFace := make([]int, ringSize)
			for i := range endFace {
				endFace[i] = endStart + i
			}
			addFaceWithEdges(b, endFace)
		}
	}

	return b
}

func addFaceWithEdges(b *brep.Brep, loop []int) {
	if len(loop) < 3 {
		return
	}
	b.PushFace(loop, nil)
	for i := range loop {
		b.PushEdge(loop[i], loop[(i+1)%len(loop)])
	}
}

func sanitizePath(path []vec.Vec) ([]vec.Vec, bool) {
	cleaned := removeConsecutiveDuplicates(path)
	isClosed := false
	if len(cleaned) >= 3 && lenSq(cleaned[0].Subtract(cleaned[len(cleaned)-1])) <= epsilon*epsilon {
		cleaned = cleaned[:len(cleaned)-1]
		isClosed = true
	}
	return cleaned, isClosed
}

func sanitizeProfile(profile []vec.Vec) []vec.Vec {
	cleaned := removeConsecutiveDuplicates(profile)
	if len(cleaned) >= 3 && lenSq(cleaned[0].Subtract(cleaned[len(cleaned)-1])) <= epsilon*epsilon {
		cleaned = cleaned[:len(cleaned)-1]
	}
	return cleaned
}

func removeConsecutiveDuplicates(points []vec.Vec) []vec.Vec {
	cleaned := make([]vec.Vec, 0, len(points))
	for _, p := range points {
		if len(cleaned) > 0 && lenSq(p.Subtract(cleaned[len(cleaned)-1])) <= epsilon*epsilon {
			continue
		}
		cleaned = append(cleaned, p)
	}
	return cleaned
}

func lenSq(v vec.Vec) float64 { return v.LengthSq() }

func buildPathFrames(path []vec.Vec, isClosed bool) []frame {
	if len(path) < 2 {
		return nil
	}

	tangents := make([]vec.Vec, 0, len(path))
	for i := range path {
		t := computePathTangent(path, isClosed, i)
		if n, ok := vec.NormalizedOK(t); ok {
			tangents = append(tangents, n)
		} else if len(tangents) > 0 {
			tangents = append(tangents, tangents[len(tangents)-1])
		} else {
			tangents = append(tangents, vec.Y)
		}
	}

	frames := make([]frame, 0, len(path))

	firstTangent := tangents[0]
	firstNormal := anyOrthogonal(firstTangent)
	firstBinormal := firstTangent.Cross(firstNormal)
	if firstBinormal.LengthSq() <= epsilon*epsilon {
		firstNormal = vec.X
		firstBinormal = firstTangent.Cross(firstNormal)
	}
	firstBinormal = normalizedOr(firstBinormal, vec.Z)
	firstNormal = normalizedOr(firstBinormal.Cross(firstTangent), vec.X)

	frames = append(frames, frame{Tangent: firstTangent, Normal: firstNormal, Binormal: firstBinormal})

	for i := 1; i < len(path); i++ {
		prev := frames[i-1]
		tangent := tangents[i]

		axis := prev.Tangent.Cross(tangent)
		axisNorm := axis.Length()

		var normal vec.Vec
		if axisNorm <= epsilon {
			if prev.Tangent.Dot(tangent) < 0 {
				normal = anyOrthogonal(tangent)
			} else {
				normal = prev.Normal
			}
		} else {
			axisUnit := axis.Scale(1 / axisNorm)
			cosTheta := clamp(prev.Tangent.Dot(tangent), -1, 1)
			theta := math.Acos(cosTheta)
			normal = rotateAroundAxis(prev.Normal, axisUnit, theta)
		}

		binormal := tangent.Cross(normal)
		if binormal.LengthSq() <= epsilon*epsilon {
			normal = anyOrthogonal(tangent)
			binormal = tangent.Cross(normal)
		}
		binormal = normalizedOr(binormal, vec.Z)
		normal = normalizedOr(binormal.Cross(tangent), vec.X)

		frames = append(frames, frame{Tangent: tangent, Normal: normal, Binormal: binormal})
	}

	return frames
}

func computePathTangent(path []vec.Vec, isClosed bool, index int) vec.Vec {
	count := len(path)
	if isClosed {
		prev := path[(index+count-1)%count]
		next := path[(index+1)%count]
		return next.Subtract(prev)
	}
	switch index {
	case 0:
		return path[1].Subtract(path[0])
	case count - 1:
		return path[count-1].Subtract(path[count-2])
	default:
		return path[index+1].Subtract(path[index-1])
	}
}

func buildLocalProfile(profile []vec.Vec) []localPoint {
	if len(profile) < 3 {
		return nil
	}

	centroid := vec.Zero
	for _, p := range profile {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(profile)))

	normal := computeProfileNormal(profile)

	u := profile[0].Subtract(centroid)
	if u.LengthSq() <= epsilon*epsilon {
		u = profile[1].Subtract(centroid)
	}
	if u.LengthSq() <= epsilon*epsilon {
		u = anyOrthogonal(normal)
	}
	u = normalizedOr(u, anyOrthogonal(normal))

	v := normal.Cross(u)
	if v.LengthSq() <= epsilon*epsilon {
		u = anyOrthogonal(normal)
		v = normal.Cross(u)
	}
	v = normalizedOr(v, anyOrthogonal(u))
	u = normalizedOr(v.Cross(normal), anyOrthogonal(normal))

	out := make([]localPoint, 0, len(profile))
	for _, p := range profile {
		delta := p.Subtract(centroid)
		out = append(out, localPoint{u: delta.Dot(u), v: delta.Dot(v), w: delta.Dot(normal)})
	}
	return out
}

func computeProfileNormal(profile []vec.Vec) vec.Vec {
	n := len(profile)
	for i := 0; i < n; i++ {
		a := profile[i]
		bb := profile[(i+1)%n]
		c := profile[(i+2)%n]
		ab := bb.Subtract(a)
		bc := c.Subtract(bb)
		normal := ab.Cross(bc)
		if nrm, ok := vec.NormalizedOK(normal); ok {
			return nrm
		}
	}
	return vec.Y
}

func anyOrthogonal(direction vec.Vec) vec.Vec {
	reference := vec.Y
	if math.Abs(direction.Dot(reference)) > 0.95 {
		reference = vec.X
	}
	orthogonal := reference.Cross(direction)
	if orthogonal.LengthSq() <= epsilon*epsilon {
		orthogonal = vec.Z.Cross(direction)
	}
	return normalizedOr(orthogonal, vec.X)
}

func rotateAroundAxis(v, axis vec.Vec, angle float64) vec.Vec {
	cosTheta := math.Cos(angle)
	sinTheta := math.Sin(angle)
	return v.Scale(cosTheta).
		Add(axis.Cross(v).Scale(sinTheta)).
		Add(axis.Scale(axis.Dot(v) * (1 - cosTheta)))
}

func normalizedOr(v vec.Vec, fallback vec.Vec) vec.Vec {
	if n, ok := vec.NormalizedOK(v); ok {
		return n
	}
	return fallback
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
