package scene2d

import "testing"

func TestAddPathElidesEmpty(t *testing.T) {
	s := NewScene2D()
	s.AddPath(Path2D{})
	if len(s.Paths) != 0 {
		t.Errorf("expected empty path to be elided, got %d paths", len(s.Paths))
	}
}

func TestBoundingBoxEmptyScene(t *testing.T) {
	s := NewScene2D()
	if _, _, ok := s.BoundingBox(); ok {
		t.Errorf("expected ok=false for empty scene")
	}
}

func TestBoundingBox(t *testing.T) {
	s := NewScene2D()
	p := NewPath2D()
	p.PushSegment(Segment2D{Start: Vec2{X: -1, Y: 2}, End: Vec2{X: 3, Y: -4}})
	s.AddPath(*p)

	min, max, ok := s.BoundingBox()
	if !ok {
		t.Fatal("expected bounding box")
	}
	if min != (Vec2{X: -1, Y: -4}) || max != (Vec2{X: 3, Y: 2}) {
		t.Errorf("got min=%v max=%v", min, max)
	}
}

func TestNormalizeToFitIsIdempotent(t *testing.T) {
	s := NewScene2D()
	p := NewPath2D()
	p.PushSegment(Segment2D{Start: Vec2{X: 0, Y: 0}, End: Vec2{X: 10, Y: 4}})
	s.AddPath(*p)

	once := s.NormalizeToFit(100, 50)
	twice := once.NormalizeToFit(100, 50)

	if len(once.Paths) != len(twice.Paths) {
		t.Fatalf("path count changed across normalization")
	}
	for i, seg := range once.Paths[0].Segments {
		other := twice.Paths[0].Segments[i]
		if approxDiff(seg.Start, other.Start) > 1e-9 || approxDiff(seg.End, other.End) > 1e-9 {
			t.Errorf("segment %d changed: %v -> %v", i, seg, other)
		}
	}
}

func approxDiff(a, b Vec2) float64 {
	d := a.Subtract(b)
	return d.LengthSq()
}

func TestToLinesCarriesStrokeMetadata(t *testing.T) {
	s := NewScene2D()
	width := 0.5
	p := Path2D{StrokeWidth: &width}
	p.PushSegment(Segment2D{Start: Vec2{X: 0, Y: 0}, End: Vec2{X: 1, Y: 1}})
	s.AddPath(p)

	lines := s.ToLines()
	if len(lines.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines.Lines))
	}
	if lines.Lines[0].StrokeWidth == nil || *lines.Lines[0].StrokeWidth != 0.5 {
		t.Errorf("expected stroke width to carry through")
	}
}
