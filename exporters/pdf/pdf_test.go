package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aprice2704/geomkernel/scene2d"
)

func squareScene() *scene2d.Scene2D {
	s := scene2d.WithName("square")
	p := scene2d.NewPath2D()
	p.PushSegment(scene2d.Segment2D{Start: scene2d.Vec2{X: 0, Y: 0}, End: scene2d.Vec2{X: 1, Y: 0}})
	p.PushSegment(scene2d.Segment2D{Start: scene2d.Vec2{X: 1, Y: 0}, End: scene2d.Vec2{X: 1, Y: 1}})
	s.AddPath(*p)
	return s
}

func TestExportEmptySceneErrors(t *testing.T) {
	dir := t.TempDir()
	err := Export(scene2d.NewScene2D(), filepath.Join(dir, "out.pdf"), DefaultConfig())
	if err == nil {
		t.Fatal("expected error exporting an empty scene")
	}
}

func TestExportInvalidConfigErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.MarginMM = cfg.PageWidthMM // margins consume the entire page
	err := Export(squareScene(), filepath.Join(dir, "out.pdf"), cfg)
	if err == nil {
		t.Fatal("expected error for margins too large for page size")
	}
}

func TestExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.pdf")
	if err := Export(squareScene(), outPath, DefaultConfig()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("stat output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}

func TestPagePresets(t *testing.T) {
	if c := A4Portrait(); c.PageWidthMM != 210 || c.PageHeightMM != 297 {
		t.Fatalf("A4Portrait = %+v", c)
	}
	if c := A4Landscape(); c.PageWidthMM != 297 || c.PageHeightMM != 210 {
		t.Fatalf("A4Landscape = %+v", c)
	}
	if c := A3Landscape(); c.PageWidthMM != 420 || c.PageHeightMM != 297 {
		t.Fatalf("A3Landscape = %+v", c)
	}
	if c := Custom(100, 50); c.PageWidthMM != 100 || c.PageHeightMM != 50 {
		t.Fatalf("Custom = %+v", c)
	}
}
