// Package pdf writes a scene2d.Scene2D to a vector PDF file using
// draw2dpdf (github.com/llgcode/draw2d/draw2dpdf), with a configurable
// page/margin/line-width contract instead of a single hard-coded
// "L","mm","A4" call. This package is deliberately kept outside the
// core: the kernel's projection/scene2d packages never import it,
// keeping export a consumer of the scene graph rather than a dependency
// of it.
package pdf

import (
	"fmt"
	"image/color"
	"os"

	"github.com/llgcode/draw2d/draw2dpdf"
	"github.com/phpdave11/gofpdf"

	"github.com/aprice2704/geomkernel/scene2d"
)

// metersToMM converts the kernel's implicit meter units to millimeters
// for page placement, matching the original source's METERS_TO_MM.
const metersToMM = 1000.0

const (
	defaultLineWidthMM = 0.25
	defaultMarginMM    = 10.0
)

// Config controls page size, margins, line width and auto-fit scaling.
type Config struct {
	PageWidthMM  float64
	PageHeightMM float64
	MarginMM     float64
	LineWidthMM  float64
	AutoFit      bool
	Title        string
}

// DefaultConfig matches the original source's PdfExportConfig::default:
// A4 landscape, 10mm margins, a 0.25mm line, auto-fit enabled.
func DefaultConfig() Config {
	return Config{
		PageWidthMM:  297.0,
		PageHeightMM: 210.0,
		MarginMM:     defaultMarginMM,
		LineWidthMM:  defaultLineWidthMM,
		AutoFit:      true,
	}
}

// A4Portrait returns a 210x297mm page, otherwise default settings.
func A4Portrait() Config {
	c := DefaultConfig()
	c.PageWidthMM, c.PageHeightMM = 210.0, 297.0
	return c
}

// A4Landscape is an alias for DefaultConfig, named for symmetry with
// A4Portrait/A3Landscape.
func A4Landscape() Config {
	return DefaultConfig()
}

// A3Landscape returns a 420x297mm page, otherwise default settings.
func A3Landscape() Config {
	c := DefaultConfig()
	c.PageWidthMM, c.PageHeightMM = 420.0, 297.0
	return c
}

// Custom returns a page of the given size, otherwise default settings.
func Custom(widthMM, heightMM float64) Config {
	c := DefaultConfig()
	c.PageWidthMM, c.PageHeightMM = widthMM, heightMM
	return c
}

// Error is the export failure taxonomy, mirroring the original source's
// PdfExportError enum. Exported as a wrapped error rather than the
// tracerr/invariant path since a failed export is a boundary condition
// (bad config, empty scene, I/O failure), not a programmer error.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pdf export: %s: %s", e.Kind, e.Message)
}

func errDocumentCreation(msg string) error { return &Error{Kind: "document creation", Message: msg} }
func errFileWrite(msg string) error        { return &Error{Kind: "file write", Message: msg} }
func errEmptyScene() error                 { return &Error{Kind: "empty scene", Message: "cannot export an empty scene"} }
func errInvalidConfig(msg string) error    { return &Error{Kind: "invalid config", Message: msg} }

// Export writes scene to filePath using the given config.
func Export(scene *scene2d.Scene2D, filePath string, config Config) error {
	if scene.IsEmpty() {
		return errEmptyScene()
	}

	drawableWidth := config.PageWidthMM - 2*config.MarginMM
	drawableHeight := config.PageHeightMM - 2*config.MarginMM
	if drawableWidth <= 0 || drawableHeight <= 0 {
		return errInvalidConfig("margins too large for page size")
	}

	min, max, ok := scene.BoundingBox()
	if !ok {
		return errEmptyScene()
	}
	sceneWidth := (max.X - min.X) * metersToMM
	sceneHeight := (max.Y - min.Y) * metersToMM

	scale := 1.0
	if config.AutoFit && (sceneWidth > 0 || sceneHeight > 0) {
		scaleX, scaleY := 1.0, 1.0
		if sceneWidth > 0 {
			scaleX = drawableWidth / sceneWidth
		}
		if sceneHeight > 0 {
			scaleY = drawableHeight / sceneHeight
		}
		scale = scaleX
		if scaleY < scale {
			scale = scaleY
		}
	}

	scaledWidth := sceneWidth * scale
	scaledHeight := sceneHeight * scale
	offsetX := config.MarginMM + (drawableWidth-scaledWidth)/2 - min.X*metersToMM*scale
	offsetY := config.MarginMM + (drawableHeight-scaledHeight)/2 - min.Y*metersToMM*scale

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: config.PageWidthMM, Ht: config.PageHeightMM},
	})
	if doc == nil {
		return errDocumentCreation("gofpdf.NewCustom returned nil")
	}
	doc.AddPage()
	title := config.Title
	if title == "" {
		title = scene.Name
	}
	if title == "" {
		title = "geomkernel export"
	}
	doc.SetTitle(title, false)

	gc := draw2dpdf.NewGraphicContext(doc)
	gc.SetStrokeColor(color.RGBA{0x00, 0x00, 0x00, 0xff})
	gc.SetLineWidth(config.LineWidthMM)

	for _, path := range scene.Paths {
		drawPath(gc, path, scale, offsetX, offsetY, config)
	}

	if doc.Err() {
		return errDocumentCreation(doc.Error().Error())
	}

	f, err := os.Create(filePath)
	if err != nil {
		return errFileWrite(err.Error())
	}
	defer f.Close()

	if err := doc.Output(f); err != nil {
		return errFileWrite(err.Error())
	}
	return nil
}

func drawPath(gc *draw2dpdf.GraphicContext, path scene2d.Path2D, scale, offsetX, offsetY float64, config Config) {
	if path.IsEmpty() {
		return
	}
	if path.StrokeWidth != nil {
		gc.SetLineWidth(*path.StrokeWidth * metersToMM * scale)
	}
	if path.StrokeColor != nil {
		gc.SetStrokeColor(toRGBA(*path.StrokeColor))
	}

	for _, seg := range path.Segments {
		sx, sy := transformPoint(seg.Start.X, seg.Start.Y, scale, offsetX, offsetY)
		ex, ey := transformPoint(seg.End.X, seg.End.Y, scale, offsetX, offsetY)
		gc.MoveTo(sx, sy)
		gc.LineTo(ex, ey)
		gc.Stroke()
	}

	gc.SetLineWidth(config.LineWidthMM)
	gc.SetStrokeColor(color.RGBA{0x00, 0x00, 0x00, 0xff})
}

func transformPoint(x, y, scale, offsetX, offsetY float64) (float64, float64) {
	return x*metersToMM*scale + offsetX, y*metersToMM*scale + offsetY
}

func toRGBA(c scene2d.RGB) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: 0xff,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
