// Command vecdraw is an example driver: it builds a cuboid primitive,
// projects it through a default camera with hidden-line removal, and
// writes the result as a vector PDF. It composes primitives,
// scenegraph, projection and exporters/pdf end to end, not part of
// the core contract, just one concrete assembly of it.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aprice2704/geomkernel/camera"
	"github.com/aprice2704/geomkernel/exporters/pdf"
	"github.com/aprice2704/geomkernel/primitives"
	"github.com/aprice2704/geomkernel/scenegraph"
	"github.com/aprice2704/geomkernel/vec"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <output_path.pdf> [width] [height] [depth]", os.Args[0])
	}
	outPath := os.Args[1]

	width := parseArgOr(2, 2.0)
	height := parseArgOr(3, 2.0)
	depth := parseArgOr(4, 2.0)

	cuboid := primitives.NewCuboid("box", 0, vec.Zero, width, height, depth)

	scene := scenegraph.NewScene("vecdraw")
	scene.UpsertEntity(scenegraph.Entity{ID: "box", Kind: "Cuboid", Brep: cuboid.Brep()})

	projected := scene.ProjectToScene2D(camera.Default(), camera.DefaultHLROptions())

	if err := pdf.Export(projected, outPath, pdf.DefaultConfig()); err != nil {
		log.Fatalf("export to %s: %v", outPath, err)
	}

	fmt.Printf("wrote %s\n", outPath)
}

func parseArgOr(i int, fallback float64) float64 {
	if i >= len(os.Args) {
		return fallback
	}
	v, err := strconv.ParseFloat(os.Args[i], 64)
	if err != nil {
		log.Fatalf("argument %d (%q): %v", i, os.Args[i], err)
	}
	return v
}
