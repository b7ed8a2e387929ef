package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/dkellan/gotracer/pkg/integrator"
	"github.com/dkellan/gotracer/pkg/progress"
	"github.com/dkellan/gotracer/pkg/renderer"
	"github.com/dkellan/gotracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 600, "rendered image width in pixels")
	samples := flag.Int("samples", 100, "samples per pixel")
	maxDepth := flag.Int("max-depth", 50, "maximum ray bounce depth")
	workers := flag.Int("workers", 0, "number of parallel workers (0 = auto-detect CPU count)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <scene>\nscenes: %v\n", os.Args[0], scene.Names)
		os.Exit(1)
	}
	sceneName := flag.Arg(0)

	sc, err := scene.Build(sceneName, *width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	pathTracer := &integrator.PathTracer{
		World:      sc.World,
		Lights:     sc.Lights,
		Background: sc.Background,
	}

	fmt.Printf("Rendering %s at %dx%d, %d samples/pixel...\n", sceneName, sc.Camera.Width, sc.Camera.Height, *samples)
	start := time.Now()

	img := renderer.Render(renderer.Config{
		Camera:          sc.Camera,
		Integrator:      pathTracer,
		SamplesPerPixel: *samples,
		MaxDepth:        *maxDepth,
		NumWorkers:      *workers,
	}, progress.New())

	fmt.Printf("Render finished in %v\n", time.Since(start))

	outputName := sceneName + ".png"
	f, err := os.Create(outputName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", outputName, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "error encoding %s: %v\n", outputName, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", outputName)
}
