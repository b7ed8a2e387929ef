// Package renderer drives the tile-parallel render loop: split the image
// into fixed tiles, hand each tile to a worker pool where every worker owns
// an independent RNG, accumulate a fixed number of samples per pixel, and
// assemble the results into a single gamma-corrected PNG.
package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/dkellan/gotracer/pkg/camera"
	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/integrator"
	"github.com/dkellan/gotracer/pkg/progress"
)

// tileSize matches the original renderer's tile granularity: large enough
// that per-tile dispatch overhead is negligible, small enough that the
// progress bar updates smoothly and one slow tile doesn't stall the pool.
const tileSize = 16

// Config holds everything the renderer needs beyond the scene itself.
type Config struct {
	Camera          *camera.Camera
	Integrator      integrator.Integrator
	SamplesPerPixel int
	MaxDepth        int // 0 defaults to 50, the conventional ceiling for this kind of path tracer
	NumWorkers      int // 0 uses runtime.NumCPU()
}

type tile struct {
	x0, y0, x1, y1 int
}

func splitTiles(width, height int) []tile {
	var tiles []tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, tile{
				x0: x,
				y0: y,
				x1: min(x+tileSize, width),
				y1: min(y+tileSize, height),
			})
		}
	}
	return tiles
}

// Render renders the full image and returns it as a gamma-corrected,
// 8-bit-per-channel RGBA image ready to be written out as a PNG.
func Render(cfg Config, reporter progress.Reporter) *image.RGBA {
	width, height := cfg.Camera.Width, cfg.Camera.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	tiles := splitTiles(width, height)
	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tileCh := make(chan tile)
	var wg sync.WaitGroup
	var done int
	var mu sync.Mutex

	for w := 0; w < numWorkers; w++ {
		// Each worker gets its own generator, seeded independently, so no
		// two goroutines ever touch the same *rand.Rand.
		rng := rand.New(rand.NewSource(int64(w) + 1))

		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			for t := range tileCh {
				renderTile(img, t, cfg, rng)

				mu.Lock()
				done++
				reporter.Update(done, len(tiles))
				mu.Unlock()
			}
		}(rng)
	}

	for _, t := range tiles {
		tileCh <- t
	}
	close(tileCh)
	wg.Wait()
	reporter.Done()

	return img
}

func renderTile(img *image.RGBA, t tile, cfg Config, rng *rand.Rand) {
	for j := t.y0; j < t.y1; j++ {
		for i := t.x0; i < t.x1; i++ {
			img.Set(i, j, pixelColor(cfg, i, j, rng))
		}
	}
}

func pixelColor(cfg Config, i, j int, rng *rand.Rand) color.RGBA {
	sum := core.Vec3{}
	samples := 0

	maxDepth := cfg.MaxDepth
	if maxDepth == 0 {
		maxDepth = defaultMaxDepth
	}

	for s := 0; s < cfg.SamplesPerPixel; s++ {
		ray := cfg.Camera.GetRay(i, j, rng)
		c := cfg.Integrator.Li(ray, maxDepth, rng)
		if !c.IsFinite() {
			continue
		}
		sum = sum.Add(c)
		samples++
	}

	if samples == 0 {
		return color.RGBA{A: 255}
	}

	scale := 1.0 / float64(cfg.SamplesPerPixel)
	gammaCorrected := sum.Multiply(scale).GammaCorrect()

	return color.RGBA{
		R: toByte(gammaCorrected.X),
		G: toByte(gammaCorrected.Y),
		B: toByte(gammaCorrected.Z),
		A: 255,
	}
}

// defaultMaxDepth bounds the recursive Li call when Config.MaxDepth is left
// zero; 50 is the conventional ceiling for this kind of path tracer,
// reached only by heavily-mirrored scenes.
const defaultMaxDepth = 50

func toByte(c float64) uint8 {
	clamped := math.Min(math.Max(c, 0), 0.999)
	return uint8(clamped * 256)
}
