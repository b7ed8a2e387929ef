package renderer_test

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkellan/gotracer/pkg/camera"
	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/progress"
	"github.com/dkellan/gotracer/pkg/renderer"
)

type constBackground struct {
	background core.Color
}

func (c constBackground) Li(core.Ray, int, *rand.Rand) core.Color {
	return c.background
}

type noopReporter struct{}

func (noopReporter) Update(int, int) {}
func (noopReporter) Done()           {}

// Scenario 6 from SPEC_FULL.md section 8: rendering an empty world with a
// fixed background at one sample per pixel must reproduce that background,
// gamma-corrected and quantized, at every pixel.
func TestRenderEmptyWorldMatchesGammaCorrectedBackground(t *testing.T) {
	bg := core.NewVec3(0.5, 0.7, 1.0)
	cam := camera.NewCamera(camera.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Width:       8,
		AspectRatio: 1.0,
	})

	img := renderer.Render(renderer.Config{
		Camera:          cam,
		Integrator:      constBackground{background: bg},
		SamplesPerPixel: 1,
		MaxDepth:        1,
		NumWorkers:      2,
	}, noopReporter{})

	want := color.RGBA{
		R: gammaByte(bg.X),
		G: gammaByte(bg.Y),
		B: gammaByte(bg.Z),
		A: 255,
	}

	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			assert.Equal(t, want, img.RGBAAt(x, y))
		}
	}
}

func TestRenderProducesCorrectImageDimensions(t *testing.T) {
	cam := camera.NewCamera(camera.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Width:       30,
		AspectRatio: 2.0,
	})

	img := renderer.Render(renderer.Config{
		Camera:          cam,
		Integrator:      constBackground{background: core.Vec3{}},
		SamplesPerPixel: 1,
		NumWorkers:      1,
	}, progress.New())

	require.Equal(t, cam.Width, img.Bounds().Dx())
	require.Equal(t, cam.Height, img.Bounds().Dy())
}

func gammaByte(linear float64) uint8 {
	gamma := math.Sqrt(linear)
	clamped := math.Min(math.Max(gamma, 0), 0.999)
	return uint8(clamped * 256)
}
