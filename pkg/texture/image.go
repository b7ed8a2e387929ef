package texture

import (
	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/loaders"
)

// fallbackCyan is returned by Image.Value whenever the backing asset failed
// to load; cyan is chosen, as in the original renderer, because it never
// occurs naturally in the scenes and is immediately recognizable as a
// loader failure rather than a rendering bug.
var fallbackCyan = core.NewVec3(0, 1, 1)

// Image is a texture backed by a decoded raster image, sampled with nearest
// neighbor filtering. A load failure is not fatal: Image degrades to a
// solid fallback color so a missing asset costs a wrong-looking render, not
// a crashed one.
type Image struct {
	data   *loaders.ImageData
	loaded bool
}

// NewImage loads filename via pkg/loaders. The error is returned for the
// caller to log, but Image remains usable (falling back to fallbackCyan)
// even when err != nil.
func NewImage(filename string) (*Image, error) {
	data, err := loaders.LoadImage(filename)
	if err != nil {
		return &Image{loaded: false}, err
	}
	return &Image{data: data, loaded: true}, nil
}

func (t *Image) Value(u, v float64, p core.Vec3) core.Color {
	if !t.loaded || t.data.Width == 0 || t.data.Height == 0 {
		return fallbackCyan
	}

	// Clamp to [0, 1]; v is flipped since image row 0 is the top of the
	// texture but v=0 is conventionally the bottom of the UV square.
	u = clamp01(u)
	v = 1.0 - clamp01(v)

	i := int(u * float64(t.data.Width))
	j := int(v * float64(t.data.Height))
	if i >= t.data.Width {
		i = t.data.Width - 1
	}
	if j >= t.data.Height {
		j = t.data.Height - 1
	}

	return t.data.Pixels[j*t.data.Width+i]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
