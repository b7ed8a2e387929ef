package texture

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// Noise is a Perlin-noise marble texture: a sine wave along Z perturbed by
// turbulence, the classic "Ray Tracing in One Weekend" marble shader.
type Noise struct {
	noise *Perlin
	scale float64
}

func NewNoise(rng *rand.Rand, scale float64) *Noise {
	return &Noise{noise: NewPerlin(rng), scale: scale}
}

func (n *Noise) Value(u, v float64, p core.Vec3) core.Color {
	marble := 0.5 * (1 + math.Sin(n.scale*p.Z+10*n.noise.Turbulence(p, 7)))
	return core.NewVec3(marble, marble, marble)
}
