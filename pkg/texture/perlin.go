package texture

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient-noise generator in the classic "Ray Tracing in One
// Weekend" style: 256 random unit vectors plus three independently
// permuted index tables, trilinearly interpolated with a Hermite smoothing
// curve to kill the grid artifacts a naive lerp would show.
type Perlin struct {
	ranvec   []core.Vec3
	permX    []int
	permY    []int
	permZ    []int
}

func NewPerlin(rng *rand.Rand) *Perlin {
	ranvec := make([]core.Vec3, perlinPointCount)
	for i := range ranvec {
		ranvec[i] = core.RandomVec3Range(rng, -1, 1).Unit()
	}

	return &Perlin{
		ranvec: ranvec,
		permX:  perlinGeneratePerm(rng),
		permY:  perlinGeneratePerm(rng),
		permZ:  perlinGeneratePerm(rng),
	}
}

func perlinGeneratePerm(rng *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Noise evaluates the noise field at p, returning a value roughly in
// [-1, 1].
func (pn *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.ranvec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, halving amplitude and doubling
// frequency each octave, and returns the absolute value - the standard
// "turbulence" trick for marble/wood style patterns.
func (pn *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2.0)
	}

	return math.Abs(accum)
}
