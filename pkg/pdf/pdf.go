// Package pdf holds HittablePDF, which samples directions toward a light's
// shape, and MixturePDF, which combines two PDFs. The cosine and sphere
// PDFs live unexported next to the materials that use them (pkg/material).
package pdf

import (
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// HittablePDF importance-samples directions toward a particular hittable
// (almost always a light), turning "some of your samples should aim
// straight at the light" into a PDF the integrator can mix with the
// material's own distribution.
type HittablePDF struct {
	Object core.Hittable
	Origin core.Vec3
}

func NewHittablePDF(object core.Hittable, origin core.Vec3) *HittablePDF {
	return &HittablePDF{Object: object, Origin: origin}
}

func (p *HittablePDF) Value(direction core.Vec3) float64 {
	if direction.NearZero() {
		return 0
	}
	return p.Object.PDFValue(p.Origin, direction)
}

func (p *HittablePDF) Generate(rng *rand.Rand) core.Vec3 {
	return p.Object.Sample(p.Origin, rng)
}

// MixturePDF combines two strategies with equal weight, the standard
// trick for reducing variance when neither strategy alone samples well:
// half the rays aim at known lights, half follow the surface's own
// scattering distribution.
type MixturePDF struct {
	P0, P1 core.PDF
}

func NewMixturePDF(p0, p1 core.PDF) *MixturePDF {
	return &MixturePDF{P0: p0, P1: p1}
}

func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.P0.Value(direction) + 0.5*m.P1.Value(direction)
}

func (m *MixturePDF) Generate(rng *rand.Rand) core.Vec3 {
	if rng.Float64() < 0.5 {
		return m.P0.Generate(rng)
	}
	return m.P1.Generate(rng)
}
