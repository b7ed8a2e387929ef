package core

import "math/rand"

// PDF is a probability density function over directions, used both to draw
// an importance-sampled scatter direction and to evaluate the density the
// integrator divides by. Concrete implementations live in pkg/pdf and
// pkg/material; the interface is declared here so this package, and
// everything built on it, never needs to import pkg/pdf.
type PDF interface {
	Value(direction Vec3) float64
	Generate(rng *rand.Rand) Vec3
}

// ScatterRecord is what a Material.Scatter call returns: either a concrete
// "skip PDF" ray for delta-distribution materials (mirrors, glass) or a PDF
// the integrator should importance-sample and divide by.
type ScatterRecord struct {
	Attenuation Color
	PDF         PDF
	SkipPDF     bool
	SkipPDFRay  Ray
}

// Material is the scatter/emit/PDF contract every surface material
// implements. The three methods mirror the three questions the integrator
// asks at a hit point: does it bounce light, does it emit light, and how
// likely was the bounce direction actually taken.
type Material interface {
	// Scatter proposes how the incoming ray bounces at hit. ok is false if
	// the material absorbs the ray entirely (e.g. a light).
	Scatter(rayIn Ray, hit *Interaction, rng *rand.Rand) (rec ScatterRecord, ok bool)

	// Emitted returns the radiance this material emits at the hit point,
	// zero for non-emissive materials.
	Emitted(rayIn Ray, hit *Interaction, u, v float64, p Vec3) Color

	// ScatteringPDF evaluates the material's own density for having
	// produced the given scattered direction, used as the numerator of the
	// importance-sampling estimator.
	ScatteringPDF(rayIn Ray, hit *Interaction, scattered Ray) float64
}

// Texture maps a surface point to a color. Implementations live in
// pkg/texture.
type Texture interface {
	Value(u, v float64, p Vec3) Color
}
