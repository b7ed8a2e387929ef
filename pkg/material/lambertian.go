// Package material implements the five surface materials the renderer
// supports: Lambertian, Metal, Dielectric, DiffuseLight and Isotropic. Each
// satisfies core.Material; the scatter/PDF split lets the integrator
// importance-sample diffuse materials while letting mirrors and glass skip
// the PDF machinery entirely via ScatterRecord.SkipPDF.
package material

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material: it scatters incoming light
// in proportion to the cosine of the angle from the surface normal, with
// a cosine-weighted PDF for importance sampling.
type Lambertian struct {
	Tex core.Texture
}

func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Tex: texture.NewSolid(albedo)}
}

func NewLambertianTexture(tex core.Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.Interaction, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Tex.Value(hit.U, hit.V, hit.Point),
		PDF:         cosinePDF{normal: hit.Normal},
		SkipPDF:     false,
	}, true
}

func (l *Lambertian) Emitted(rayIn core.Ray, hit *core.Interaction, u, v float64, p core.Vec3) core.Color {
	return core.Vec3{}
}

// ScatteringPDF is the cosine-weighted diffuse BRDF density: cos(theta)/pi,
// clamped to zero below the surface.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *core.Interaction, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.Unit())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// cosinePDF is Lambertian's own importance-sampling density; it stays
// unexported here, rather than living with the rest of pkg/pdf, because it
// never needs to reference scene geometry the way HittablePDF does.
type cosinePDF struct {
	normal core.Vec3
}

func (p cosinePDF) Value(direction core.Vec3) float64 {
	cosineTheta := direction.Unit().Dot(p.normal)
	if cosineTheta <= 0 {
		return 0
	}
	return cosineTheta / math.Pi
}

func (p cosinePDF) Generate(rng *rand.Rand) core.Vec3 {
	onb := core.NewONBFromW(p.normal)
	return onb.Local(core.RandomCosineDirection(rng))
}
