package material

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// Dielectric is a clear refractive material (glass, water) that either
// reflects or refracts each incoming ray, chosen stochastically by
// Schlick's reflectance approximation so that, averaged over many samples,
// the correct Fresnel split between the two emerges.
type Dielectric struct {
	RefractionIndex float64
}

func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.Interaction, rng *rand.Rand) (core.ScatterRecord, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	ri := d.RefractionIndex
	if hit.FrontFace {
		ri = 1.0 / d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, ri) > rng.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, ri)
	}

	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)

	return core.ScatterRecord{
		Attenuation: attenuation,
		SkipPDF:     true,
		SkipPDFRay:  scattered,
	}, true
}

func (d *Dielectric) Emitted(rayIn core.Ray, hit *core.Interaction, u, v float64, p core.Vec3) core.Color {
	return core.Vec3{}
}

func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit *core.Interaction, scattered core.Ray) float64 {
	return 0
}

// Reflectance computes Fresnel reflectance via Schlick's approximation.
func Reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
