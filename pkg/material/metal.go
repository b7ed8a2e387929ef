package material

import (
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// Metal is a specular reflector. Fuzz perturbs the perfect mirror direction
// by a random offset scaled to [0, fuzz], giving a brushed-metal look at
// higher values; scatter is rejected (absorbed) if fuzz pushes the
// reflection below the surface.
type Metal struct {
	Albedo core.Color
	Fuzz   float64
}

func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit *core.Interaction, rng *rand.Rand) (core.ScatterRecord, bool) {
	reflected := rayIn.Direction.Unit().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(rng).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterRecord{}, false
	}

	return core.ScatterRecord{
		Attenuation: m.Albedo,
		SkipPDF:     true,
		SkipPDFRay:  scattered,
	}, true
}

func (m *Metal) Emitted(rayIn core.Ray, hit *core.Interaction, u, v float64, p core.Vec3) core.Color {
	return core.Vec3{}
}

func (m *Metal) ScatteringPDF(rayIn core.Ray, hit *core.Interaction, scattered core.Ray) float64 {
	return 0
}
