package material

import (
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/texture"
)

// DiffuseLight emits a constant radiance and never scatters; it is a pure
// absorber from the integrator's point of view, contributing only via
// Emitted. Emission is single-sided: a ray hitting the back face gets
// black, matching the "suspect behavior" the cornell box light construction
// actually relies on (a light quad only glows toward the room's interior).
type DiffuseLight struct {
	Tex core.Texture
}

func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Tex: texture.NewSolid(emission)}
}

func NewDiffuseLightTexture(tex core.Texture) *DiffuseLight {
	return &DiffuseLight{Tex: tex}
}

func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *core.Interaction, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

func (e *DiffuseLight) Emitted(rayIn core.Ray, hit *core.Interaction, u, v float64, p core.Vec3) core.Color {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Tex.Value(u, v, p)
}

func (e *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.Interaction, scattered core.Ray) float64 {
	return 0
}
