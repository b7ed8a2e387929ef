package material

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/texture"
)

// Isotropic is the phase function of a homogeneous participating medium: it
// scatters uniformly in every direction with no preference, used by
// ConstantMedium to model smoke, fog and similar volumes.
type Isotropic struct {
	Tex core.Texture
}

func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Tex: texture.NewSolid(albedo)}
}

func NewIsotropicTexture(tex core.Texture) *Isotropic {
	return &Isotropic{Tex: tex}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.Interaction, rng *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: i.Tex.Value(hit.U, hit.V, hit.Point),
		PDF:         spherePDF{},
		SkipPDF:     false,
	}, true
}

func (i *Isotropic) Emitted(rayIn core.Ray, hit *core.Interaction, u, v float64, p core.Vec3) core.Color {
	return core.Vec3{}
}

func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.Interaction, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// spherePDF samples uniformly over the full sphere of directions; kept
// unexported alongside Isotropic, as Lambertian's cosinePDF is kept
// alongside Lambertian.
type spherePDF struct{}

func (spherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (spherePDF) Generate(rng *rand.Rand) core.Vec3 {
	return core.RandomUnitVector(rng)
}
