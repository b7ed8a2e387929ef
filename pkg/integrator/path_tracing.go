package integrator

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/pdf"
)

// PathTracer is a unidirectional Monte Carlo path tracer: at each bounce it
// either follows a delta-distribution material's single reflected/refracted
// ray, or imports-samples a direction from a 50/50 mixture of "aim at a
// known light" and "follow the surface's own scattering lobe", weighting
// the result by scattering_pdf / sampling_pdf.
type PathTracer struct {
	World      core.Hittable
	Lights     core.Hittable // may be nil: no importance sampling toward lights
	Background core.Color
}

// magenta flags a hit whose Hittable forgot to set a Material - a bug, not
// a scene authoring mistake, so it's made obvious rather than silently
// treated as black.
var magenta = core.NewVec3(1, 0, 1)

// Li recursively estimates incoming radiance along ray, stopping after
// depth bounces or at the first ray that misses everything (returning the
// scene background).
func (pt *PathTracer) Li(ray core.Ray, depth int, rng *rand.Rand) core.Color {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := pt.World.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		return pt.Background
	}

	if hit.Material == nil {
		return magenta
	}

	emission := hit.Material.Emitted(ray, hit, hit.U, hit.V, hit.Point)

	srec, ok := hit.Material.Scatter(ray, hit, rng)
	if !ok {
		return emission
	}

	if srec.SkipPDF {
		sample := pt.Li(srec.SkipPDFRay, depth-1, rng)
		return emission.Add(srec.Attenuation.MultiplyVec(sample))
	}

	var samplingPDF core.PDF = srec.PDF
	if pt.Lights != nil {
		lightPDF := pdf.NewHittablePDF(pt.Lights, hit.Point)
		samplingPDF = pdf.NewMixturePDF(lightPDF, srec.PDF)
	}

	scatteredDirection := samplingPDF.Generate(rng)
	scatteredRay := core.NewRayAt(hit.Point, scatteredDirection, ray.Time)

	pdfVal := samplingPDF.Value(scatteredDirection)
	if pdfVal < 1e-5 {
		return emission
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scatteredRay)
	sample := pt.Li(scatteredRay, depth-1, rng)

	weighted := srec.Attenuation.MultiplyVec(sample).Multiply(scatteringPDF / pdfVal)
	return emission.Add(weighted)
}
