package geometry

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// ConstantMedium wraps a convex boundary shape and treats its interior as a
// participating medium of uniform density - fog, smoke. A ray that enters
// the boundary may scatter at a random point inside, chosen by sampling the
// exponential free-flight distance implied by density; short segments are
// more likely to pass straight through, long segments are not.
type ConstantMedium struct {
	Boundary      core.Hittable
	NegInvDensity float64
	PhaseFunction core.Material
}

func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		PhaseFunction: phaseFunction,
	}
}

// Hit finds where the ray enters and leaves the boundary, then rolls a
// random free-flight distance inside that span. If the rolled distance
// lands past the exit point the ray passes through the medium untouched.
func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.Interaction, bool) {
	hit1, ok := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}

	hit2, ok := c.Boundary.Hit(ray, hit1.T+0.0001, math.Inf(1))
	if !ok {
		return nil, false
	}

	if hit1.T < tMin {
		hit1.T = tMin
	}
	if hit2.T > tMax {
		hit2.T = tMax
	}

	if hit1.T >= hit2.T {
		return nil, false
	}

	if hit1.T < 0 {
		hit1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (hit2.T - hit1.T) * rayLength
	hitDistance := c.NegInvDensity * math.Log(math.Max(rand.Float64(), math.SmallestNonzeroFloat64))

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	tParam := hit1.T + hitDistance/rayLength

	return &core.Interaction{
		T:          tParam,
		Point:      ray.At(tParam),
		Normal:     core.NewVec3(1, 0, 0), // arbitrary, unused by the phase function
		FrontFace:  true,                  // arbitrary, unused by the phase function
		Material:   c.PhaseFunction,
		U:          hit1.U,
		V:          hit1.V,
	}, true
}

func (c *ConstantMedium) BoundingBox() core.AABB {
	return c.Boundary.BoundingBox()
}

func (c *ConstantMedium) PDFValue(origin, direction core.Vec3) float64 {
	return c.Boundary.PDFValue(origin, direction)
}

func (c *ConstantMedium) Sample(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return c.Boundary.Sample(origin, rng)
}
