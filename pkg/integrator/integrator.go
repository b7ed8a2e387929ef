// Package integrator implements the recursive Monte Carlo light transport
// algorithm that turns a scene and a camera ray into a radiance estimate.
package integrator

import (
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// Integrator computes the incoming radiance along a ray.
type Integrator interface {
	Li(ray core.Ray, depth int, rng *rand.Rand) core.Color
}
