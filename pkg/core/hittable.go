package core

import "math/rand"

// Hittable is anything a ray can intersect: primitives, lists, transforms
// and the BVH all satisfy it. PDFValue/Sample support light importance
// sampling (HittablePDF in pkg/pdf) and default to zero/arbitrary for shapes
// that are never used as a light.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*Interaction, bool)
	BoundingBox() AABB

	// PDFValue returns the density, with respect to solid angle at origin,
	// of sampling this object in the given direction.
	PDFValue(origin, direction Vec3) float64

	// Sample returns a random direction from origin toward this object,
	// used by HittablePDF to importance-sample lights.
	Sample(origin Vec3, rng *rand.Rand) Vec3
}
