package geometry

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// RotateY wraps a Hittable and rotates it by a fixed angle (degrees) about
// the Y axis. Hit transforms the incoming ray into the wrapped object's
// unrotated space, then rotates the resulting point and normal back into
// world space.
//
// The face-normal orientation is recomputed against the original
// world-space ray using the rotated normal. Because the wrapped object has
// already oriented that normal against the ray, the result always reports a
// front-face hit; the wrapped object's own FrontFace value is not kept.
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

func NewRotateY(object core.Hittable, angleDegrees float64) *RotateY {
	radians := core.DegreesToRadians(angleDegrees)
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	box := object.BoundingBox()
	minP := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxP := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, box.Min.X, box.Max.X)
				y := lerpCorner(j, box.Min.Y, box.Max.Y)
				z := lerpCorner(k, box.Min.Z, box.Max.Z)

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				tester := core.NewVec3(newX, y, newZ)

				minP = core.NewVec3(math.Min(minP.X, tester.X), math.Min(minP.Y, tester.Y), math.Min(minP.Z, tester.Z))
				maxP = core.NewVec3(math.Max(maxP.X, tester.X), math.Max(maxP.Y, tester.Y), math.Max(maxP.Z, tester.Z))
			}
		}
	}

	return &RotateY{
		Object:   object,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABB(minP, maxP),
	}
}

func lerpCorner(i int, min, max float64) float64 {
	if i == 1 {
		return max
	}
	return min
}

func (r *RotateY) toObjectSpace(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

func (r *RotateY) toWorldSpace(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*core.Interaction, bool) {
	objectRay := core.NewRayAt(r.toObjectSpace(ray.Origin), r.toObjectSpace(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(objectRay, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorldSpace(hit.Point)
	worldNormal := r.toWorldSpace(hit.Normal)
	hit.SetFaceNormal(ray, worldNormal)

	return hit, true
}

func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return r.Object.PDFValue(r.toObjectSpace(origin), r.toObjectSpace(direction))
}

func (r *RotateY) Sample(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	objectDirection := r.Object.Sample(r.toObjectSpace(origin), rng)
	return r.toWorldSpace(objectDirection)
}
