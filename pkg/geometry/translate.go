package geometry

import (
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// Translate wraps a Hittable and offsets it by a fixed vector. The ray is
// moved into the wrapped object's local space instead of moving the
// object, so the inner object never needs to know it has been translated.
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	box := object.BoundingBox()
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   core.NewAABB(box.Min.Add(offset), box.Max.Add(offset)),
	}
}

func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.Interaction, bool) {
	offsetRay := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(offsetRay, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return t.Object.PDFValue(origin.Subtract(t.Offset), direction)
}

func (t *Translate) Sample(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return t.Object.Sample(origin.Subtract(t.Offset), rng)
}
