package geometry

import (
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// HittableList is an unordered collection of Hittables that itself
// satisfies core.Hittable, so scenes, boxes and light groups can all be
// built the same way: test every member, keep the closest hit.
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
	hasBBox bool
}

func NewHittableList(objects ...core.Hittable) *HittableList {
	l := &HittableList{}
	for _, o := range objects {
		l.Add(o)
	}
	return l
}

// Add appends an object and folds its bounding box into the list's cached
// bounds, so BoundingBox() never has to re-scan the whole list.
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
	if l.hasBBox {
		l.bbox = l.bbox.Union(object.BoundingBox())
	} else {
		l.bbox = object.BoundingBox()
		l.hasBBox = true
	}
}

func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.Interaction, bool) {
	var closest *core.Interaction
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue averages each member's PDF equally, matching the "pick a light
// uniformly, then sample it" two-stage process used for light lists.
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// Sample picks a member uniformly at random and samples a direction toward
// it.
func (l *HittableList) Sample(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return l.Objects[rng.Intn(len(l.Objects))].Sample(origin, rng)
}
