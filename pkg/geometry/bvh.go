package geometry

import (
	"math/rand"
	"sort"

	"github.com/dkellan/gotracer/pkg/core"
)

// BVH is a binary bounding volume hierarchy over a fixed list of Hittables.
// Construction picks a random axis at each node and splits the list at its
// median along that axis, rather than searching for an optimal split - the
// tree isn't guaranteed balanced by surface area, but it's cheap to build
// and more than good enough to cut ray/object tests from O(n) to O(log n).
type BVH struct {
	left, right core.Hittable
	bbox        core.AABB
}

// NewBVH builds a BVH over objects. The caller's slice is not modified.
func NewBVH(objects []core.Hittable) core.Hittable {
	working := make([]core.Hittable, len(objects))
	copy(working, objects)
	return buildBVH(working)
}

func buildBVH(objects []core.Hittable) core.Hittable {
	switch len(objects) {
	case 0:
		return nil
	case 1:
		return objects[0]
	case 2:
		return &BVH{
			left:  objects[0],
			right: objects[1],
			bbox:  objects[0].BoundingBox().Union(objects[1].BoundingBox()),
		}
	}

	axis := rand.Intn(3)
	sort.Slice(objects, func(i, j int) bool {
		return boxAxisMin(objects[i].BoundingBox(), axis) < boxAxisMin(objects[j].BoundingBox(), axis)
	})

	mid := len(objects) / 2
	left := buildBVH(objects[:mid])
	right := buildBVH(objects[mid:])

	return &BVH{
		left:  left,
		right: right,
		bbox:  left.BoundingBox().Union(right.BoundingBox()),
	}
}

func boxAxisMin(box core.AABB, axis int) float64 {
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.Interaction, bool) {
	if !b.bbox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := b.left.Hit(ray, tMin, tMax)
	closest := tMax
	if hitLeft {
		closest = leftHit.T
	}

	rightHit, hitRight := b.right.Hit(ray, tMin, closest)
	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return nil, false
}

func (b *BVH) BoundingBox() core.AABB {
	return b.bbox
}

// PDFValue and Sample are not expected to be called on a BVH directly -
// light sampling operates on the flat light list, not the acceleration
// structure built over the whole scene - but they're implemented so BVH
// satisfies core.Hittable unconditionally.
func (b *BVH) PDFValue(origin, direction core.Vec3) float64 {
	return 0.5*b.left.PDFValue(origin, direction) + 0.5*b.right.PDFValue(origin, direction)
}

func (b *BVH) Sample(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if rng.Float64() < 0.5 {
		return b.left.Sample(origin, rng)
	}
	return b.right.Sample(origin, rng)
}
