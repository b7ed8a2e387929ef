package geometry

import "github.com/dkellan/gotracer/pkg/core"

// NewBox returns a HittableList containing the six axis-aligned quads that
// bound the box between opposite corners p0 and p1 - the standard "two
// corners to six faces" box constructor, not a Hittable in its own right so
// that ConstantMedium (which needs an object it can shoot rays through
// twice) can wrap the returned list directly.
func NewBox(p0, p1 core.Vec3, mat core.Material) *HittableList {
	minP := core.NewVec3(minFloat(p0.X, p1.X), minFloat(p0.Y, p1.Y), minFloat(p0.Z, p1.Z))
	maxP := core.NewVec3(maxFloat(p0.X, p1.X), maxFloat(p0.Y, p1.Y), maxFloat(p0.Z, p1.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	sides := NewHittableList()
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, mat))           // front
	sides.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, mat))  // right
	sides.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, mat))  // back
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, mat))           // left
	sides.Add(NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), mat))  // top
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, mat))           // bottom

	return sides
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
