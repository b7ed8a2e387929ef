package geometry

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// Triangle is a single flat triangle, the building block for mesh-based
// geometry. Per-vertex UVs are optional; without them the barycentric
// (u, v) coordinates themselves are used as texture coordinates.
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool
	Material      core.Material
	normal        core.Vec3
	bbox          core.AABB
}

func NewTriangle(v0, v1, v2 core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithUVs attaches per-vertex texture coordinates, interpolated
// barycentrically on hit.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: mat}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Unit()
}

func (t *Triangle) computeBoundingBox() {
	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2).Expand(1e-4)
}

// Hit implements the Moller-Trumbore ray/triangle intersection test.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.Interaction, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitPoint := ray.At(tParam)

	var uv core.Vec2
	if t.hasUVs {
		w := 1.0 - u - v
		uv = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		uv = core.NewVec2(u, v)
	}

	hit := &core.Interaction{
		T:        tParam,
		Point:    hitPoint,
		Material: t.Material,
		U:        uv.X,
		V:        uv.Y,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}

func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// PDFValue and Sample treat the triangle as a uniform-area emitter, the
// same construction as Quad but over a triangular domain.
func (t *Triangle) PDFValue(origin, direction core.Vec3) float64 {
	rec, ok := t.Hit(core.NewRay(origin, direction), 0.001, 1e8)
	if !ok {
		return 0
	}

	area := 0.5 * t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length()
	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * area)
}

func (t *Triangle) Sample(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	sqrtR1 := math.Sqrt(r1)

	// Standard uniform triangle sampling via barycentric coordinates.
	a := 1 - sqrtR1
	b := r2 * sqrtR1
	c := 1 - a - b

	p := t.V0.Multiply(a).Add(t.V1.Multiply(b)).Add(t.V2.Multiply(c))
	return p.Subtract(origin)
}
