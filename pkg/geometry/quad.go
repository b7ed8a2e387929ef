package geometry

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// Quad is a flat parallelogram defined by a corner and two edge vectors,
// the workhorse primitive for walls, the cornell box light and (via Box)
// axis-aligned crates.
type Quad struct {
	Corner   core.Vec3
	U, V     core.Vec3
	Normal   core.Vec3
	Material core.Material
	d        float64   // plane equation constant: normal . p = d
	w        core.Vec3 // cached for barycentric coordinate extraction
	area     float64
}

func NewQuad(corner, u, v core.Vec3, mat core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Unit()
	d := normal.Dot(corner)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		d:        d,
		w:        w,
		area:     cross.Length(),
	}
}

func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*core.Interaction, bool) {
	denom := ray.Direction.Dot(q.Normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if !isInterior(alpha, beta) {
		return nil, false
	}

	hit := &core.Interaction{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
		U:        alpha,
		V:        beta,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// isInterior checks whether planar barycentric coordinates (alpha, beta)
// fall within the unit square that bounds the quad.
func isInterior(alpha, beta float64) bool {
	return alpha >= 0 && alpha <= 1 && beta >= 0 && beta <= 1
}

func (q *Quad) BoundingBox() core.AABB {
	corners := []core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}
	return core.NewAABBFromPoints(corners...).Expand(1e-4)
}

// PDFValue is the density, w.r.t. solid angle at origin, of sampling this
// quad uniformly over its area and converting to a direction - used when
// the quad is an emissive light sampled via HittablePDF.
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	rec, ok := q.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * q.area)
}

// Sample returns a direction from origin toward a uniformly random point on
// the quad's surface.
func (q *Quad) Sample(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	p := q.Corner.
		Add(q.U.Multiply(rng.Float64())).
		Add(q.V.Multiply(rng.Float64()))
	return p.Subtract(origin)
}
