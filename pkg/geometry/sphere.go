package geometry

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// Sphere is centered at Center with the given Radius. A negative radius is
// a deliberate trick for building a hollow glass shell: the geometry is
// identical but the outward normal flips, so a Dielectric sphere nested
// inside another produces a shell of glass rather than a solid ball.
//
// CenterVec is the center's velocity over the [0, 1] shutter interval; it is
// the zero vector for a stationary sphere, so NewSphere and NewMovingSphere
// share the same underlying type.
type Sphere struct {
	Center    core.Vec3
	CenterVec core.Vec3
	Radius    float64
	Material  core.Material
}

func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// NewMovingSphere builds a sphere whose center moves linearly from
// center1 at time 0 to center2 at time 1, used for motion blur.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center1, CenterVec: center2.Subtract(center1), Radius: radius, Material: mat}
}

func (s *Sphere) centerAt(time float64) core.Vec3 {
	return s.Center.Add(s.CenterVec.Multiply(time))
}

func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.Interaction, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Divide(s.Radius)
	u, v := sphereUV(outwardNormal)

	hit := &core.Interaction{
		T:        root,
		Point:    point,
		Material: s.Material,
		U:        u,
		V:        v,
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to (u, v) texture coordinates
// via spherical coordinates: phi in [0, 2pi] around the Y axis, theta in
// [0, pi] measured from the -Y pole.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox spans both shutter-interval endpoints so a moving sphere's
// box covers everywhere it can be at any sampled time.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	start := core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
	if s.CenterVec == (core.Vec3{}) {
		return start
	}
	end := s.centerAt(1)
	return start.Union(core.NewAABB(end.Subtract(r), end.Add(r)))
}

// PDFValue returns the density of sampling this sphere as a light from
// origin toward direction, using the solid-angle-of-a-cone formula: a
// sphere light's apparent size shrinks the cone it subtends as distance
// grows, and the PDF must shrink correspondingly to stay normalized.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !ok {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// Sample returns a direction from origin toward a random point on the cone
// of the sphere visible from origin.
func (s *Sphere) Sample(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	onb := core.NewONBFromW(direction)
	return onb.Local(core.RandomToSphere(rng, s.Radius, distanceSquared))
}
