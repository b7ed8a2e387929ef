package core

// Interaction records everything known about a ray/surface intersection: the
// hit point, the (front-facing) normal, the ray parameter, texture
// coordinates and the material responsible for scattering. Every Hittable
// primitive fills one of these in on a hit.
type Interaction struct {
	Point     Vec3
	Normal    Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal to always point against the incoming ray and
// records whether the hit was on the geometric front face. outwardNormal
// must be a unit vector.
func (hr *Interaction) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	hr.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if hr.FrontFace {
		hr.Normal = outwardNormal
	} else {
		hr.Normal = outwardNormal.Negate()
	}
}
