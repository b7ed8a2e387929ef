package core

// Ray is a half-line through 3D space: Origin + t*Direction for t >= 0. Time
// records the shutter time the ray was cast at, used by time-varying
// geometry and textures; renderers that never animate anything can ignore it.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Time: 0}
}

func NewRayAt(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At evaluates the ray's position at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
