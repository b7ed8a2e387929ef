// Package camera builds the pinhole-with-defocus-disk camera model used to
// generate primary rays: a CameraConfig of human-meaningful parameters
// (eye position, look-at target, field of view, aperture) is expanded once
// into the orthonormal basis and viewport vectors GetRay needs per sample.
package camera

import (
	"math"
	"math/rand"

	"github.com/dkellan/gotracer/pkg/core"
)

// CameraConfig is the set of parameters a scene builder specifies; zero
// values for Width/AspectRatio/VFov/FocusDistance are filled with defaults
// by NewCamera so a scene only has to set what it cares about.
type CameraConfig struct {
	Center        core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	Width         int
	AspectRatio   float64
	VFov          float64
	Aperture      float64 // full defocus angle in degrees; 0 disables depth of field
	FocusDistance float64
}

func (c CameraConfig) withDefaults() CameraConfig {
	if c.Width == 0 {
		c.Width = 400
	}
	if c.AspectRatio == 0 {
		c.AspectRatio = 16.0 / 9.0
	}
	if c.VFov == 0 {
		c.VFov = 40
	}
	if c.FocusDistance == 0 {
		c.FocusDistance = 10
	}
	if c.Up == (core.Vec3{}) {
		c.Up = core.NewVec3(0, 1, 0)
	}
	return c
}

// Camera holds the expanded, ready-to-sample viewport basis for a fixed
// configuration.
type Camera struct {
	Width, Height int

	center       core.Vec3
	pixel00Loc   core.Vec3
	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	u, v, w      core.Vec3
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	defocusAngle float64
}

func NewCamera(config CameraConfig) *Camera {
	config = config.withDefaults()

	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(height))

	w := config.Center.Subtract(config.LookAt).Unit()
	u := config.Up.Cross(w).Unit()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(height))

	viewportUpperLeft := config.Center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.Aperture/2))

	return &Camera{
		Width:        config.Width,
		Height:       height,
		center:       config.Center,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		defocusAngle: config.Aperture,
	}
}

// GetRay returns a randomly jittered ray through pixel (i, j), originating
// from the defocus disk when depth of field is enabled, with a time sampled
// uniformly within the shutter-open interval [0, 1] for motion blur.
func (c *Camera) GetRay(i, j int, rng *rand.Rand) core.Ray {
	offsetX := rng.Float64() - 0.5
	offsetY := rng.Float64() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(rng)
	}

	direction := pixelSample.Subtract(origin)
	time := rng.Float64()

	return core.NewRayAt(origin, direction, time)
}

func (c *Camera) defocusDiskSample(rng *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(rng)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
