package scene

import (
	"math/rand"

	"github.com/dkellan/gotracer/pkg/camera"
	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/geometry"
	"github.com/dkellan/gotracer/pkg/material"
)

// manyBallsSeed fixes the random placement of the small spheres so
// repeated renders of this scene are reproducible.
const manyBallsSeed = 42

// buildManyBalls is the classic "end of book one" scene: a ground plane, a
// grid of small randomly-scattered diffuse/metal/glass spheres, and three
// large feature spheres. It has no emissive surfaces, so the sky
// background supplies all the light and Lights is left nil.
func buildManyBalls(width int) *Scene {
	rng := rand.New(rand.NewSource(manyBallsSeed))

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(rng).MultiplyVec(core.RandomVec3(rng))
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(rng, 0.5, 1)
				fuzz := rng.Float64() * 0.5
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	world := geometry.NewBVH(objects)

	cam := camera.NewCamera(camera.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         width,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		Aperture:      0.6,
		FocusDistance: 10,
	})

	return &Scene{
		World:      world,
		Camera:     cam,
		Background: core.NewVec3(0.70, 0.80, 1.00),
	}
}
