package scene

import (
	"math/rand"

	"github.com/dkellan/gotracer/pkg/camera"
	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/geometry"
	"github.com/dkellan/gotracer/pkg/material"
	"github.com/dkellan/gotracer/pkg/texture"
)

// finalSceneSeed fixes the ground box heights and the sphere cluster so
// repeated renders of this scene are reproducible.
const finalSceneSeed = 1

// buildFinalScene is "Ray Tracing: The Next Week"'s closing composite:
// a BVH of randomly-heighted ground boxes, a ceiling light, a motion-blurred
// sphere, glass and metal spheres, a subsurface-scattering sphere, a global
// fog volume, an earth-mapped sphere, a noise-textured sphere and a
// rotated, translated cluster of small spheres.
func buildFinalScene(width int) *Scene {
	rng := rand.New(rand.NewSource(finalSceneSeed))

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	var groundBoxes []core.Hittable
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y0 := 0.0
			x1 := x0 + w
			y1 := core.RandomFloatRange(rng, 1, 101)
			z1 := z0 + w

			groundBoxes = append(groundBoxes, geometry.NewBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), ground))
		}
	}

	world := geometry.NewHittableList()
	world.Add(geometry.NewBVH(groundBoxes))

	lightMat := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	light := geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), lightMat)
	world.Add(light)
	lights := geometry.NewHittableList(light)

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	sphereMat := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))
	world.Add(geometry.NewMovingSphere(center1, center2, 50, sphereMat))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2, material.NewIsotropic(core.NewVec3(0.2, 0.4, 0.9))))

	boundary2 := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(boundary2, 0.0001, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	earthTex, _ := texture.NewImage("earthmap.jpg")
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewLambertianTexture(earthTex)))

	noiseTex := texture.NewNoise(rng, 0.2)
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewLambertianTexture(noiseTex)))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	var cluster []core.Hittable
	const clusterSize = 1000
	for i := 0; i < clusterSize; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3Range(rng, 0, 165), 10, white))
	}
	clusterRot := geometry.NewRotateY(geometry.NewBVH(cluster), 15)
	clusterTrans := geometry.NewTranslate(clusterRot, core.NewVec3(-100, 270, 395))
	world.Add(clusterTrans)

	cam := camera.NewCamera(camera.CameraConfig{
		Center:        core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         width,
		AspectRatio:   1.0,
		VFov:          40,
		FocusDistance: 10,
	})

	return &Scene{
		World:      world,
		Lights:     lights,
		Camera:     cam,
		Background: core.Vec3{},
	}
}
