package scene

import (
	"github.com/dkellan/gotracer/pkg/camera"
	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/geometry"
	"github.com/dkellan/gotracer/pkg/material"
)

// buildCornellBox is the standard Cornell box: five enclosing walls, an
// area light set into the ceiling, a tall rotated box and a glass sphere.
// The light and the glass sphere are both registered as Lights so the
// integrator can aim samples at them directly - the glass sphere trick
// from Ray Tracing: The Rest of Your Life, used to resolve the caustic
// under it.
func buildCornellBox(width int) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	lightMat := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world := geometry.NewHittableList()

	world.Add(geometry.NewQuad(core.NewVec3(555, 0, 555), core.NewVec3(0, 555, 0), core.NewVec3(-555, 0, 0), white)) // back
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, -555), red))    // right
	world.Add(geometry.NewQuad(core.NewVec3(555, 0, 555), core.NewVec3(0, 0, -555), core.NewVec3(0, 555, 0), green)) // left
	world.Add(geometry.NewQuad(core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))   // top
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))     // bottom

	light := geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), lightMat)
	world.Add(light)

	lights := geometry.NewHittableList(light)

	box1 := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	box1Rot := geometry.NewRotateY(box1, 15)
	box1Trans := geometry.NewTranslate(box1Rot, core.NewVec3(265, 0, 295))
	world.Add(box1Trans)

	glassSphere := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	world.Add(glassSphere)
	lights.Add(glassSphere)

	cam := camera.NewCamera(camera.CameraConfig{
		Center:        core.NewVec3(278, 278, -800),
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
