// Package scene builds the fixed set of named scenes the renderer can
// produce: a world of hittables (a BVH or a flat list), an optional flat list of
// lights for importance sampling, and a camera.
package scene

import (
	"fmt"

	"github.com/dkellan/gotracer/pkg/camera"
	"github.com/dkellan/gotracer/pkg/core"
)

// Scene bundles everything a render needs beyond sample count and depth.
type Scene struct {
	World      core.Hittable
	Lights     core.Hittable // nil if the scene has no importance-sampled lights
	Camera     *camera.Camera
	Background core.Color
}

// Names lists the scene identifiers accepted on the command line.
var Names = []string{"many_balls", "cornell_box", "final_scene"}

// Build constructs the named scene at the given image width. width is a
// full viewport width in pixels; each scene builder derives its own aspect
// ratio and therefore its own height.
func Build(name string, width int) (*Scene, error) {
	switch name {
	case "many_balls":
		return buildManyBalls(width), nil
	case "cornell_box":
		return buildCornellBox(width), nil
	case "final_scene":
		return buildFinalScene(width), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (want one of %v)", name, Names)
	}
}
