// Package texture implements the Texture contract (core.Texture): solid
// colors, decoded images, and Perlin-noise-driven procedural patterns.
package texture

import "github.com/dkellan/gotracer/pkg/core"

// Solid is a constant color texture, used for flat-shaded materials.
type Solid struct {
	Color core.Color
}

func NewSolid(c core.Color) *Solid {
	return &Solid{Color: c}
}

func NewSolidRGB(r, g, b float64) *Solid {
	return &Solid{Color: core.NewVec3(r, g, b)}
}

func (s *Solid) Value(u, v float64, p core.Vec3) core.Color {
	return s.Color
}
