package material_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/material"
)

func upwardHit() *core.Interaction {
	return &core.Interaction{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
}

func TestLambertianScatterStaysAboveSurface(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := upwardHit()

	for i := 0; i < 100; i++ {
		rec, ok := l.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, rng)
		require.True(t, ok)
		require.False(t, rec.SkipPDF)
		dir := rec.PDF.Generate(rng)
		assert.GreaterOrEqual(t, dir.Dot(hit.Normal), -1e-9)
		assert.InDelta(t, 0.5, rec.Attenuation.X, 1e-9)
	}
}

func TestLambertianScatteringPDFMatchesCosineLaw(t *testing.T) {
	l := material.NewLambertian(core.NewVec3(1, 1, 1))
	hit := upwardHit()
	scattered := core.NewRay(hit.Point, core.NewVec3(0, 1, 0))
	pdf := l.ScatteringPDF(core.Ray{}, hit, scattered)
	assert.InDelta(t, 1.0/math.Pi, pdf, 1e-9)
}

func TestMetalPerfectMirrorHasNoFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	hit := upwardHit()

	rec, ok := m.Scatter(core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1).Unit()), hit, rng)
	require.True(t, ok)
	require.True(t, rec.SkipPDF)
	assert.InDelta(t, 0, rec.SkipPDFRay.Direction.X, 1e-9)
	assert.Greater(t, rec.SkipPDFRay.Direction.Y, 0.0)
}

func TestMetalScattersEvenWhenReflectionIsBelowSurface(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	hit := upwardHit()

	// A ray arriving from below the surface (travelling +Y against a +Y
	// normal) reflects to -Y, below the surface; Metal still scatters it.
	_, ok := m.Scatter(core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)), hit, rng)
	assert.True(t, ok)
}

func TestReflectanceAtNormalIncidenceMatchesR0(t *testing.T) {
	r0 := math.Pow((1-1.5)/(1+1.5), 2)
	assert.InDelta(t, r0, material.Reflectance(1.0, 1.5), 1e-9)
}

func TestReflectanceApproachesOneAtGrazingAngle(t *testing.T) {
	got := material.Reflectance(0.001, 1.5)
	assert.Greater(t, got, 0.9)
}

func TestDiffuseLightOnlyEmitsOnFrontFace(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	front := upwardHit()
	front.FrontFace = true
	assert.Equal(t, core.NewVec3(4, 4, 4), light.Emitted(core.Ray{}, front, 0, 0, core.Vec3{}))

	back := upwardHit()
	back.FrontFace = false
	assert.Equal(t, core.Vec3{}, light.Emitted(core.Ray{}, back, 0, 0, core.Vec3{}))

	_, ok := light.Scatter(core.Ray{}, front, rand.New(rand.NewSource(4)))
	assert.False(t, ok, "lights must not scatter incoming rays")
}

func TestIsotropicScatteringPDFIsUniform(t *testing.T) {
	iso := material.NewIsotropic(core.NewVec3(0.9, 0.9, 0.9))
	pdf := iso.ScatteringPDF(core.Ray{}, &core.Interaction{}, core.Ray{})
	assert.InDelta(t, 1.0/(4.0*math.Pi), pdf, 1e-9)
}

func TestIsotropicScatterCoversFullSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	iso := material.NewIsotropic(core.NewVec3(0.9, 0.9, 0.9))
	rec, ok := iso.Scatter(core.Ray{}, &core.Interaction{}, rng)
	require.True(t, ok)

	sawNegative := false
	for i := 0; i < 200; i++ {
		if rec.PDF.Generate(rng).Y < 0 {
			sawNegative = true
			break
		}
	}
	assert.True(t, sawNegative, "isotropic scattering must not be confined to a hemisphere")
}
