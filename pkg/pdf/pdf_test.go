package pdf_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/geometry"
	"github.com/dkellan/gotracer/pkg/material"
	"github.com/dkellan/gotracer/pkg/pdf"
)

// Scenario 3 from SPEC_FULL.md section 8: a Cornell-box light quad, checked
// against the closed-form inverse-square/cosine PDF.
func TestHittablePDFMatchesCornellLightLiteralScenario(t *testing.T) {
	light := geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105),
		material.NewDiffuseLight(core.NewVec3(15, 15, 15)))

	origin := core.NewVec3(278, 278, 278)
	center := core.NewVec3(343, 554, 332).
		Add(core.NewVec3(-130, 0, 0).Multiply(0.5)).
		Add(core.NewVec3(0, 0, -105).Multiply(0.5))
	direction := center.Subtract(origin)

	p := pdf.NewHittablePDF(light, origin)
	got := p.Value(direction)

	const area = 130.0 * 105.0
	distanceSquared := direction.LengthSquared()
	normal := core.NewVec3(-130, 0, 0).Cross(core.NewVec3(0, 0, -105)).Unit()
	cosine := direction.Dot(normal)
	if cosine < 0 {
		cosine = -cosine
	}
	cosine /= direction.Length()
	want := distanceSquared / (cosine * area)

	assert.InDelta(t, want, got, 1e-9)
}

func TestHittablePDFIsZeroForNearZeroDirection(t *testing.T) {
	light := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	p := pdf.NewHittablePDF(light, core.NewVec3(0, 0, -1))

	assert.Equal(t, 0.0, p.Value(core.Vec3{}))
}

func TestHittablePDFGenerateAimsAtTheObject(t *testing.T) {
	light := geometry.NewSphere(core.NewVec3(0, 0, 10), 1, material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	origin := core.NewVec3(0, 0, 0)
	p := pdf.NewHittablePDF(light, origin)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		dir := p.Generate(rng)
		// Every generated direction should point generally toward +Z,
		// where the light sphere sits.
		assert.Greater(t, dir.Unit().Z, 0.0)
	}
}

func TestMixturePDFAveragesBothStrategies(t *testing.T) {
	light := geometry.NewQuad(core.NewVec3(-1, -1, 5), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
		material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	lightPDF := pdf.NewHittablePDF(light, core.NewVec3(0, 0, 0))

	cosine := constCosinePDF{value: 0.3}
	mix := pdf.NewMixturePDF(lightPDF, cosine)

	dir := core.NewVec3(0, 0, 1)
	got := mix.Value(dir)
	want := 0.5*lightPDF.Value(dir) + 0.5*cosine.Value(dir)
	assert.InDelta(t, want, got, 1e-9)
}

func TestMixturePDFGenerateSplitsBetweenStrategies(t *testing.T) {
	a := constDirPDF{dir: core.NewVec3(1, 0, 0)}
	b := constDirPDF{dir: core.NewVec3(0, 1, 0)}
	mix := pdf.NewMixturePDF(a, b)

	rng := rand.New(rand.NewSource(13))
	sawA, sawB := false, false
	for i := 0; i < 200; i++ {
		d := mix.Generate(rng)
		if d == a.dir {
			sawA = true
		}
		if d == b.dir {
			sawB = true
		}
	}
	require.True(t, sawA)
	require.True(t, sawB)
}

type constCosinePDF struct {
	value float64
}

func (c constCosinePDF) Value(core.Vec3) float64        { return c.value }
func (c constCosinePDF) Generate(*rand.Rand) core.Vec3 { return core.Vec3{} }

type constDirPDF struct {
	dir core.Vec3
}

func (c constDirPDF) Value(core.Vec3) float64         { return 1 }
func (c constDirPDF) Generate(*rand.Rand) core.Vec3 { return c.dir }
