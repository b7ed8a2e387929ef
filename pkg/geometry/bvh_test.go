package geometry_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/geometry"
	"github.com/dkellan/gotracer/pkg/material"
)

func sphereAt(x float64) core.Hittable {
	return geometry.NewSphere(core.NewVec3(x, 0, 0), 0.4, material.NewLambertian(core.NewVec3(1, 1, 1)))
}

func TestBVHFindsNearestHitAmongManyObjects(t *testing.T) {
	var objects []core.Hittable
	for i := 0; i < 50; i++ {
		objects = append(objects, sphereAt(float64(i)*2))
	}

	bvh := geometry.NewBVH(objects)
	ray := core.NewRay(core.NewVec3(-10, 0, 0), core.NewVec3(1, 0, 0))

	hit, ok := bvh.Hit(ray, 0.001, 1e8)
	require.True(t, ok)
	assert.InDelta(t, -0.4, hit.Point.X, 1e-9)
}

func TestBVHMissesWhenRayClearsEverything(t *testing.T) {
	var objects []core.Hittable
	for i := 0; i < 10; i++ {
		objects = append(objects, sphereAt(float64(i)*2))
	}

	bvh := geometry.NewBVH(objects)
	ray := core.NewRay(core.NewVec3(-10, 100, 0), core.NewVec3(1, 0, 0))

	_, ok := bvh.Hit(ray, 0.001, 1e8)
	assert.False(t, ok)
}

func TestBVHBoundingBoxEnclosesAllChildren(t *testing.T) {
	objects := []core.Hittable{sphereAt(0), sphereAt(10), sphereAt(-10)}
	bvh := geometry.NewBVH(objects)
	box := bvh.BoundingBox()

	for _, o := range objects {
		childBox := o.BoundingBox()
		assert.LessOrEqual(t, box.Min.X, childBox.Min.X)
		assert.GreaterOrEqual(t, box.Max.X, childBox.Max.X)
	}
}

func TestBVHSingleObjectReturnsThatObject(t *testing.T) {
	obj := sphereAt(0)
	bvh := geometry.NewBVH([]core.Hittable{obj})
	assert.Equal(t, obj.BoundingBox(), bvh.BoundingBox())
}

func TestBVHPDFValueAveragesChildren(t *testing.T) {
	light1 := geometry.NewQuad(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	light2 := geometry.NewQuad(core.NewVec3(5, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		material.NewDiffuseLight(core.NewVec3(1, 1, 1)))

	bvh := geometry.NewBVH([]core.Hittable{light1, light2})
	origin := core.NewVec3(0, 0, -5)
	dir := core.NewVec3(0, 0, 1)

	got := bvh.PDFValue(origin, dir)
	want := 0.5*light1.PDFValue(origin, dir) + 0.5*light2.PDFValue(origin, dir)
	assert.InDelta(t, want, got, 1e-9)
}

func TestBVHSampleReturnsFiniteDirection(t *testing.T) {
	var objects []core.Hittable
	for i := 0; i < 8; i++ {
		objects = append(objects, sphereAt(float64(i)))
	}
	bvh := geometry.NewBVH(objects)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		dir := bvh.Sample(core.NewVec3(0, 10, 0), rng)
		assert.True(t, dir.IsFinite())
	}
}
