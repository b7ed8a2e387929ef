package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkellan/gotracer/pkg/core"
	"github.com/dkellan/gotracer/pkg/geometry"
	"github.com/dkellan/gotracer/pkg/material"
)

func TestRotateYNinetyDegreesMapsXAxisToZAxis(t *testing.T) {
	box := geometry.NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), material.NewLambertian(core.Vec3{}))
	rotated := geometry.NewRotateY(box, 90)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := rotated.Hit(ray, 0.001, 1e8)
	require.True(t, ok)
	assert.InDelta(t, -1, hit.Point.Z, 1e-6)
}

func TestRotateYBoundingBoxEnclosesRotatedCorners(t *testing.T) {
	box := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 1), material.NewLambertian(core.Vec3{}))
	rotated := geometry.NewRotateY(box, 45)
	bbox := rotated.BoundingBox()

	// A unit-ish box rotated 45 degrees about Y must grow its X/Z extent
	// relative to the unrotated box (diagonal now spans more ground).
	original := box.BoundingBox()
	assert.Greater(t, bbox.Max.X-bbox.Min.X, original.Max.X-original.Min.X-1e-9)
}

func TestRotateYZeroDegreesIsIdentity(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(1, 2, 3), 1, material.NewLambertian(core.Vec3{}))
	rotated := geometry.NewRotateY(sphere, 0)

	ray := core.NewRay(core.NewVec3(1, 2, -5), core.NewVec3(0, 0, 1))

	wantHit, wantOK := sphere.Hit(ray, 0.001, 1e8)
	gotHit, gotOK := rotated.Hit(ray, 0.001, 1e8)

	require.Equal(t, wantOK, gotOK)
	require.True(t, gotOK)
	assert.InDelta(t, wantHit.T, gotHit.T, 1e-9)
	assert.InDelta(t, wantHit.Point.X, gotHit.Point.X, 1e-9)
	assert.InDelta(t, wantHit.Point.Z, gotHit.Point.Z, 1e-9)
}

func TestRotateYMissPassesThrough(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.Vec3{}))
	rotated := geometry.NewRotateY(sphere, 30)

	ray := core.NewRay(core.NewVec3(0, 100, -5), core.NewVec3(0, 0, 1))
	_, ok := rotated.Hit(ray, 0.001, 1e8)
	assert.False(t, ok)
}

func TestRotateYOneEightyFlipsXAndZ(t *testing.T) {
	// A 180 degree rotation about Y should send (x, y, z) object-space
	// points to (-x, y, -z) in world space - a cheap, exact sanity check
	// on the forward/inverse rotation matrices agreeing with each other.
	sphere := geometry.NewSphere(core.NewVec3(3, 0, 0), 0.5, material.NewLambertian(core.Vec3{}))
	rotated := geometry.NewRotateY(sphere, 180)

	ray := core.NewRay(core.NewVec3(-3, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := rotated.Hit(ray, 0.001, 1e8)
	require.True(t, ok)
	assert.InDelta(t, -3, hit.Point.X, 1e-6)
	assert.InDelta(t, -0.5, hit.Point.Z, 1e-6)
}
