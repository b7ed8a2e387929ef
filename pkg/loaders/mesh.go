package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/dkellan/gotracer/pkg/core"
)

// MeshTriangle is a flattened triangle pulled out of a glTF mesh primitive,
// in the mesh's local object space. Callers wrap these in geometry.Triangle
// and place them with geometry.Translate/RotateY like any other primitive.
type MeshTriangle struct {
	V0, V1, V2 core.Vec3
}

// LoadGLTFMesh reads a glTF (binary or text) document and flattens every
// triangle of the first mesh's first primitive into object-space triangles.
// Only POSITION and indexed triangle lists are supported; anything else
// returns an error rather than silently rendering garbage geometry.
func LoadGLTFMesh(filename string) ([]MeshTriangle, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file %s: %w", filename, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("glTF file %s has no mesh primitives", filename)
	}

	prim := doc.Meshes[0].Primitives[0]
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("glTF file %s mesh has no POSITION attribute", filename)
	}

	positions, err := gltf.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read glTF positions: %w", err)
	}

	if prim.Indices == nil {
		return nil, fmt.Errorf("glTF file %s mesh is not indexed", filename)
	}
	indices, err := gltf.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read glTF indices: %w", err)
	}

	triangles := make([]MeshTriangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := positions[indices[i]], positions[indices[i+1]], positions[indices[i+2]]
		triangles = append(triangles, MeshTriangle{
			V0: core.NewVec3(float64(a[0]), float64(a[1]), float64(a[2])),
			V1: core.NewVec3(float64(b[0]), float64(b[1]), float64(b[2])),
			V2: core.NewVec3(float64(c[0]), float64(c[1]), float64(c[2])),
		})
	}

	return triangles, nil
}
