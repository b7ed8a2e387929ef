// Package loaders implements the external-asset collaborators the renderer
// depends on through narrow interfaces: image decoding for image textures
// and glTF mesh import for scene authoring. Neither format is part of the
// core rendering algorithm, so failures here are asset-load errors, not
// numeric or structural ones.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // baseline JPEG decoder (earthmap.jpg)
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // broadens the decodable asset surface beyond JPEG/PNG
	_ "golang.org/x/image/tiff"

	"github.com/dkellan/gotracer/pkg/core"
)

// ImageData is a decoded raster image, flattened to a row-major Vec3 buffer
// in linear [0, 1] per channel.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage decodes a PNG, JPEG, BMP or TIFF file into an ImageData. The
// format is auto-detected from the file's magic bytes; LoadImage never
// guesses from the file extension.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}
