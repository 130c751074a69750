package material

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/mrjoshuak/go-openexr/exr"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// LoadImageTexture decodes a PNG, JPEG or OpenEXR file into an image texture.
// EXR pixels are used as stored, without clamping.
func LoadImageTexture(filename string) (*ImageTexture, error) {
	if strings.EqualFold(filepath.Ext(filename), ".exr") {
		return loadEXRTexture(filename)
	}

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
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewImageTexture(width, height, pixels), nil
}

func loadEXRTexture(filename string) (*ImageTexture, error) {
	img, err := exr.DecodeFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.RGBA(x+bounds.Min.X, y+bounds.Min.Y)
			pixels[y*width+x] = core.NewVec3(float64(r), float64(g), float64(b))
		}
	}

	return NewImageTexture(width, height, pixels), nil
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// A texture without pixels evaluates to cyan so missing data is visible in renders.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.NewVec3(0, 1, 1)
	}

	// Clamp UV to [0,1]
	u := min(1, max(0, uv.X))
	v := min(1, max(0, uv.Y))

	// V=0 is bottom, V=1 is top
	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int((1.0-v)*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
