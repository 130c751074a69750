package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelBuffer holds the finished image as gamma corrected colors in [0,1], row-major with
// row 0 at the top. During a render each tile's pixels are written by exactly one worker.
type PixelBuffer struct {
	Width  int
	Height int
	Gamma  float64 // Gamma the pixels were encoded with
	Pix    []core.Vec3
}

// NewPixelBuffer creates a black buffer
func NewPixelBuffer(width, height int, gamma float64) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Gamma:  gamma,
		Pix:    make([]core.Vec3, width*height),
	}
}

// At returns the pixel at column x, row y
func (b *PixelBuffer) At(x, y int) core.Vec3 {
	return b.Pix[y*b.Width+x]
}

// Set stores the pixel at column x, row y
func (b *PixelBuffer) Set(x, y int, c core.Vec3) {
	b.Pix[y*b.Width+x] = c
}

// Linear returns the pixel at (x, y) with the gamma encoding removed
func (b *PixelBuffer) Linear(x, y int) core.Vec3 {
	return b.At(x, y).GammaCorrect(1.0 / b.Gamma)
}

// toByte rounds a [0,1] channel to the nearest 8-bit level
func toByte(v float64) uint8 {
	return uint8(255*min(1, max(0, v)) + 0.5)
}

// ToRGBA converts the buffer to an 8-bit image
func (b *PixelBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}
	return img
}
