package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// TileRenderer renders the pixels of one tile at a time into a shared buffer
type TileRenderer struct {
	scene           *scene.Scene
	integrator      integrator.Integrator
	buffer          *PixelBuffer
	samplesPerPixel int
}

// NewTileRenderer creates a tile renderer writing into buffer
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, buffer *PixelBuffer, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		scene:           s,
		integrator:      integratorInst,
		buffer:          buffer,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTile renders every pixel inside the tile bounds using the tile's own generator.
// Only pixels inside the bounds are written.
func (tr *TileRenderer) RenderTile(tile *Tile) TileStats {
	start := time.Now()
	camera := tr.scene.Camera
	random := tile.Random
	bounds := tile.Bounds

	// Pixel x covers s in [x/W, (x+1)/W), so the image spans exactly the camera's [0,1] view
	width := float64(tr.buffer.Width)
	height := float64(tr.buffer.Height)
	invSamples := 1.0 / float64(tr.samplesPerPixel)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		// Camera t runs bottom to top, image rows top to bottom
		row := float64(tr.buffer.Height - 1 - y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var colorAccum core.Vec3
			for sample := 0; sample < tr.samplesPerPixel; sample++ {
				s := (float64(x) + random.Float64()) / width
				t := (row + random.Float64()) / height
				ray := camera.GetRay(s, t, random)
				colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.scene, random))
			}

			pixel := colorAccum.Multiply(invSamples).GammaCorrect(tr.buffer.Gamma).Clamp(0.0, 1.0)
			tr.buffer.Set(x, y, pixel)
		}
	}

	return TileStats{
		TileID:   tile.ID,
		Pixels:   bounds.Dx() * bounds.Dy(),
		Samples:  int64(bounds.Dx()*bounds.Dy()) * int64(tr.samplesPerPixel),
		Duration: time.Since(start),
	}
}
