package renderer

import (
	"image"
	"math/rand"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Row-major tile index
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1), row 0 at the top
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a tile whose generator is seeded with seed+id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image. Edge tiles are clipped to the
// image, so every pixel belongs to exactly one tile.
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]*Tile, 0, tilesX*tilesY)
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(len(tiles), image.Rect(x0, y0, x1, y1), seed))
		}
	}

	return tiles
}
