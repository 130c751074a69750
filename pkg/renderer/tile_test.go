package renderer

import (
	"math/rand"
	"testing"
)

func TestNewTileGrid_CoversImageExactlyOnce(t *testing.T) {
	tests := []struct {
		width, height, tileSize int
		expectedTiles           int
	}{
		{100, 100, 16, 49},
		{17, 5, 4, 10},
		{1, 1, 16, 1},
		{33, 7, 8, 5},
		{64, 64, 64, 1},
		{3, 9, 1, 27},
	}

	for _, tt := range tests {
		tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 0)
		if len(tiles) != tt.expectedTiles {
			t.Errorf("%dx%d/%d: Expected %d tiles, got %d", tt.width, tt.height, tt.tileSize, tt.expectedTiles, len(tiles))
		}

		coverage := make([]int, tt.width*tt.height)
		for i, tile := range tiles {
			if tile.ID != i {
				t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
			}
			if tile.Bounds.Empty() {
				t.Errorf("Expected non-empty tile %d", tile.ID)
			}
			if tile.Bounds.Dx() > tt.tileSize || tile.Bounds.Dy() > tt.tileSize {
				t.Errorf("Expected tile no larger than %d, got %v", tt.tileSize, tile.Bounds)
			}
			for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
				for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
					if x < 0 || y < 0 || x >= tt.width || y >= tt.height {
						t.Fatalf("Expected tile %d inside the image, got %v", tile.ID, tile.Bounds)
					}
					coverage[y*tt.width+x]++
				}
			}
		}

		for i, count := range coverage {
			if count != 1 {
				t.Fatalf("%dx%d/%d: Expected pixel %d covered once, got %d", tt.width, tt.height, tt.tileSize, i, count)
			}
		}
	}
}

func TestNewTileGrid_RowMajorOrder(t *testing.T) {
	tiles := NewTileGrid(40, 20, 16, 0)
	// 3 tiles across, 2 down
	if tiles[1].Bounds.Min.X != 16 || tiles[1].Bounds.Min.Y != 0 {
		t.Errorf("Expected second tile at (16,0), got %v", tiles[1].Bounds.Min)
	}
	if tiles[3].Bounds.Min.X != 0 || tiles[3].Bounds.Min.Y != 16 {
		t.Errorf("Expected fourth tile at (0,16), got %v", tiles[3].Bounds.Min)
	}
	if tiles[2].Bounds.Dx() != 8 || tiles[5].Bounds.Dy() != 4 {
		t.Errorf("Expected clipped edge tiles, got %v and %v", tiles[2].Bounds, tiles[5].Bounds)
	}
}

func TestNewTileGrid_SeedsPerTile(t *testing.T) {
	const seed = 1234
	tiles := NewTileGrid(32, 32, 16, seed)

	for _, tile := range tiles {
		expected := rand.New(rand.NewSource(seed + int64(tile.ID))).Float64()
		if got := tile.Random.Float64(); got != expected {
			t.Errorf("tile %d: Expected first draw %v, got %v", tile.ID, expected, got)
		}
	}

	if tiles[0].Random == tiles[1].Random {
		t.Error("Expected each tile to own its generator")
	}
}
