package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/olekukonko/tablewriter"
)

// TileStats describes the work done for one tile
type TileStats struct {
	TileID   int
	Worker   int
	Pixels   int
	Samples  int64
	Duration time.Duration
}

// WorkerStats accumulates the tiles rendered by one worker
type WorkerStats struct {
	Worker  int
	Tiles   int
	Pixels  int
	Samples int64
	Busy    time.Duration
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height   int
	SamplesPerPixel int
	Threads         int
	Tiles           int
	TotalPixels     int
	TotalSamples    int64
	Elapsed         time.Duration
	BVH             geometry.BVHStats
	Workers         []WorkerStats // Indexed by worker ID
}

func newRenderStats(opts Options, tiles int, bvh geometry.BVHStats) RenderStats {
	workers := make([]WorkerStats, opts.Threads)
	for i := range workers {
		workers[i].Worker = i
	}
	return RenderStats{
		Width:           opts.Width,
		Height:          opts.Height,
		SamplesPerPixel: opts.SamplesPerPixel,
		Threads:         opts.Threads,
		Tiles:           tiles,
		BVH:             bvh,
		Workers:         workers,
	}
}

// addTile folds a finished tile into the totals
func (s *RenderStats) addTile(tile TileStats) {
	s.TotalPixels += tile.Pixels
	s.TotalSamples += tile.Samples

	w := &s.Workers[tile.Worker]
	w.Tiles++
	w.Pixels += tile.Pixels
	w.Samples += tile.Samples
	w.Busy += tile.Duration
}

// SamplesPerSecond is the overall sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// Table renders the per-worker breakdown as a text table
func (s RenderStats) Table() string {
	workers := make([]WorkerStats, len(s.Workers))
	copy(workers, s.Workers)
	sort.Slice(workers, func(i, j int) bool { return workers[i].Worker < workers[j].Worker })

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "Busy", "% of samples"})
	for _, w := range workers {
		share := 0.0
		if s.TotalSamples > 0 {
			share = 100 * float64(w.Samples) / float64(s.TotalSamples)
		}
		table.Append([]string{
			fmt.Sprintf("%d", w.Worker),
			fmt.Sprintf("%d", w.Tiles),
			fmt.Sprintf("%d", w.Pixels),
			fmt.Sprintf("%d", w.Samples),
			w.Busy.Round(time.Millisecond).String(),
			fmt.Sprintf("%02.1f %%", share),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", s.Tiles),
		fmt.Sprintf("%d", s.TotalPixels),
		fmt.Sprintf("%d", s.TotalSamples),
		s.Elapsed.Round(time.Millisecond).String(),
		fmt.Sprintf("%.0f/s", s.SamplesPerSecond()),
	})

	table.Render()
	return buf.String()
}
