package renderer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var logger = log.New("renderer")

// aspectTolerance is the relative difference allowed between image and camera aspect ratios,
// enough to absorb rounding the image height to whole pixels
const aspectTolerance = 0.01

// Render renders s with the given image size and sampling settings using DefaultOptions
// for everything else. It blocks until every tile is finished.
func Render(s *scene.Scene, width, height, samplesPerPixel, maxDepth, threads int) (*PixelBuffer, error) {
	opts := DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.SamplesPerPixel = samplesPerPixel
	opts.MaxDepth = maxDepth
	opts.Threads = threads

	buffer, _, err := RenderWithOptions(context.Background(), s, opts, nil)
	return buffer, err
}

// RenderWithOptions splits the image into tiles and renders them on opts.Threads workers.
// The first tile error cancels the remaining tiles and is returned on its own, together
// with a nil buffer. A nil logger logs under the "renderer" module.
func RenderWithOptions(ctx context.Context, s *scene.Scene, opts Options, l log.Logger) (*PixelBuffer, RenderStats, error) {
	if l == nil {
		l = logger
	}
	if s == nil {
		return nil, RenderStats{}, ErrNilScene
	}
	if err := opts.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if cameraAspect := s.Camera.Config().AspectRatio; math.Abs(opts.AspectRatio()-cameraAspect) > aspectTolerance*cameraAspect {
		return nil, RenderStats{}, fmt.Errorf("%w: image %dx%d is %.4f, camera is %.4f",
			ErrAspectMismatch, opts.Width, opts.Height, opts.AspectRatio(), cameraAspect)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	buffer := NewPixelBuffer(opts.Width, opts.Height, opts.Gamma)
	tiles := NewTileGrid(opts.Width, opts.Height, opts.TileSize, opts.Seed)
	stats := newRenderStats(opts, len(tiles), s.BVH.Stats())

	l.Noticef("rendering %dx%d, %d spp, depth %d: %d tiles of %dpx on %d workers",
		opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth, len(tiles), opts.TileSize, opts.Threads)
	l.Infof("scene: %d shapes, BVH %d nodes, depth %d", s.GetPrimitiveCount(), stats.BVH.Nodes, stats.BVH.MaxDepth)

	start := time.Now()
	tileRenderer := NewTileRenderer(s, integrator.NewPathTracer(opts.MaxDepth), buffer, opts.SamplesPerPixel)
	pool := NewWorkerPool(ctx, tileRenderer, opts.Threads, len(tiles), opts.Pin, l)
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	var firstErr error
	for i := 0; i < len(tiles); i++ {
		// The queue is only closed by Stop, so every receive here yields a result
		result, _ := pool.GetResult()
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
				cancel()
			}
			continue
		}
		stats.addTile(result.Stats)
	}
	pool.Stop()
	stats.Elapsed = time.Since(start)

	if firstErr != nil {
		l.Errorf("render failed after %s: %v", stats.Elapsed, firstErr)
		return nil, stats, firstErr
	}

	l.Noticef("render finished in %s (%.0f samples/s)", stats.Elapsed.Round(time.Millisecond), stats.SamplesPerSecond())
	l.Infof("worker statistics\n%s", stats.Table())
	return buffer, stats, nil
}
