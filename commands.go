package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	// An explicit level wins over the verbosity switches
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	return nil
}

// Render a still frame.
func RenderScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts := renderer.Options{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Threads:         ctx.Int("threads"),
		TileSize:        ctx.Int("tile-size"),
		Seed:            ctx.Int64("seed"),
		Pin:             ctx.Bool("pin"),
		Gamma:           ctx.Float64("gamma"),
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	var format output.Format
	if name := ctx.String("format"); name != "" {
		var err error
		if format, err = output.ParseFormat(name); err != nil {
			return err
		}
	}

	sc, sceneName, err := loadScene(ctx.String("scene"), ctx.String("scene-file"), opts.AspectRatio())
	if err != nil {
		return err
	}

	outPath := ctx.String("out")
	if outPath == "" {
		if format == "" {
			format = output.FormatPNG
		}
		outPath = defaultOutputPath(sceneName, format, time.Now())
	} else if format == "" {
		// Fail on a bad extension before spending time on the render
		if format, err = output.FormatFromPath(outPath); err != nil {
			return err
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if info, err := renderer.GetHostInfo(); err == nil {
		logger.Infof("host\n%s", info.Table())
	}
	logger.Noticef("rendering scene %q", sceneName)
	buffer, _, err := renderer.RenderWithOptions(runCtx, sc, opts, logger)
	if err != nil {
		return err
	}

	if err := output.WriteFile(outPath, buffer, format); err != nil {
		return err
	}
	logger.Noticef("render saved as %s", outPath)

	return nil
}

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Description"})
	for _, info := range scene.ListBuiltins() {
		table.Append([]string{info.ID, info.Name, info.Description})
	}
	table.Render()

	_, err := fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}

// Display host CPU and memory details.
func HostInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	info, err := renderer.GetHostInfo()
	if err != nil {
		// Partial information is still worth showing
		logger.Warningf("incomplete host information: %v", err)
	}

	_, err = fmt.Fprint(ctx.App.Writer, info.Table())
	return err
}

// loadScene builds the scene and returns the name used for its output directory.
// A scene file takes precedence over the built-in id.
func loadScene(id, file string, aspect float64) (*scene.Scene, string, error) {
	if file != "" {
		sc, err := scene.LoadJSONFile(file, aspect)
		if err != nil {
			return nil, "", err
		}
		return sc, strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)), nil
	}

	sc, err := scene.Builtin(id, aspect)
	if err != nil {
		return nil, "", err
	}
	return sc, id, nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.<format>
func defaultOutputPath(sceneName string, format output.Format, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}
