package main

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	defaults := renderer.DefaultOptions()

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes with a tiled CPU path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene or a JSON scene description",
			Description: `
Render a scene to an image file. The scene is either one of the built-in scenes
(see the scenes command) or a JSON description passed with --scene-file.

Without --out the image is written to output/<scene>/render_<timestamp>.<format>.
The format follows the file extension unless --format is given.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene id",
				},
				cli.StringFlag{
					Name:  "scene-file",
					Usage: "JSON scene description, overrides --scene",
				},
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "image width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: defaults.Height,
					Usage: "image height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: defaults.SamplesPerPixel,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: defaults.MaxDepth,
					Usage: "maximum number of bounces per path",
				},
				cli.IntFlag{
					Name:  "threads, t",
					Value: defaults.Threads,
					Usage: "number of render workers",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: defaults.TileSize,
					Usage: "edge length of the square tiles handed to workers",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "base random seed",
				},
				cli.BoolFlag{
					Name:  "pin",
					Usage: "pin each worker to a CPU core (linux only)",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Value: defaults.Gamma,
					Usage: "output gamma",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "format, f",
					Usage: "image format: png, jpeg, ppm, ppm.gz or exr",
				},
			},
			Action: RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
		{
			Name:   "info",
			Usage:  "show host CPU and memory information",
			Action: HostInfo,
		},
	}

	return app
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
