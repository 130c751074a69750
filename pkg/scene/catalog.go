package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	Name        string
	Description string
}

type builtinScene struct {
	info  SceneInfo
	build func(aspect float64) (*Scene, error)
}

var builtins = map[string]builtinScene{
	"default": {
		SceneInfo{"default", "Default Scene", "Metal, glass and diffuse spheres on a checkered plane"},
		NewDefaultScene,
	},
	"random": {
		SceneInfo{"random", "Random Spheres", "Field of small random spheres around three large ones"},
		NewRandomScene,
	},
	"moving": {
		SceneInfo{"moving", "Moving Spheres", "Random spheres with motion blur on the diffuse ones"},
		NewMovingScene,
	},
	"cornell": {
		SceneInfo{"cornell", "Cornell Box", "Cornell box with two rotated blocks and a ceiling light"},
		NewCornellScene,
	},
	"noise": {
		SceneInfo{"noise", "Perlin Noise", "Marble-like Perlin turbulence on two spheres"},
		NewNoiseScene,
	},
	"single": {
		SceneInfo{"single", "Single Sphere", "White diffuse sphere under a gradient sky"},
		NewSingleSphereScene,
	},
}

// ListBuiltins returns the built-in scenes sorted by ID
func ListBuiltins() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Builtin builds the named scene for images of the given width/height ratio
func Builtin(id string, aspect float64) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return b.build(aspect)
}
