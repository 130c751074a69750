package scene

import "github.com/df07/go-pathtracer/pkg/core"

// BackgroundKind selects how a Background colors escaping rays
type BackgroundKind uint8

const (
	BackgroundConstant BackgroundKind = iota
	BackgroundGradient
)

// Background is the radiance seen by rays that leave the scene.
// A constant background uses Top only.
type Background struct {
	Kind   BackgroundKind
	Top    core.Vec3
	Bottom core.Vec3
}

// NewConstantBackground returns a background of a single color
func NewConstantBackground(color core.Vec3) Background {
	return Background{Kind: BackgroundConstant, Top: color, Bottom: color}
}

// NewGradientBackground blends bottom to top by the ray's vertical direction
func NewGradientBackground(top, bottom core.Vec3) Background {
	return Background{Kind: BackgroundGradient, Top: top, Bottom: bottom}
}

// Color returns the background radiance for a ray direction
func (b Background) Color(direction core.Vec3) core.Vec3 {
	if b.Kind == BackgroundConstant {
		return b.Top
	}

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
