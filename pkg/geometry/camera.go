package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter, 0 is a pinhole
	FocusDistance float64   // Distance to the plane in focus, 0 means |Center-LookAt|
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates rays for rendering. It is immutable once built.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
	config          CameraConfig
}

// Validate reports the first degenerate setting in the config
func (c CameraConfig) Validate() error {
	switch {
	case c.Center.Subtract(c.LookAt).LengthSquared() == 0:
		return fmt.Errorf("%w: look-from equals look-at %v", ErrDegenerateCamera, c.Center)
	case c.Up.LengthSquared() == 0:
		return fmt.Errorf("%w: zero up vector", ErrDegenerateCamera)
	case c.Up.Cross(c.Center.Subtract(c.LookAt)).NearZero():
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrDegenerateCamera, c.Up)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical field of view %g not in (0, 180)", ErrDegenerateCamera, c.VFov)
	case !(c.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio %g must be positive", ErrDegenerateCamera, c.AspectRatio)
	case c.Aperture < 0:
		return fmt.Errorf("%w: negative aperture %g", ErrDegenerateCamera, c.Aperture)
	case c.FocusDistance < 0:
		return fmt.Errorf("%w: negative focus distance %g", ErrDegenerateCamera, c.FocusDistance)
	case c.Time1 < c.Time0:
		return fmt.Errorf("%w: shutter closes (%g) before it opens (%g)", ErrDegenerateCamera, c.Time1, c.Time0)
	}
	return nil
}

// NewCamera creates a camera with the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
		config:          config,
	}, nil
}

// GetRay generates a ray through image-plane coordinates (s, t) where 0 <= s,t <= 1,
// s running left to right and t bottom to top
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	time := c.time0
	if c.time1 > c.time0 {
		time += (c.time1 - c.time0) * random.Float64()
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAtTime(origin, direction, time)
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
