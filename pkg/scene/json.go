package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var ErrInvalidDescription = errors.New("scene: invalid scene description")

// Vec3Cfg is a vector written as a three element JSON array
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type CameraCfg struct {
	LookFrom      Vec3Cfg  `json:"lookFrom"`
	LookAt        Vec3Cfg  `json:"lookAt"`
	Up            *Vec3Cfg `json:"up,omitempty"` // defaults to +y
	VFov          float64  `json:"vfov"`
	Aperture      float64  `json:"aperture,omitempty"`
	FocusDistance float64  `json:"focusDistance,omitempty"`
	Time0         float64  `json:"time0,omitempty"`
	Time1         float64  `json:"time1,omitempty"`
}

type BackgroundCfg struct {
	Type   string  `json:"type"` // "constant" or "gradient"
	Color  Vec3Cfg `json:"color,omitempty"`
	Top    Vec3Cfg `json:"top,omitempty"`
	Bottom Vec3Cfg `json:"bottom,omitempty"`
}

type MaterialCfg struct {
	Type     string  `json:"type"` // lambertian, metal, dielectric or emissive
	Albedo   Vec3Cfg `json:"albedo,omitempty"`
	Texture  string  `json:"texture,omitempty"` // "", "checker", "noise" or "image"
	Odd      Vec3Cfg `json:"odd,omitempty"`     // second checker color, Albedo is the first
	Scale    float64 `json:"scale,omitempty"`
	Seed     int64   `json:"seed,omitempty"`
	Image    string  `json:"image,omitempty"`
	Fuzz     float64 `json:"fuzz,omitempty"`
	IOR      float64 `json:"ior,omitempty"`
	Emission Vec3Cfg `json:"emission,omitempty"`
}

type ObjectCfg struct {
	Type     string `json:"type"` // sphere, movingSphere, plane, rect, box
	Material string `json:"material"`

	Center  Vec3Cfg `json:"center,omitempty"`
	Center1 Vec3Cfg `json:"center1,omitempty"`
	Time0   float64 `json:"time0,omitempty"`
	Time1   float64 `json:"time1,omitempty"`
	Radius  float64 `json:"radius,omitempty"`

	Point  Vec3Cfg `json:"point,omitempty"`
	Normal Vec3Cfg `json:"normal,omitempty"`

	Orientation string  `json:"orientation,omitempty"` // xy, xz or yz
	A0          float64 `json:"a0,omitempty"`
	A1          float64 `json:"a1,omitempty"`
	B0          float64 `json:"b0,omitempty"`
	B1          float64 `json:"b1,omitempty"`
	K           float64 `json:"k,omitempty"`

	Min Vec3Cfg `json:"min,omitempty"`
	Max Vec3Cfg `json:"max,omitempty"`

	// Applied in this order after the shape is built
	RotateY   float64  `json:"rotateY,omitempty"`
	Translate *Vec3Cfg `json:"translate,omitempty"`
}

// Description is the JSON form of a scene
type Description struct {
	Camera     CameraCfg              `json:"camera"`
	Background BackgroundCfg          `json:"background"`
	Materials  map[string]MaterialCfg `json:"materials"`
	Objects    []ObjectCfg            `json:"objects"`
}

// LoadJSON reads a scene description. Aspect is the width/height ratio of the image it will be rendered to.
func LoadJSON(r io.Reader, aspect float64) (*Scene, error) {
	var desc Description
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return desc.Build(aspect)
}

// LoadJSONFile opens path and calls LoadJSON
func LoadJSONFile(path string, aspect float64) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadJSON(f, aspect)
}

// Build turns the description into a scene
func (d *Description) Build(aspect float64) (*Scene, error) {
	up := core.NewVec3(0, 1, 0)
	if d.Camera.Up != nil {
		up = d.Camera.Up.vec()
	}
	builder := NewBuilder(geometry.CameraConfig{
		Center:        d.Camera.LookFrom.vec(),
		LookAt:        d.Camera.LookAt.vec(),
		Up:            up,
		AspectRatio:   aspect,
		VFov:          d.Camera.VFov,
		Aperture:      d.Camera.Aperture,
		FocusDistance: d.Camera.FocusDistance,
		Time0:         d.Camera.Time0,
		Time1:         d.Camera.Time1,
	})

	switch d.Background.Type {
	case "", "constant":
		builder.Background(NewConstantBackground(d.Background.Color.vec()))
	case "gradient":
		builder.Background(NewGradientBackground(d.Background.Top.vec(), d.Background.Bottom.vec()))
	default:
		return nil, fmt.Errorf("%w: unknown background type %q", ErrInvalidDescription, d.Background.Type)
	}

	materials := make(map[string]*material.Material, len(d.Materials))
	for name, cfg := range d.Materials {
		mat, err := cfg.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	for i, obj := range d.Objects {
		mat, ok := materials[obj.Material]
		if !ok {
			return nil, fmt.Errorf("%w: object %d uses undefined material %q", ErrInvalidDescription, i, obj.Material)
		}
		shape, err := obj.build(mat)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		builder.Add(shape)
	}

	return builder.Build()
}

func (m MaterialCfg) build() (*material.Material, error) {
	switch m.Type {
	case "lambertian":
		texture, err := m.texture()
		if err != nil {
			return nil, err
		}
		return material.NewTexturedLambertian(texture), nil
	case "metal":
		return material.NewMetal(m.Albedo.vec(), m.Fuzz), nil
	case "dielectric":
		if m.IOR <= 0 {
			return nil, fmt.Errorf("%w: dielectric needs a positive ior, got %g", ErrInvalidDescription, m.IOR)
		}
		return material.NewDielectric(m.IOR), nil
	case "emissive":
		return material.NewEmissive(m.Emission.vec()), nil
	default:
		return nil, fmt.Errorf("%w: unknown material type %q", ErrInvalidDescription, m.Type)
	}
}

func (m MaterialCfg) texture() (material.ColorSource, error) {
	switch m.Texture {
	case "":
		return material.NewSolidColor(m.Albedo.vec()), nil
	case "checker":
		checker := material.NewChecker(m.Albedo.vec(), m.Odd.vec())
		if m.Scale > 0 {
			checker.Scale = m.Scale
		}
		return checker, nil
	case "noise":
		scale := m.Scale
		if scale == 0 {
			scale = 1
		}
		return material.NewNoise(scale, m.Seed), nil
	case "image":
		return material.LoadImageTexture(m.Image)
	default:
		return nil, fmt.Errorf("%w: unknown texture %q", ErrInvalidDescription, m.Texture)
	}
}

func (o ObjectCfg) build(mat *material.Material) (geometry.Shape, error) {
	var shape geometry.Shape
	switch o.Type {
	case "sphere":
		if o.Radius == 0 {
			return nil, fmt.Errorf("%w: sphere radius must be non-zero", ErrInvalidDescription)
		}
		shape = geometry.NewSphere(o.Center.vec(), o.Radius, mat)
	case "movingSphere":
		if o.Radius == 0 || o.Time1 <= o.Time0 {
			return nil, fmt.Errorf("%w: moving sphere needs a radius and time1 > time0", ErrInvalidDescription)
		}
		shape = geometry.NewMovingSphere(o.Center.vec(), o.Center1.vec(), o.Time0, o.Time1, o.Radius, mat)
	case "plane":
		if o.Normal.vec().NearZero() {
			return nil, fmt.Errorf("%w: plane normal must be non-zero", ErrInvalidDescription)
		}
		shape = geometry.NewPlane(o.Point.vec(), o.Normal.vec(), mat)
	case "rect":
		orientation, err := parseOrientation(o.Orientation)
		if err != nil {
			return nil, err
		}
		if o.A0 == o.A1 || o.B0 == o.B1 {
			return nil, fmt.Errorf("%w: rect needs a non-zero extent on both axes", ErrInvalidDescription)
		}
		shape = geometry.NewRect(orientation, o.A0, o.A1, o.B0, o.B1, o.K, mat)
	case "box":
		if o.Min[0] == o.Max[0] || o.Min[1] == o.Max[1] || o.Min[2] == o.Max[2] {
			return nil, fmt.Errorf("%w: box needs a non-zero extent on every axis", ErrInvalidDescription)
		}
		shape = geometry.NewBox(o.Min.vec(), o.Max.vec(), mat)
	default:
		return nil, fmt.Errorf("%w: unknown object type %q", ErrInvalidDescription, o.Type)
	}

	if o.RotateY != 0 {
		shape = geometry.NewRotateY(shape, o.RotateY)
	}
	if o.Translate != nil {
		shape = geometry.NewTranslate(shape, o.Translate.vec())
	}
	return shape, nil
}

func parseOrientation(s string) (geometry.RectOrientation, error) {
	switch s {
	case "xy":
		return geometry.XY, nil
	case "xz":
		return geometry.XZ, nil
	case "yz":
		return geometry.YZ, nil
	}
	return 0, fmt.Errorf("%w: unknown rect orientation %q", ErrInvalidDescription, s)
}
