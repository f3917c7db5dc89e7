package hover

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownShape is returned for a shape kind the loader does not know.
	ErrUnknownShape = errors.New("hover: unknown shape kind")
	// ErrInvalidShape is returned for non-positive or non-finite dimensions.
	ErrInvalidShape = errors.New("hover: invalid shape dimensions")
)

// Config describes a HoverSystem and its pointer camera. It is usually
// loaded from YAML:
//
//	picker:
//	  allow_behind: true
//	  center_on_bounds: true
//	debug: false
//	camera:
//	  eye: [0, 2, 8]
//	  target: [0, 1, 0]
//	  fov_y_degrees: 60
type Config struct {
	Picker PickerConfig `yaml:"picker"`
	Camera CameraConfig `yaml:"camera"`
	Debug  bool         `yaml:"debug"`
}

// PickerConfig mirrors Picker.
type PickerConfig struct {
	AllowBehind    bool `yaml:"allow_behind"`
	CenterOnBounds bool `yaml:"center_on_bounds"`
}

// CameraConfig mirrors the lens and placement fields of Camera. The
// viewport size comes from the window, not from config.
type CameraConfig struct {
	Eye         [3]float64 `yaml:"eye"`
	Target      [3]float64 `yaml:"target"`
	Up          [3]float64 `yaml:"up"`
	FovYDegrees float64    `yaml:"fov_y_degrees"`
	Near        float64    `yaml:"near"`
	Far         float64    `yaml:"far"`
}

// ShapeConfig describes a bounding volume.
//
//	kind: capsule   # ball | cuboid | capsule
//	radius: 0.4
//	half_height: 0.6
type ShapeConfig struct {
	Kind        string     `yaml:"kind"`
	Radius      float64    `yaml:"radius,omitempty"`
	HalfExtents [3]float64 `yaml:"half_extents,omitempty"`
	HalfHeight  float64    `yaml:"half_height,omitempty"`
}

// DefaultConfig returns the configuration matching NewHoverSystem.
func DefaultConfig() Config {
	p := DefaultPicker()
	return Config{
		Picker: PickerConfig{AllowBehind: p.AllowBehind, CenterOnBounds: p.CenterOnBounds},
		Camera: CameraConfig{
			Eye:         [3]float64{0, 0, 10},
			Up:          [3]float64{0, 1, 0},
			FovYDegrees: mgl64.RadToDeg(defaultFovY),
			Near:        defaultNear,
			Far:         defaultFar,
		},
	}
}

// LoadConfig decodes YAML on top of DefaultConfig, so omitted keys keep
// their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("hover: failed to parse config: %w", err)
	}
	if err := cfg.Camera.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadConfig is LoadConfig for a reader.
func ReadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("hover: failed to read config: %w", err)
	}
	return LoadConfig(data)
}

// NewSystem creates a HoverSystem configured by c.
func (c Config) NewSystem() *HoverSystem {
	s := NewHoverSystem()
	s.SetPicker(c.Picker.Build())
	s.SetDebugMode(c.Debug)
	return s
}

// Build returns the picker described by c.
func (c PickerConfig) Build() Picker {
	return Picker{AllowBehind: c.AllowBehind, CenterOnBounds: c.CenterOnBounds}
}

// Build returns a camera for a viewport of the given size.
func (c CameraConfig) Build(width, height int) *Camera {
	cam := NewCamera(mgl64.Vec3(c.Eye), mgl64.Vec3(c.Target), width, height)
	if c.Up != ([3]float64{}) {
		cam.Up = mgl64.Vec3(c.Up)
	}
	if c.FovYDegrees > 0 {
		cam.FovY = mgl64.DegToRad(c.FovYDegrees)
	}
	if c.Near > 0 {
		cam.Near = c.Near
	}
	if c.Far > 0 {
		cam.Far = c.Far
	}
	return cam
}

func (c CameraConfig) validate() error {
	if c.FovYDegrees < 0 || c.FovYDegrees >= 180 {
		return fmt.Errorf("hover: camera fov_y_degrees %v out of range (0, 180)", c.FovYDegrees)
	}
	if c.Near < 0 || c.Far < 0 || (c.Near > 0 && c.Far > 0 && c.Far <= c.Near) {
		return fmt.Errorf("hover: camera clip planes near=%v far=%v are invalid", c.Near, c.Far)
	}
	if c.Eye == c.Target {
		return fmt.Errorf("hover: camera eye and target coincide at %v", c.Eye)
	}
	return nil
}

// Build returns the Shape described by c.
func (c ShapeConfig) Build() (Shape, error) {
	switch c.Kind {
	case "ball", "sphere":
		if !positive(c.Radius) {
			return nil, fmt.Errorf("%w: ball radius %v", ErrInvalidShape, c.Radius)
		}
		return Ball{Radius: c.Radius}, nil
	case "cuboid", "box":
		for _, v := range c.HalfExtents {
			if !positive(v) {
				return nil, fmt.Errorf("%w: cuboid half extents %v", ErrInvalidShape, c.HalfExtents)
			}
		}
		return Cuboid{HalfExtents: mgl64.Vec3(c.HalfExtents)}, nil
	case "capsule":
		if !positive(c.Radius) || c.HalfHeight < 0 || math.IsInf(c.HalfHeight, 0) || math.IsNaN(c.HalfHeight) {
			return nil, fmt.Errorf("%w: capsule radius %v half height %v", ErrInvalidShape, c.Radius, c.HalfHeight)
		}
		return Capsule{HalfHeight: c.HalfHeight, Radius: c.Radius}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, c.Kind)
	}
}

// LoadShapes decodes a YAML mapping of names to shape descriptions.
func LoadShapes(data []byte) (map[string]Shape, error) {
	var raw map[string]ShapeConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("hover: failed to parse shapes: %w", err)
	}
	shapes := make(map[string]Shape, len(raw))
	for name, sc := range raw {
		s, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("hover: shape %q: %w", name, err)
		}
		shapes[name] = s
	}
	return shapes, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
