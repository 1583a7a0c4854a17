// Package simulation provides configuration for the renderer and the camera.
// Values are loaded from a JSON file so a level pack can tune its own feel.
package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"chosenoffset.com/noom/internal/render/lighting"
)

// Config holds all tunables.
type Config struct {
	// Screen and projection
	Screen ScreenConfig `json:"screen"`

	// Camera motion
	Movement MovementConfig `json:"movement"`

	// Distance shading
	Shading ShadingConfig `json:"shading"`

	// Ray marching
	Raycast RaycastConfig `json:"raycast"`

	// Flat colors, as "RRGGBB"
	Colors ColorConfig `json:"colors"`
}

// ScreenConfig defines the output surface.
type ScreenConfig struct {
	Width   int     `json:"width"`   // physical pixels
	Height  int     `json:"height"`  // physical pixels
	Columns int     `json:"columns"` // logical ray columns; must divide Width
	FOV     float64 `json:"fov"`     // horizontal field of view in degrees
	Scale   int     `json:"scale"`   // window scale for desktop backends
}

// MovementConfig defines how fast the camera moves.
type MovementConfig struct {
	MoveSpeed float64 `json:"move_speed"` // map units per second
	TurnSpeed float64 `json:"turn_speed"` // degrees per second
	Radius    float64 `json:"radius"`     // collision half-size in map units
}

// ShadingConfig defines the shade ramps.
type ShadingConfig struct {
	Levels      int     `json:"levels"`       // shades per ramp
	MinFactor   float64 `json:"min_factor"`   // brightness of the dimmest shade
	MaxDistance float64 `json:"max_distance"` // distance at which shading saturates
}

// RaycastConfig bounds ray marching.
type RaycastConfig struct {
	MaxSteps int `json:"max_steps"` // 0 derives the bound from the map size
}

// ColorConfig holds base colors.
type ColorConfig struct {
	Ceiling string `json:"ceiling"`
	Floor   string `json:"floor"`
	Wall    string `json:"wall"`
	Door    string `json:"door"`
}

// Palette is the parsed form of ColorConfig.
type Palette struct {
	Ceiling, Floor, Wall, Door color.RGBA
}

// DefaultConfig returns the settings of the original handheld build.
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:   320,
			Height:  240,
			Columns: 80,
			FOV:     60,
			Scale:   2,
		},
		Movement: MovementConfig{
			MoveSpeed: 2.2,
			TurnSpeed: 120,
			Radius:    0.18,
		},
		Shading: ShadingConfig{
			Levels:      16,
			MinFactor:   0.25,
			MaxDistance: 6,
		},
		Raycast: RaycastConfig{
			MaxSteps: 64,
		},
		Colors: ColorConfig{
			Ceiling: "ebebeb",
			Floor:   "462814",
			Wall:    "dcc8a0",
			Door:    "c82828",
		},
	}
}

// LoadConfig loads config from a JSON file. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that the config can drive the renderer.
func (c *Config) Validate() error {
	s := c.Screen
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", s.Width, s.Height)
	}
	if s.Columns <= 0 || s.Columns > s.Width {
		return fmt.Errorf("invalid column count %d for width %d", s.Columns, s.Width)
	}
	if s.Width%s.Columns != 0 {
		return fmt.Errorf("column count %d does not divide screen width %d", s.Columns, s.Width)
	}
	if s.FOV <= 0 || s.FOV >= 180 {
		return fmt.Errorf("invalid field of view: %.1f", s.FOV)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("invalid window scale: %d", s.Scale)
	}
	if c.Movement.Radius <= 0 || c.Movement.Radius >= 0.5 {
		return fmt.Errorf("collision radius %.2f must be in (0, 0.5)", c.Movement.Radius)
	}
	if c.Shading.Levels < 2 {
		return fmt.Errorf("need at least 2 shade levels, got %d", c.Shading.Levels)
	}
	if c.Shading.MinFactor < 0 || c.Shading.MinFactor > 1 {
		return fmt.Errorf("min factor %.2f must be in [0, 1]", c.Shading.MinFactor)
	}
	if c.Shading.MaxDistance <= 0 {
		return fmt.Errorf("invalid shading distance: %.2f", c.Shading.MaxDistance)
	}
	if c.Raycast.MaxSteps < 0 {
		return fmt.Errorf("invalid max steps: %d", c.Raycast.MaxSteps)
	}
	if _, err := c.Colors.Parse(); err != nil {
		return err
	}
	return nil
}

// Parse converts the hex strings to colors.
func (c ColorConfig) Parse() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"ceiling", c.Ceiling, &p.Ceiling},
		{"floor", c.Floor, &p.Floor},
		{"wall", c.Wall, &p.Wall},
		{"door", c.Door, &p.Door},
	}
	for _, f := range fields {
		clr, err := lighting.ParseHex(f.src)
		if err != nil {
			return Palette{}, fmt.Errorf("%s color: %w", f.name, err)
		}
		*f.dst = clr
	}
	return p, nil
}
