package simulation

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	p, err := c.Colors.Parse()
	if err != nil {
		t.Fatalf("Failed to parse default colors: %v", err)
	}
	if p.Wall != (color.RGBA{220, 200, 160, 255}) {
		t.Errorf("Expected beige walls, got %v", p.Wall)
	}
	if p.Floor != (color.RGBA{70, 40, 20, 255}) {
		t.Errorf("Expected brown floor, got %v", p.Floor)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Screen.Columns != 80 {
		t.Errorf("Expected default 80 columns, got %d", c.Screen.Columns)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"screen": {"columns": 160}, "raycast": {"max_steps": 0}, "colors": {"door": "#00ff00"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if c.Screen.Columns != 160 {
		t.Errorf("Expected 160 columns, got %d", c.Screen.Columns)
	}
	if c.Screen.Width != 320 {
		t.Errorf("Expected width to keep its default, got %d", c.Screen.Width)
	}
	if c.Raycast.MaxSteps != 0 {
		t.Errorf("Expected derived max steps, got %d", c.Raycast.MaxSteps)
	}
	p, _ := c.Colors.Parse()
	if p.Door != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("Expected green door, got %v", p.Door)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Screen.Width = 0 }},
		{"columns do not divide width", func(c *Config) { c.Screen.Columns = 100 }},
		{"too many columns", func(c *Config) { c.Screen.Columns = 640 }},
		{"flat fov", func(c *Config) { c.Screen.FOV = 180 }},
		{"huge radius", func(c *Config) { c.Movement.Radius = 0.5 }},
		{"one shade", func(c *Config) { c.Shading.Levels = 1 }},
		{"negative steps", func(c *Config) { c.Raycast.MaxSteps = -1 }},
		{"bad color", func(c *Config) { c.Colors.Wall = "beige" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfigRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error")
	}
}
