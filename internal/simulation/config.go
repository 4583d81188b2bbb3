// Package simulation provides configuration for the raycaster.
// Values are loaded from a JSON file so each setup can tune the view without
// a rebuild; anything missing from the file keeps its default.
package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/render/lighting"
)

// Config holds all load-time constants
type Config struct {
	Grid     GridConfig     `json:"grid"`
	View     ViewConfig     `json:"view"`
	Movement MovementConfig `json:"movement"`
	Shading  ShadingConfig  `json:"shading"`
	Runtime  RuntimeConfig  `json:"runtime"`
}

// GridConfig defines the tile map
type GridConfig struct {
	TileSize int    `json:"tile_size"` // World units per tile, also screen pixels per tile
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	MapPath  string `json:"map"` // Optional JSON map; the built-in map is used when empty
}

// ViewConfig defines the camera
type ViewConfig struct {
	FOVDegrees   float64 `json:"fov_degrees"`
	RayWidth     int     `json:"ray_width"` // Screen pixels per ray sample
	MinimapScale float64 `json:"minimap_scale"`
}

// MovementConfig defines player speeds
type MovementConfig struct {
	MoveSpeed        float64 `json:"move_speed"`         // World units per tick
	RotationSpeed    float64 `json:"rotation_speed"`     // Radians per pixel of mouse movement
	KeyRotationSpeed float64 `json:"key_rotation_speed"` // Radians per tick while a turn key is held
}

// ShadingConfig defines the wall shading constants
type ShadingConfig struct {
	MaxBrightness float64 `json:"max_brightness"`
	Falloff       float64 `json:"falloff"`
	VerticalBoost float64 `json:"vertical_boost"`
	EdgeDarkening bool    `json:"edge_darkening"`
	EdgeShade     uint8   `json:"edge_shade"`
}

// RuntimeConfig defines the frame loop
type RuntimeConfig struct {
	TPS     int `json:"tps"`
	Workers int `json:"workers"` // Goroutines used for casting; 1 casts on the tick goroutine
}

// DefaultConfig returns the stock 15x11 setup
func DefaultConfig() *Config {
	shading := lighting.DefaultModel()
	return &Config{
		Grid: GridConfig{
			TileSize: 60,
			Rows:     11,
			Cols:     15,
		},
		View: ViewConfig{
			FOVDegrees:   60,
			RayWidth:     1,
			MinimapScale: 0.2,
		},
		Movement: MovementConfig{
			MoveSpeed:        3,
			RotationSpeed:    0.01,
			KeyRotationSpeed: 0.03,
		},
		Shading: ShadingConfig{
			MaxBrightness: shading.MaxBrightness,
			Falloff:       shading.Falloff,
			VerticalBoost: shading.VerticalBoost,
			EdgeDarkening: shading.EdgeDarkening,
			EdgeShade:     shading.EdgeShade,
		},
		Runtime: RuntimeConfig{
			TPS:     60,
			Workers: 1,
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
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

// Validate checks that the config describes a drawable setup
func (c *Config) Validate() error {
	if c.Grid.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", c.Grid.TileSize)
	}
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("invalid grid dimensions: %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	if c.View.FOVDegrees <= 0 || c.View.FOVDegrees >= 180 || math.IsNaN(c.View.FOVDegrees) {
		return fmt.Errorf("field of view must be in (0, 180) degrees, got %v", c.View.FOVDegrees)
	}
	if c.View.RayWidth <= 0 {
		return fmt.Errorf("invalid ray width: %d", c.View.RayWidth)
	}
	if c.WindowWidth()%c.View.RayWidth != 0 {
		return fmt.Errorf("ray width %d does not divide window width %d", c.View.RayWidth, c.WindowWidth())
	}
	if c.Movement.MoveSpeed < 0 {
		return fmt.Errorf("invalid move speed: %v", c.Movement.MoveSpeed)
	}
	if c.Runtime.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Runtime.TPS)
	}
	return nil
}

// WindowWidth returns the window width in pixels (cols × tile size)
func (c *Config) WindowWidth() int {
	return c.Grid.Cols * c.Grid.TileSize
}

// WindowHeight returns the window height in pixels (rows × tile size)
func (c *Config) WindowHeight() int {
	return c.Grid.Rows * c.Grid.TileSize
}

// RayCount returns the number of ray samples per frame
func (c *Config) RayCount() int {
	return c.WindowWidth() / c.View.RayWidth
}

// FOV returns the field of view in radians
func (c *Config) FOV() float64 {
	return geom.Radians(c.View.FOVDegrees)
}

// ShadingModel returns the lighting model described by the config
func (c *Config) ShadingModel() lighting.Model {
	return lighting.Model{
		MaxBrightness: c.Shading.MaxBrightness,
		Falloff:       c.Shading.Falloff,
		VerticalBoost: c.Shading.VerticalBoost,
		EdgeDarkening: c.Shading.EdgeDarkening,
		EdgeShade:     c.Shading.EdgeShade,
	}
}
