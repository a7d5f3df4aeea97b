// Package config loads the scenario configuration for the hexpath
// demo binary.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds a full demo scenario
type Config struct {
	Schema  SchemaConfig  `yaml:"schema"`
	Grid    GridConfig    `yaml:"grid"`
	Terrain TerrainConfig `yaml:"terrain"`
	Search  SearchConfig  `yaml:"search"`
}

// SchemaConfig holds the hexagon geometry settings
type SchemaConfig struct {
	SideLength  float64 `yaml:"side_length"`
	Orientation string  `yaml:"orientation"` // "flat" or "pointy"
}

// GridConfig holds the grid layout settings
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TerrainConfig holds the terrain generation settings
type TerrainConfig struct {
	Seed      int64   `yaml:"seed"`
	Frequency float64 `yaml:"frequency"` // noise frequency per pixel
}

// SearchConfig holds the start/goal coordinates and search bounds
type SearchConfig struct {
	Start       CoordConfig `yaml:"start"`
	Goal        CoordConfig `yaml:"goal"`
	MaxCost     int         `yaml:"max_cost"`     // 0 = unbounded
	MaxDistance int         `yaml:"max_distance"` // 0 = unbounded
}

// CoordConfig is a coordinate given as offset column/row
type CoordConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Load reads a scenario from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	if cfg.Schema.SideLength == 0 {
		cfg.Schema.SideLength = 50
	}
	if cfg.Schema.Orientation == "" {
		cfg.Schema.Orientation = "flat"
	}
	if cfg.Grid.Cols == 0 {
		cfg.Grid.Cols = 16
	}
	if cfg.Grid.Rows == 0 {
		cfg.Grid.Rows = 12
	}
	if cfg.Terrain.Frequency == 0 {
		cfg.Terrain.Frequency = 0.005
	}

	if cfg.Schema.Orientation != "flat" && cfg.Schema.Orientation != "pointy" {
		return nil, fmt.Errorf("unknown orientation %q", cfg.Schema.Orientation)
	}
	return &cfg, nil
}
