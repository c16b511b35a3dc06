// Package formats provides pluggable level file format parsers.
// Parsers produce raw levels; kinds and colors are interpreted by the
// levels package.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Level is a parsed level ready for conversion.
type Level struct {
	Number       int
	Name         string
	Description  string
	Platforms    []Platform
	Collectibles []Collectible
}

// Platform is a raw platform rectangle.
type Platform struct {
	X, Y, W, H float64
	Color      string
	Kind       string
}

// Collectible is a raw pickup positioned by its center.
type Collectible struct {
	X, Y   float64
	Kind   string
	Points int
	Icon   string
	Name   string
}

// YAMLPack represents a YAML file holding one or more levels.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML.
type YAMLLevel struct {
	Number       int               `yaml:"number"`
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	Platforms    []YAMLPlatform    `yaml:"platforms"`
	Collectibles []YAMLCollectible `yaml:"collectibles"`
}

// YAMLPlatform is a platform entry.
type YAMLPlatform struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Color string  `yaml:"color,omitempty"`
	Kind  string  `yaml:"kind,omitempty"`
}

// YAMLCollectible is a collectible entry.
type YAMLCollectible struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Kind   string  `yaml:"kind"`
	Points int     `yaml:"points,omitempty"`
	Icon   string  `yaml:"icon,omitempty"`
	Name   string  `yaml:"name"`
}

// ParseYAML parses a YAML pack file. It returns the pack name and its levels
// in file order.
func ParseYAML(data []byte) (string, []Level, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return "", nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	levels := make([]Level, 0, len(yp.Levels))
	for _, yl := range yp.Levels {
		lvl := Level{
			Number:      yl.Number,
			Name:        yl.Name,
			Description: yl.Description,
		}
		for _, p := range yl.Platforms {
			lvl.Platforms = append(lvl.Platforms, Platform{
				X: p.X, Y: p.Y, W: p.W, H: p.H,
				Color: p.Color,
				Kind:  p.Kind,
			})
		}
		for _, c := range yl.Collectibles {
			lvl.Collectibles = append(lvl.Collectibles, Collectible{
				X: c.X, Y: c.Y,
				Kind:   c.Kind,
				Points: c.Points,
				Icon:   c.Icon,
				Name:   c.Name,
			})
		}
		levels = append(levels, lvl)
	}

	return yp.Name, levels, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".tmx"}
}
