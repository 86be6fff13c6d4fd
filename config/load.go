package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of an override file. Each section decodes
// straight into the matching global, so keys absent from the file keep
// their defaults.
type File struct {
	Window    *Config          `yaml:"window"`
	Player    *PlayerConfig    `yaml:"player"`
	Clouds    *CloudConfig     `yaml:"clouds"`
	Menu      *MenuConfig      `yaml:"menu"`
	Inventory *InventoryConfig `yaml:"inventory"`
}

// Load applies the YAML overrides in path to the global configuration.
// An empty path leaves the defaults untouched.
func Load(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	target := File{
		Window:    C,
		Player:    &Player,
		Clouds:    &Clouds,
		Menu:      &Menu,
		Inventory: &Inventory,
	}
	if err := Apply(data, &target); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML data into the sections of target and rejects values
// the game loop cannot run with.
func Apply(data []byte, target *File) error {
	if err := yaml.Unmarshal(data, target); err != nil {
		return err
	}
	return target.validate()
}

func (f *File) validate() error {
	if w := f.Window; w != nil {
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
		}
		if w.TPS <= 0 {
			return fmt.Errorf("window.tps must be positive, got %d", w.TPS)
		}
	}
	if p := f.Player; p != nil {
		if p.FrameCount <= 0 {
			return fmt.Errorf("player.frameCount must be positive, got %d", p.FrameCount)
		}
		if p.SpriteSize <= 0 || p.RenderScale <= 0 {
			return fmt.Errorf("player sprite size and scale must be positive, got %d x%g", p.SpriteSize, p.RenderScale)
		}
	}
	if c := f.Clouds; c != nil {
		if c.FrameCount <= 0 {
			return fmt.Errorf("clouds.frameCount must be positive, got %d", c.FrameCount)
		}
		if c.TileSize <= 0 || c.RenderScale <= 0 {
			return fmt.Errorf("cloud tile size and scale must be positive, got %d x%g", c.TileSize, c.RenderScale)
		}
		if c.Count < 0 {
			return fmt.Errorf("clouds.count must not be negative, got %d", c.Count)
		}
		if c.DepthDivisor <= 0 {
			return fmt.Errorf("clouds.depthDivisor must be positive, got %g", c.DepthDivisor)
		}
	}
	return nil
}
