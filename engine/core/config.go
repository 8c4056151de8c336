package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"` // RGBA
	FontPath   string     `yaml:"font"`        // empty selects the bundled font
	FontSize   int        `yaml:"font_size"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "ptgui",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{1, 1, 1, 1},
		FontSize:   20,
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig.
// An empty path or a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("config %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}

	log.Printf("config loaded from %s", path)
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size %d must be positive", c.FontSize)
	}
	return nil
}
