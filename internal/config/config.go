package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario      = "proton-proton"
	DefaultTheme         = "chamber"
	DefaultZoom          = 1.0
	DefaultZoomStep      = 1.2
	DefaultHoverThrottle = 50 // milliseconds
)

type Config struct {
	Scenario string     `yaml:"scenario"`
	Theme    string     `yaml:"theme"`
	Seed     int64      `yaml:"seed"`
	View     ViewConfig `yaml:"view"`
}

type ViewConfig struct {
	Zoom            float64 `yaml:"zoom"`
	ZoomStep        float64 `yaml:"zoom_step"`
	HoverThrottleMs int     `yaml:"hover_throttle_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: DefaultScenario,
		Theme:    DefaultTheme,
		View: ViewConfig{
			Zoom:            DefaultZoom,
			ZoomStep:        DefaultZoomStep,
			HoverThrottleMs: DefaultHoverThrottle,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
