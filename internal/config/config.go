package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultVoltage    = 100
	DefaultMinVoltage = 50
	DefaultMaxVoltage = 300
	DefaultGelLength  = 400.0
	DefaultWellOffset = 15.0
	DefaultMargin     = 10.0
	DefaultFrameRate  = 60
)

type Config struct {
	Voltage    int          `yaml:"voltage"`
	MinVoltage int          `yaml:"min_voltage"`
	MaxVoltage int          `yaml:"max_voltage"`
	FrameRate  int          `yaml:"frame_rate"`
	Gel        GelConfig    `yaml:"gel"`
	Lanes      []LaneConfig `yaml:"lanes"`
}

type GelConfig struct {
	Length     float64 `yaml:"length"`
	WellOffset float64 `yaml:"well_offset"`
	Margin     float64 `yaml:"margin"`
}

type LaneConfig struct {
	Lane  int    `yaml:"lane"`
	Label string `yaml:"label"`
	Sizes []int  `yaml:"sizes"`
}

func DefaultConfig() *Config {
	return &Config{
		Voltage:    DefaultVoltage,
		MinVoltage: DefaultMinVoltage,
		MaxVoltage: DefaultMaxVoltage,
		FrameRate:  DefaultFrameRate,
		Gel: GelConfig{
			Length:     DefaultGelLength,
			WellOffset: DefaultWellOffset,
			Margin:     DefaultMargin,
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

// TravelLimit is the distance at which a band is considered to have run
// off the end of the gel.
func (c *Config) TravelLimit() float64 {
	return c.Gel.Length - c.Gel.Margin
}
