package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swdee/go-imx335"
)

// Config holds the settings of the example program
type Config struct {
	// Backend selects the bus adapter, "linux" or "periph"
	Backend string `yaml:"backend"`
	// Bus is the i2c-dev path for the linux backend or the bus name for
	// periph, for example "1" or "I2C1"
	Bus     string `yaml:"bus"`
	Address uint16 `yaml:"address"`
	// Exposure and Gain are applied after Init when set
	Exposure *uint32 `yaml:"exposure"`
	Gain     *uint32 `yaml:"gain"`
}

// defaultConfig returns the configuration used when no file is given
func defaultConfig() Config {
	return Config{
		Backend: "linux",
		Bus:     "/dev/i2c-0",
		Address: imx335.Address,
	}
}

// loadConfig reads a YAML configuration file over the defaults
func loadConfig(path string) (Config, error) {

	cfg := defaultConfig()

	data, err := os.ReadFile(path)

	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

// validate checks the configuration before any bus is opened
func (c Config) validate() error {

	switch c.Backend {
	case "linux", "periph":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	if c.Bus == "" {
		return fmt.Errorf("bus is not set")
	}

	if c.Address == 0 || c.Address > 0x7F {
		return fmt.Errorf("invalid I2C address 0x%X", c.Address)
	}

	if c.Exposure != nil && *c.Exposure > imx335.ExposureMax() {
		return fmt.Errorf("exposure %d exceeds %d lines", *c.Exposure, imx335.ExposureMax())
	}

	if c.Gain != nil && *c.Gain > imx335.AgainMax {
		return fmt.Errorf("gain %d exceeds %d", *c.Gain, imx335.AgainMax)
	}

	return nil
}
