// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// DesignConfig holds the default guide design parameters. GC bounds
// are percentages, as shown to users, and are converted to fractions
// at the pipeline boundary
type DesignConfig struct {
	// minimum GC content of a candidate guide (percent)
	GCMin int `mapstructure:"gc-min"`

	// maximum GC content of a candidate guide (percent)
	GCMax int `mapstructure:"gc-max"`

	// minimum efficiency score of a reported guide
	EfficiencyThreshold float64 `mapstructure:"efficiency-threshold"`

	// maximum off-target score of a reported guide
	MaxOffTarget float64 `mapstructure:"max-off-target"`
}

// LimitsConfig caps input sizes. The self-complementarity and
// off-target scans are quadratic-ish, so unbounded input would stall
// a request path
type LimitsConfig struct {
	// the longest sequence accepted for a single design run
	MaxSequenceLength int `mapstructure:"max-sequence-length"`

	// the most rows accepted in one batch file
	MaxBatchRows int `mapstructure:"max-batch-rows"`
}

// ServerConfig is for the HTTP API
type ServerConfig struct {
	// HTTP service port
	Port int `mapstructure:"port"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// Design defaults
	Design DesignConfig
	// Input size limits
	Limits LimitsConfig
	// HTTP server settings
	Server ServerConfig
}

// SetDefaults registers the default value of every setting with Viper.
// Called once before any config is read
func SetDefaults() {
	viper.SetDefault("design.gc-min", 40)
	viper.SetDefault("design.gc-max", 60)
	viper.SetDefault("design.efficiency-threshold", 0.5)
	viper.SetDefault("design.max-off-target", 50.0)
	viper.SetDefault("limits.max-sequence-length", 10000)
	viper.SetDefault("limits.max-batch-rows", 100)
	viper.SetDefault("server.port", 8080)
}

// NewConfig returns a new Config struct populated by Viper settings
// (either from the local settings.yaml) and/or command line arguments
func NewConfig() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// GCBounds returns the configured GC bounds as fractions
func (c Config) GCBounds() (min, max float64) {
	return float64(c.Design.GCMin) / 100, float64(c.Design.GCMax) / 100
}
