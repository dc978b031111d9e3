// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of defaults and settings
// from an optional influenza.yaml settings file.
type Config struct {
	// print progress while validating
	Verbose bool `mapstructure:"verbose"`

	// the least whole-sequence nucleotide identity an assembly may have
	// to its reference before it is flagged
	MinIdentity float64 `mapstructure:"min-identity"`

	// the least assembly length, in nucleotides, before the assembly is
	// flagged as too short. Zero disables the check
	MinLength int `mapstructure:"min-length"`
}

// New returns a Config populated from Viper settings.
func New() *Config {
	viper.SetDefault("verbose", false)
	viper.SetDefault("min-identity", 0.8)
	viper.SetDefault("min-length", 500)

	viper.SetConfigName("influenza")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read settings file: %v", err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return c
}
