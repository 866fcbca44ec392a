/*
File    : solc/internal/solconfig/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package solconfig loads the CLI driver's optional YAML configuration
file (".solc.yml" by convention), mirroring the teacher module's habit
of keeping driver configuration as a small, explicitly-defaulted struct
rather than scattering flags and environment lookups.
*/
package solconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the handful of knobs the driver exposes beyond its
// command-line flags.
type Config struct {
	// OutputPath is where compiled output is written when non-empty;
	// an empty value means "stdout".
	OutputPath string `yaml:"output_path"`

	// EmitPrelude controls whether the __sol_assert_type polyfill is
	// prepended to compiled output.
	EmitPrelude bool `yaml:"emit_prelude"`

	// BannerWidth is a separator-line width for the REPL banner. It is
	// loaded but not read by the driver: the REPL banner always uses the
	// fixed LINE separator from cmd/sol.
	BannerWidth int `yaml:"banner_width"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		OutputPath:  "",
		EmitPrelude: true,
		BannerWidth: 66,
	}
}

// Load reads and parses a YAML configuration file at path. A missing
// file is not an error: Default() is returned instead, matching the
// "configuration is optional" convention the driver otherwise uses for
// flags.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
