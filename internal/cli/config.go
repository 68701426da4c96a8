package cli

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Config holds processing settings. It could be loaded from TOML file, flags set explicitly take precedence.
type Config struct {
	Highways  []string       `toml:"highways" validate:"dive,required"`
	Component string         `toml:"component"`
	Format    string         `toml:"format" validate:"omitempty,oneof=geojson wkt snapshot"`
	Out       string         `toml:"out"`
	Simplify  bool           `toml:"simplify"`
	Strict    bool           `toml:"strict"`
	Overpass  OverpassConfig `toml:"overpass"`
}

// OverpassConfig holds Overpass API settings
type OverpassConfig struct {
	Endpoint       string `toml:"endpoint" validate:"omitempty,url"`
	TimeoutSeconds int    `toml:"timeout_seconds" validate:"gt=0"`
}

// Timeout returns request timeout
func (cfg OverpassConfig) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}

func defaultConfig() Config {
	return Config{
		Format: formatGeoJSON,
		Strict: true,
		Overpass: OverpassConfig{
			TimeoutSeconds: 180,
		},
	}
}

// loadConfig returns default configuration overridden by the file (if path is not empty)
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "Can't read config '%s'", path)
	}
	return cfg, nil
}

// processFlags are flags shared by commands producing a graph
type processFlags struct {
	highways  []string
	component string
	format    string
	out       string
	simplify  bool
	strict    bool
}

func (flags *processFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&flags.highways, "highways", nil, "keep only ways with given `highway` values (comma-separated)")
	cmd.Flags().StringVar(&flags.component, "component", "", "keep only part of the graph connected to edges with given `highway` value")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatGeoJSON, "output format: geojson, wkt or snapshot")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&flags.simplify, "simplify", false, "contract chains of degree-2 vertices")
	cmd.Flags().BoolVar(&flags.strict, "strict", true, "fail on ways with less than 2 nodes instead of skipping them")
}

// apply overrides configuration with flags which have been set explicitly
func (flags *processFlags) apply(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("highways") {
		cfg.Highways = flags.highways
	}
	if cmd.Flags().Changed("component") {
		cfg.Component = flags.component
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flags.format
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = flags.out
	}
	if cmd.Flags().Changed("simplify") {
		cfg.Simplify = flags.simplify
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flags.strict
	}
}
