// Package config loads the settings of the hasse command from defaults, an
// optional YAML file and POLYLATTICE_* environment variables, in increasing
// order of precedence, and validates them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "POLYLATTICE"

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the settings of a run.
type Config struct {
	LogLevel       string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error crit"`
	Dual           bool   `mapstructure:"dual" yaml:"dual"`
	ArtificialNode bool   `mapstructure:"artificial_node" yaml:"artificial_node"`
	MaxNodes       int    `mapstructure:"max_nodes" yaml:"max_nodes" validate:"gte=0"`
	RankBound      int    `mapstructure:"rank_bound" yaml:"rank_bound" validate:"gte=-1"`
	Workers        int    `mapstructure:"workers" yaml:"workers" validate:"gte=1,lte=256"`
	Store          Store  `mapstructure:"store" yaml:"store"`
	Render         Render `mapstructure:"render" yaml:"render"`
}

// Store configures the lattice store.
type Store struct {
	Path       string `mapstructure:"path" yaml:"path" validate:"required_without=InMemory"`
	InMemory   bool   `mapstructure:"in_memory" yaml:"in_memory"`
	SyncWrites bool   `mapstructure:"sync_writes" yaml:"sync_writes"`
}

// Render configures DOT and image output.
type Render struct {
	Format  string `mapstructure:"format" yaml:"format" validate:"oneof=svg png jpg dot"`
	RankDir string `mapstructure:"rank_dir" yaml:"rank_dir" validate:"oneof=BT TB LR RL"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("dual", false)
	v.SetDefault("artificial_node", true)
	v.SetDefault("max_nodes", 0)
	v.SetDefault("rank_bound", -1)
	v.SetDefault("workers", 4)
	v.SetDefault("store.path", "polylattice.db")
	v.SetDefault("store.in_memory", false)
	v.SetDefault("store.sync_writes", true)
	v.SetDefault("render.format", "svg")
	v.SetDefault("render.rank_dir", "BT")
}

// New returns a viper instance with defaults and environment binding set
// up. Commands bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return v
}

// Load reads the YAML file at path (if not empty) into v, decodes the
// result and validates it.
//
// Errors: file read errors, ErrInvalid.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Default returns the validated defaults.
func Default() *Config {
	c, err := Load(New(), "")
	if err != nil {
		panic(err)
	}

	return c
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
