// Package config resolves runtime settings for the labyrinth CLI from
// defaults, an optional config file, LABYRINTH_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"labyrinth/internal/maze"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "LABYRINTH"

// Config holds all runtime configuration for one invocation.
type Config struct {
	Maze maze.Config `mapstructure:",squash"`

	Format     string `mapstructure:"format"`
	Color      bool   `mapstructure:"color"`
	Out        string `mapstructure:"out"`
	Scale      int    `mapstructure:"scale"`
	RevealRate int    `mapstructure:"reveal_rate"`
	Verbose    bool   `mapstructure:"verbose"`
}

// flag name -> config key, for flags whose names differ from their keys.
var flagKeys = map[string]string{
	"closure-bias": "closure_bias",
	"reveal-rate":  "reveal_rate",
}

// New returns a viper instance with defaults, env handling and the optional
// config file applied. path selects an explicit file; when empty,
// .labyrinth.{yaml,toml,json} is looked up in the working and home directories.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".labyrinth")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	d := maze.DefaultConfig()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("closure_bias", d.ClosureBias)
	v.SetDefault("format", "text")
	v.SetDefault("color", false)
	v.SetDefault("out", "")
	v.SetDefault("scale", 8)
	v.SetDefault("reveal_rate", 30)
	v.SetDefault("verbose", false)
}

// BindFlags binds every flag in fs that matches a config key, so an
// explicitly set flag overrides file and environment values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := f.Name
		if k, ok := flagKeys[key]; ok {
			key = k
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Maze.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
