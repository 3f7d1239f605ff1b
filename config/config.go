// Package config loads board, engine and logging settings from
// defaults, an optional YAML file and CONNECT4_* environment variables,
// in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
)

const EnvPrefix = "connect4"

type Config struct {
	Width         int        `mapstructure:"width"`
	Height        int        `mapstructure:"height"`
	Depth         int        `mapstructure:"depth"`
	Algorithm     string     `mapstructure:"algorithm"`
	ComputerFirst bool       `mapstructure:"computer_first"`
	Weights       ai.Weights `mapstructure:"weights"`
	LogLevel      string     `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 7)
	v.SetDefault("height", 6)
	v.SetDefault("depth", 4)
	v.SetDefault("algorithm", ai.AlphaBeta.String())
	v.SetDefault("computer_first", true)
	v.SetDefault("weights.four", ai.DefaultWeights.Four)
	v.SetDefault("weights.three", ai.DefaultWeights.Three)
	v.SetDefault("weights.two", ai.DefaultWeights.Two)
	v.SetDefault("log_level", "info")
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment are consulted.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if _, err := c.Board(); err != nil {
		return err
	}
	if c.Depth < 1 {
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	}
	if _, err := ai.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Board() (*c4.Config, error) {
	return c4.NewConfig(c.Width, c.Height)
}

func (c *Config) First() c4.Color {
	if c.ComputerFirst {
		return c4.Computer
	}
	return c4.Human
}

func (c *Config) Engine() (ai.Config, error) {
	alg, err := ai.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return ai.Config{}, err
	}
	cfg := ai.Config{Depth: c.Depth, Algorithm: alg}
	if c.Weights != ai.DefaultWeights {
		w := c.Weights
		cfg.Evaluate = ai.MakeEvaluator(&w)
	}
	return cfg, nil
}

func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
