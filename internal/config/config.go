package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Graph     GraphConfig     `mapstructure:"graph"`
	Traversal TraversalConfig `mapstructure:"traversal"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type GraphConfig struct {
	MaxVertices int    `mapstructure:"max_vertices"`
	Order       string `mapstructure:"order"`
	Loops       bool   `mapstructure:"loops"`
}

type TraversalConfig struct {
	Start       int    `mapstructure:"start"`
	Algorithm   string `mapstructure:"algorithm"`
	Concurrency int    `mapstructure:"concurrency"`
}

// Load reads the configuration from file and environment variables.
// With an empty cfgFile, graphwalk.yaml is looked up in $HOME/.graphwalk and
// the working directory; a missing file there is not an error, while a
// missing explicit cfgFile is.
func Load(cfgFile string) (*Config, error) {
	v := newViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".graphwalk"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("graphwalk")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return decode(v)
}

// loadDefaults returns the configuration from defaults and environment only.
func loadDefaults() (*Config, error) {
	return decode(newViper())
}

// newViper returns a viper instance with env binding and defaults set.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GRAPHWALK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("graph.max_vertices", 100)
	v.SetDefault("graph.order", "newest-first")
	v.SetDefault("graph.loops", false)
	v.SetDefault("traversal.start", 0)
	v.SetDefault("traversal.algorithm", "both")
	v.SetDefault("traversal.concurrency", 4)

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values no command could act on.
func (c *Config) Validate() error {
	if c.Graph.MaxVertices <= 0 {
		return fmt.Errorf("graph.max_vertices must be positive, got %d", c.Graph.MaxVertices)
	}
	if c.Traversal.Concurrency <= 0 {
		return fmt.Errorf("traversal.concurrency must be positive, got %d", c.Traversal.Concurrency)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}
