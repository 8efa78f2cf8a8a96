package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Norgate-AV/compdb/internal/compilation"
	"github.com/Norgate-AV/compdb/internal/index"
)

// Default configuration values
const (
	DefaultDatabasePath = "compile_commands.json"
	DefaultCommandStyle = CommandStyleArray
	DefaultVerbose      = false
)

// Recognised command styles
const (
	CommandStyleArray  = "array"
	CommandStyleString = "string"
)

// Holds the configuration options for compdb
type Config struct {
	// Path to the compilation database file
	DatabasePath string

	// Wire shape written on save: "array" or "string"
	CommandStyle string

	// Path to the lookup index file
	IndexPath string

	// Enable verbose output
	Verbose bool
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabasePath: viper.GetString("database"),
		CommandStyle: viper.GetString("command_style"),
		IndexPath:    viper.GetString("index"),
		Verbose:      viper.GetBool("verbose"),
	}

	// Apply defaults if not set
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultDatabasePath
	}

	if cfg.CommandStyle == "" {
		cfg.CommandStyle = DefaultCommandStyle
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if abs, err := filepath.Abs(c.DatabasePath); err == nil {
		c.DatabasePath = abs
	}

	// Resolve index path, defaulting next to the database
	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(filepath.Dir(c.DatabasePath), index.DefaultIndexFile)
	} else if abs, err := filepath.Abs(c.IndexPath); err == nil {
		c.IndexPath = abs
	}

	// Validate command style
	if c.CommandStyle != CommandStyleArray && c.CommandStyle != CommandStyleString {
		return fmt.Errorf("invalid command style: %s", c.CommandStyle)
	}

	return nil
}

// Format returns the database format the configuration selects
func (c *Config) Format() *compilation.Format {
	return compilation.NewFormat().SetCommandAsArray(c.CommandStyle == CommandStyleArray)
}
