package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Project config file names, checked in order in the working directory.
var projectConfigNames = []string{"taskcheck.toml", ".taskcheck.toml"}

// Load loads configuration from defaults, the project config file, and CLI
// flags. The flag set is parsed here so callers can register their own
// flags on it beforehand.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from project config file
	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// 3. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

// findProjectConfigFile returns the first existing project config file,
// or "" when none exists.
func findProjectConfigFile() string {
	for _, name := range projectConfigNames {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskcheck", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.TasksFile, "tasks", cfg.TasksFile, "Path to task store file")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to schema file (overrides embedded schema)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")

	return fs.Parse(args)
}
