// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. Project config file (taskcheck.toml or .taskcheck.toml in the working directory)
// 3. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// Environment variables are deliberately not consulted: the task-store
// contract is purely file and flag driven.
package config
