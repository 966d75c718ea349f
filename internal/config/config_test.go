// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.TasksFile != DefaultTasksFile {
		t.Errorf("TasksFile: got %q, want %q", cfg.TasksFile, DefaultTasksFile)
	}
	if cfg.SchemaFile != "" {
		t.Errorf("SchemaFile: got %q, want empty", cfg.SchemaFile)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TasksFile != DefaultTasksFile {
		t.Errorf("TasksFile: got %q, want default %q", cfg.TasksFile, DefaultTasksFile)
	}
}

func TestLoadProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := "tasks_file = \"other-tasks.json\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, "taskcheck.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TasksFile != "other-tasks.json" {
		t.Errorf("TasksFile: got %q, want other-tasks.json", cfg.TasksFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
}

func TestLoadHiddenProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".taskcheck.toml"), []byte("tasks_file = \"hidden.json\"\n"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TasksFile != "hidden.json" {
		t.Errorf("TasksFile: got %q, want hidden.json", cfg.TasksFile)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "taskcheck.toml"), []byte("tasks_file = \"from-file.json\"\n"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, []string{"-tasks", "from-flag.json"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TasksFile != "from-flag.json" {
		t.Errorf("TasksFile: got %q, want from-flag.json", cfg.TasksFile)
	}
}

func TestLoadInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "taskcheck.toml"), []byte("tasks_file = [broken\n"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := Load(fs, nil); err == nil {
		t.Error("expected error for invalid config file, got nil")
	}
}
