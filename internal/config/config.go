package config

// Default values.
const (
	DefaultTasksFile = "project-tasks.json"
	DefaultLogLevel  = "warn"
)

// Config holds the full configuration for the task utilities.
type Config struct {
	// TasksFile is the path to the JSON task store.
	TasksFile string `toml:"tasks_file"`

	// SchemaFile optionally overrides the embedded task-store schema.
	SchemaFile string `toml:"schema_file"`

	// LogLevel controls diagnostic verbosity on stderr (debug|info|warn|error).
	LogLevel string `toml:"log_level"`
}

func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.LogLevel = DefaultLogLevel
}
