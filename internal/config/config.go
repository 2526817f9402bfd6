// Package config handles tasker configuration: defaults, config files,
// environment variables, and CLI flags, merged in that order.
package config

// File names consulted by the loader.
const (
	// DefaultTasksFileName is the backing file created next to the binary.
	DefaultTasksFileName = "tasks.json"

	// ConfigFileName is the name of both the install-level and user-level
	// config files.
	ConfigFileName = "tasker.toml"

	// UserConfigDirName is the dot-directory under the user's home.
	UserConfigDirName = ".tasker"
)

// Config holds the resolved tasker settings.
type Config struct {
	// TasksFile is the path of the JSON backing file. After Load it is
	// absolute; empty and relative values resolve against the directory
	// holding the tasker executable, never the working directory.
	TasksFile string `toml:"tasks_file"`

	// LogLevel is the minimum diagnostics level: debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFormat selects the diagnostics encoding: text, json, or logfmt.
	LogFormat string `toml:"log_format"`

	// LogTimestamps prefixes diagnostics with timestamps when true.
	LogTimestamps bool `toml:"log_timestamps"`

	// HookCommand, when non-empty, runs after every successful mutation.
	HookCommand string `toml:"hook_command"`

	// SourceFiles lists the config files that were applied, in load order.
	SourceFiles []string `toml:"-"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.TasksFile = ""
	cfg.LogLevel = "info"
	cfg.LogFormat = "text"
	cfg.LogTimestamps = false
	cfg.HookCommand = ""
}
