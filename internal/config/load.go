package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Install config file (tasker.toml next to the executable)
// 3. User config file (~/.tasker/tasker.toml or OS-specific config dir)
// 4. Environment variables (TASKER_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from the install config file
	if path := findInstallConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading install config file %s: %w", path, err)
		}
		cfg.SourceFiles = append(cfg.SourceFiles, path)
	}

	// 3. Try to load from the user config file (overrides install config)
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
		cfg.SourceFiles = append(cfg.SourceFiles, path)
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	finalize(cfg)

	return cfg, nil
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKER_FILE"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("TASKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKER_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("TASKER_HOOK_COMMAND"); v != "" {
		cfg.HookCommand = v
	}
}

// parseFlags defines and parses the global CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasker", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.TasksFile, "file", cfg.TasksFile, "Path to the tasks file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.StringVar(&cfg.HookCommand, "hook", cfg.HookCommand, "Command to run after each mutation")

	return fs.Parse(args)
}

// finalize computes derived values. The tasks file defaults to tasks.json
// next to the executable; a relative path also resolves against the
// executable's directory, never the working directory.
func finalize(cfg *Config) {
	cfg.TasksFile = expandPath(cfg.TasksFile)
	switch {
	case cfg.TasksFile == "":
		cfg.TasksFile = filepath.Join(InstallDir(), DefaultTasksFileName)
	case !filepath.IsAbs(cfg.TasksFile):
		cfg.TasksFile = filepath.Join(InstallDir(), cfg.TasksFile)
	}
}

// boolFromString reads common truthy spellings; everything else is false.
func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
