package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.TasksFile != "" {
		t.Errorf("TasksFile default: got %q, want empty (resolved in finalize)", cfg.TasksFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat: got %q, want text", cfg.LogFormat)
	}
	if cfg.LogTimestamps {
		t.Error("LogTimestamps: got true, want false")
	}
	if cfg.HookCommand != "" {
		t.Errorf("HookCommand: got %q, want empty", cfg.HookCommand)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "tasker.toml")

	content := []byte(`tasks_file = "custom.json"
log_level = "debug"
log_timestamps = true
hook_command = "git add tasks.json"
`)
	if err := os.WriteFile(configFile, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	setDefaults(cfg)
	if err := loadConfigFile(cfg, configFile); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cfg.TasksFile != "custom.json" {
		t.Errorf("TasksFile: got %q, want custom.json", cfg.TasksFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
	if cfg.HookCommand != "git add tasks.json" {
		t.Errorf("HookCommand: got %q, want git add tasks.json", cfg.HookCommand)
	}
	// Fields not in the file keep their defaults.
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat: got %q, want text", cfg.LogFormat)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "tasker.toml")
	if err := os.WriteFile(configFile, []byte("tasks_file = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	if err := loadConfigFile(cfg, configFile); err == nil {
		t.Error("expected error for invalid TOML, got nil")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TASKER_FILE", "env-tasks.json")
	t.Setenv("TASKER_LOG_LEVEL", "warn")
	t.Setenv("TASKER_LOG_FORMAT", "json")
	t.Setenv("TASKER_LOG_TIMESTAMPS", "true")
	t.Setenv("TASKER_HOOK_COMMAND", "notify-send done")

	cfg := &Config{}
	setDefaults(cfg)
	loadFromEnv(cfg)

	if cfg.TasksFile != "env-tasks.json" {
		t.Errorf("TasksFile: got %q, want env-tasks.json", cfg.TasksFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q, want warn", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat: got %q, want json", cfg.LogFormat)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
	if cfg.HookCommand != "notify-send done" {
		t.Errorf("HookCommand: got %q, want notify-send done", cfg.HookCommand)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "tasker.toml")
	if err := os.WriteFile(configFile, []byte(`log_level = "debug"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKER_LOG_LEVEL", "error")

	cfg := &Config{}
	setDefaults(cfg)
	if err := loadConfigFile(cfg, configFile); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	loadFromEnv(cfg)

	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel: got %q, want error (env wins over file)", cfg.LogLevel)
	}
}

func TestParseFlags(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	args := []string{
		"--file", "flag-tasks.json",
		"--log-level", "debug",
		"--hook", "echo saved",
		"add", "Buy milk",
	}

	if err := parseFlags(cfg, fs, args); err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if cfg.TasksFile != "flag-tasks.json" {
		t.Errorf("TasksFile: got %q, want flag-tasks.json", cfg.TasksFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if cfg.HookCommand != "echo saved" {
		t.Errorf("HookCommand: got %q, want echo saved", cfg.HookCommand)
	}

	remaining := fs.Args()
	if len(remaining) != 2 || remaining[0] != "add" || remaining[1] != "Buy milk" {
		t.Errorf("remaining args: got %v, want [add Buy milk]", remaining)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := parseFlags(cfg, fs, []string{"--no-such-flag"}); err == nil {
		t.Error("expected error for unknown flag, got nil")
	}
}

func TestFinalize(t *testing.T) {
	t.Run("empty path defaults next to the executable", func(t *testing.T) {
		cfg := &Config{}
		finalize(cfg)
		want := filepath.Join(InstallDir(), DefaultTasksFileName)
		if cfg.TasksFile != want {
			t.Errorf("TasksFile: got %q, want %q", cfg.TasksFile, want)
		}
	})

	t.Run("relative path anchors to the executable dir", func(t *testing.T) {
		cfg := &Config{TasksFile: filepath.Join("state", "t.json")}
		finalize(cfg)
		want := filepath.Join(InstallDir(), "state", "t.json")
		if cfg.TasksFile != want {
			t.Errorf("TasksFile: got %q, want %q", cfg.TasksFile, want)
		}
	})

	t.Run("absolute path kept", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "tasks.json")
		cfg := &Config{TasksFile: abs}
		finalize(cfg)
		if cfg.TasksFile != abs {
			t.Errorf("TasksFile: got %q, want %q", cfg.TasksFile, abs)
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/tasks", filepath.Join(home, "tasks")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative", "relative"},
		{"", ""},
	}
	if runtime.GOOS != "windows" {
		tests = append(tests, struct {
			input string
			want  string
		}{input: `~\tasks`, want: `~\tasks`})
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.want {
				t.Errorf("expandPath(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{" on ", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"off", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := boolFromString(tt.input); got != tt.want {
				t.Errorf("boolFromString(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInstallDir(t *testing.T) {
	dir := InstallDir()
	if dir == "" {
		t.Fatal("InstallDir returned empty string")
	}
	if dir != "." && !filepath.IsAbs(dir) {
		t.Errorf("InstallDir: got %q, want an absolute path or .", dir)
	}
}
