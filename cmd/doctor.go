package cmd

import (
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/nibzard/tasker/internal/config"
	"github.com/nibzard/tasker/internal/logging"
	"github.com/nibzard/tasker/internal/store"
)

// doctorCommand checks the config, the tasks file, and the hook command.
func doctorCommand(cfg *config.Config, args []string) error {
	// Parse doctor-specific flags
	fs := flag.NewFlagSet("tasker doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if remaining := fs.Args(); len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remaining)
	}

	fmt.Println("Tasker Doctor")
	fmt.Println("=============")
	fmt.Println()

	allOK := true

	// Check config files
	fmt.Println("Config files:")
	if len(cfg.SourceFiles) == 0 {
		fmt.Println("  ⚠️  None found (using defaults)")
	} else {
		for _, path := range cfg.SourceFiles {
			fmt.Printf("  ✅ %s\n", path)
		}
	}
	fmt.Println()

	// Check config values
	configOK := true
	fmt.Println("Config:")
	if logging.KnownLevel(cfg.LogLevel) {
		fmt.Printf("  ✅ Log level: %s\n", cfg.LogLevel)
	} else {
		fmt.Printf("  ❌ Log level: %s (expected debug|info|warn|error)\n", cfg.LogLevel)
		configOK = false
	}
	if logging.KnownFormat(cfg.LogFormat) {
		fmt.Printf("  ✅ Log format: %s\n", cfg.LogFormat)
	} else {
		fmt.Printf("  ❌ Log format: %s (expected text|json|logfmt)\n", cfg.LogFormat)
		configOK = false
	}
	if !configOK {
		allOK = false
	}
	fmt.Println()

	// Check tasks file
	st := store.New(cfg.TasksFile)
	fmt.Printf("Tasks file: %s\n", st.Path())
	info, err := os.Stat(st.Path())
	switch {
	case err != nil && os.IsNotExist(err):
		fmt.Println("  ⚠️  Not found (created on first use)")
	case err != nil:
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	default:
		fmt.Println("  ✅ OK")
		result := st.Validate()
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠️  %s\n", w)
		}
		if result.Valid {
			fmt.Println("  ✅ Valid")
		} else {
			fmt.Println("  ❌ Validation failed:")
			for _, e := range result.Errors {
				fmt.Printf("     - %v\n", e)
			}
			allOK = false
		}
		if *verbose && result.Valid {
			if list, loadErr := st.Load(); loadErr == nil {
				open, done := list.Counts()
				fmt.Printf("  Tasks: %d open, %d done\n", open, done)
				for _, t := range list {
					fmt.Printf("    %s\n", formatTask(t))
				}
			}
		}
	}
	fmt.Println()

	// Check hook command
	if cfg.HookCommand != "" || *verbose {
		fmt.Println("Hook command:")
		if cfg.HookCommand == "" {
			fmt.Println("  ⚠️  Not configured")
		} else if resolved, err := exec.LookPath(cfg.HookCommand); err != nil {
			fmt.Printf("  ⚠️  %s: %v\n", cfg.HookCommand, err)
		} else {
			fmt.Printf("  ✅ %s\n", resolved)
		}
		fmt.Println()
	}

	// Overall status
	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Tasker may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}
