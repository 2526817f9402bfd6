package cmd

import (
	"context"
	"fmt"

	"github.com/nibzard/tasker/internal/config"
	"github.com/nibzard/tasker/internal/hooks"
)

// addCommand appends a new task and reports its assigned id.
func addCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task description")
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}

	st, logger := newStore(cfg)
	list, err := st.Load()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	created := list.Add(args[0])
	if err := st.Save(list); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	fmt.Printf("Added task #%d: %s\n", created.ID, created.Text)
	runHook(ctx, cfg, logger, hooks.EventAdd, created.ID)
	return nil
}
