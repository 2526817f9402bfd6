package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/nibzard/tasker/internal/config"
	"github.com/nibzard/tasker/internal/hooks"
	"github.com/nibzard/tasker/internal/task"
)

// completeCommand marks a task as complete. When the id does not exist
// nothing is saved, so a failed command never touches the file.
func completeCommand(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	st, logger := newStore(cfg)
	list, err := st.Load()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	if err := list.Complete(id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return fmt.Errorf("Task #%d not found", id)
		}
		return err
	}
	if err := st.Save(list); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	fmt.Printf("Marked task #%d as complete\n", id)
	runHook(ctx, cfg, logger, hooks.EventComplete, id)
	return nil
}
