package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/nibzard/tasker/internal/config"
	"github.com/nibzard/tasker/internal/hooks"
	"github.com/nibzard/tasker/internal/task"
)

// deleteCommand removes a task. Remaining tasks keep their ids and their
// relative order; the freed id becomes a gap in the sequence.
func deleteCommand(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	st, logger := newStore(cfg)
	list, err := st.Load()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	if err := list.Delete(id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return fmt.Errorf("Task #%d not found", id)
		}
		return err
	}
	if err := st.Save(list); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}

	fmt.Printf("Deleted task #%d\n", id)
	runHook(ctx, cfg, logger, hooks.EventDelete, id)
	return nil
}
