package cmd

import (
	"fmt"

	"github.com/nibzard/tasker/internal/config"
	"github.com/nibzard/tasker/internal/task"
)

// listCommand prints every task in collection order.
func listCommand(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	st, _ := newStore(cfg)
	list, err := st.Load()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	if len(list) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}
	for _, t := range list {
		fmt.Println(formatTask(t))
	}
	return nil
}

// formatTask renders one task as a display line.
func formatTask(t task.Task) string {
	return fmt.Sprintf("[%d] [%s] %s (%s)", t.ID, t.Mark(), t.Text, t.CreatedStamp())
}
