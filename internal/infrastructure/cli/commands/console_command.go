package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwittich/rvx/internal/app"
)

// NewConsoleCommand creates the console command
func NewConsoleCommand(container *app.Container) *cobra.Command {
	var fresh bool

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Open the managed console on the active version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.ConsoleManager == nil {
				return fmt.Errorf(ErrConsoleManagerUnavailable)
			}
			ctx := cmd.Context()
			if err := container.ConsoleManager.Ensure(ctx, fresh); err != nil {
				return err
			}
			return container.ConsoleManager.Attach(ctx)
		},
	}

	cmd.Flags().BoolVar(&fresh, "new", false, "Replace any existing console with a fresh one")
	return cmd
}
