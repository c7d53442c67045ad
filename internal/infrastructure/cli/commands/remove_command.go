package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwittich/rvx/internal/app"
)

// NewRemoveCommand creates the remove command
func NewRemoveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <version>",
		Short: "Uninstall a runtime version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Coordinator == nil {
				return fmt.Errorf(ErrCoordinatorUnavailable)
			}
			if err := container.Coordinator.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		},
	}
}
