package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwittich/rvx/internal/app"
)

// NewUseCommand creates the use command
func NewUseCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Make a version the active default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Coordinator == nil {
				return fmt.Errorf(ErrCoordinatorUnavailable)
			}
			if err := container.Coordinator.SwitchTo(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default runtime is now %s.\n", args[0])
			return nil
		},
	}
}
