package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwittich/rvx/internal/app"
)

// NewInstallCommand creates the install command
func NewInstallCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "install <version>",
		Short: "Install a runtime version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Coordinator == nil {
				return fmt.Errorf(ErrCoordinatorUnavailable)
			}
			if err := container.Coordinator.Install(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed %s.\n", args[0])
			return nil
		},
	}
}
