package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwittich/rvx/internal/app"
)

// NewStatusCommand creates the status command
func NewStatusCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Re-read backend state and refresh the version indicator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Coordinator == nil {
				return fmt.Errorf(ErrCoordinatorUnavailable)
			}
			return container.Coordinator.RefreshStatus(cmd.Context())
		},
	}
}
