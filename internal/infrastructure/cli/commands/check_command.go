package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwittich/rvx/internal/app"
)

// NewCheckCommand creates the check command
func NewCheckCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Reconcile the project manifest against installed versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.Reconciler == nil {
				return fmt.Errorf(ErrReconcilerUnavailable)
			}
			container.Reconciler.Out = cmd.OutOrStdout()
			_, err := container.Reconciler.Reconcile(cmd.Context(), force)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Check even when manifest auto-check is disabled, and report quiet outcomes")
	return cmd
}
