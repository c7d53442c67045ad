package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/hwittich/rvx/internal/app"
	"github.com/hwittich/rvx/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	prompter := NewPrompter(nil, nil)
	container, err := app.BuildContainer(ctx, opts.Verbose, prompter, prompter)
	if err != nil {
		return nil, err
	}

	progress := NewProgressPrinter(os.Stdout)
	container.Coordinator.Progress = progress.Print

	root := &cobra.Command{
		Use:   "rvx",
		Short: "rvx - runtime version coordinator",
		Long:  "rvx keeps the active runtime version, the console, and the project manifest in agreement, driving the underlying version-manager tool.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			progress.Done()
		},
	}

	root.AddCommand(commands.NewUseCommand(container))
	root.AddCommand(commands.NewInstallCommand(container))
	root.AddCommand(commands.NewRemoveCommand(container))
	root.AddCommand(commands.NewStatusCommand(container))
	root.AddCommand(commands.NewCheckCommand(container))
	root.AddCommand(commands.NewConsoleCommand(container))
	root.AddCommand(commands.NewListCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	return root, nil
}
