package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hwittich/rvx/internal/app"
	"github.com/hwittich/rvx/internal/domain"
)

// NewListCommand creates the list command
func NewListCommand(container *app.Container) *cobra.Command {
	var remote, all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runtime versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			switch {
			case all:
				return listAllVersions(ctx, out, container)
			case remote:
				return listRemoteVersions(ctx, out, container)
			default:
				return listInstalledVersions(ctx, out, container)
			}
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "List versions available for install")
	cmd.Flags().BoolVar(&all, "all", false, "List installed and available versions")
	return cmd
}

// listAllVersions fetches both listings concurrently; either failure aborts.
func listAllVersions(ctx context.Context, out io.Writer, container *app.Container) error {
	var (
		installed []domain.InstalledVersion
		available []domain.AvailableVersion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		installed, err = container.Backend.ListInstalled(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		available, err = container.Backend.ListAvailable(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	displayInstalled(out, installed)
	fmt.Fprintln(out)
	displayAvailable(out, available)
	return nil
}

func listInstalledVersions(ctx context.Context, out io.Writer, container *app.Container) error {
	installed, err := container.Backend.ListInstalled(ctx)
	if err != nil {
		return err
	}
	displayInstalled(out, installed)
	return nil
}

func listRemoteVersions(ctx context.Context, out io.Writer, container *app.Container) error {
	available, err := container.Backend.ListAvailable(ctx)
	if err != nil {
		return err
	}
	displayAvailable(out, available)
	return nil
}

func displayInstalled(out io.Writer, versions []domain.InstalledVersion) {
	if len(versions) == 0 {
		fmt.Fprintln(out, MsgNoVersionsInstalled)
		return
	}
	fmt.Fprintln(out, "Installed:")
	for _, v := range versions {
		marker := " "
		if v.Default {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s", marker, v.Version)
		if len(v.Aliases) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(v.Aliases, ", "))
		}
		fmt.Fprintln(out, line)
	}
}

func displayAvailable(out io.Writer, versions []domain.AvailableVersion) {
	if len(versions) == 0 {
		fmt.Fprintln(out, MsgNoRemoteVersions)
		return
	}
	fmt.Fprintln(out, "Available:")
	for _, v := range versions {
		line := fmt.Sprintf("  %s", v.Name)
		if v.Type != "" {
			line += fmt.Sprintf(" [%s]", v.Type)
		}
		if v.Date != "" {
			line += fmt.Sprintf(" %s", v.Date)
		}
		fmt.Fprintln(out, line)
	}
}
