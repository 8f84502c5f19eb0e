package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) welcomeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "welcome",
		Short: "Print the API welcome message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			message, err := a.adapter.Welcome(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, message)
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.requestContext(cmd)
			defer cancel()

			version, err := a.adapter.Version(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Server version: %s\n", version)
			return nil
		},
	}
}

func (a *App) buildInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build-info",
		Short: "Print the build metadata of this client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, a.buildInfo)
			return nil
		},
	}
}
