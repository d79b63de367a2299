package cli

import (
	"fmt"

	"github.com/dmitrijs2005/jobpilot/internal/client/services"
	"github.com/spf13/cobra"
)

func (a *App) overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show profile and activity counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.requireUser()
			if err != nil {
				return err
			}
			ov, err := services.LoadOverview(cmd.Context(), a.client, id)
			if err != nil {
				return err
			}
			a.printOverview(cmd.OutOrStdout(), ov)
			return nil
		},
	}
}

func (a *App) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.users.Ping(ctx); err != nil {
				a.setMode(ctx, ModeOffline)
				return err
			}
			a.setMode(ctx, ModeOnline)
			fmt.Fprintln(cmd.OutOrStdout(), "Backend is online")
			return nil
		},
	}
}
