package cli

import (
	"fmt"

	"github.com/dmitrijs2005/jobpilot/internal/client/services"
	"github.com/spf13/cobra"
)

func (a *App) resumesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resumes",
		Aliases: []string{"resume"},
		Short:   "Manage uploaded resumes",
	}
	cmd.AddCommand(
		a.resumesListCmd(),
		a.resumesShowCmd(),
		a.resumesUploadCmd(),
		a.resumesDeleteCmd(),
		a.resumesToggleCmd(),
	)
	return cmd
}

func (a *App) resumesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the selected user's resumes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadBoard(cmd.Context(), true); err != nil {
				return err
			}
			a.printResumes(cmd.OutOrStdout(), a.board.Entries())
			return nil
		},
	}
}

func (a *App) resumesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "resume")
			if err != nil {
				return err
			}
			r, err := a.client.GetResume(cmd.Context(), id)
			if err != nil {
				return err
			}

			entry := services.BoardEntry{Resume: *r, State: services.StateConfirmed}
			if known, err := a.board.Get(id); err == nil {
				entry.Active = known.Active
			}
			a.printResume(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

func (a *App) resumesUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path|s3://bucket/key>",
		Short: "Upload a resume (PDF, DOC, DOCX or TXT)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.loadBoard(ctx, false); err != nil {
				return err
			}

			doc, err := a.sources.Open(ctx, args[0])
			if err != nil {
				return err
			}
			defer doc.Body.Close()

			r, err := a.board.Upload(ctx, doc.Name, doc.Body)
			if err != nil {
				return err
			}

			entry, err := a.board.Get(r.ID)
			if err != nil {
				return err
			}
			a.printResume(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

func (a *App) resumesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a resume",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			id, err := parseID(args[0], "resume")
			if err != nil {
				return err
			}
			if err := a.loadBoard(ctx, false); err != nil {
				return err
			}
			if _, err := a.board.Get(id); err != nil {
				return fmt.Errorf("resume %d: %w", id, err)
			}

			if !yes {
				ok, err := Confirm(a.reader, a.labels().confirmDelete, out)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Cancelled")
					return nil
				}
			}

			msg, err := a.board.Delete(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, msg.Message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *App) resumesToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Activate or deactivate a resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0], "resume")
			if err != nil {
				return err
			}
			if err := a.loadBoard(ctx, false); err != nil {
				return err
			}

			// A rolled back toggle still returns the entry, now in the failed state.
			entry, err := a.board.ToggleActive(ctx, id)
			if entry.Resume.ID != 0 {
				a.printResume(cmd.OutOrStdout(), entry)
			}
			return err
		},
	}
}
