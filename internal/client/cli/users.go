package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/spf13/cobra"
)

func (a *App) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create, show or update the job seeker profile",
	}
	cmd.AddCommand(a.userCreateCmd(), a.userShowCmd(), a.userUpdateCmd())
	return cmd
}

func (a *App) userCreateCmd() *cobra.Command {
	var (
		email, name, telegram string
		noPassword            bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user and select it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			var err error
			if email == "" {
				if email, err = GetSimpleText(a.reader, "E-mail", out); err != nil {
					return err
				}
			}
			if name == "" {
				if name, err = GetSimpleText(a.reader, "Full name", out); err != nil {
					return err
				}
			}

			var password []byte
			if !noPassword {
				password, err = GetPassword(a.reader, "Mailbox password for outgoing applications (empty to skip)", out)
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				defer wipe(password)
			}

			u, err := a.users.Register(cmd.Context(), email, name, telegram, password)
			if err != nil {
				return err
			}

			a.selectUser(u.ID)
			a.printUser(out, u)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-mail address")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&telegram, "telegram", "", "Telegram chat id for notifications")
	cmd.Flags().BoolVar(&noPassword, "no-password", false, "do not ask for the mailbox password")
	return cmd
}

func (a *App) userShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a user (default: the selected one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.userArg(args)
			if err != nil {
				return err
			}
			u, err := a.users.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			a.printUser(cmd.OutOrStdout(), u)
			return nil
		},
	}
}

func (a *App) userUpdateCmd() *cobra.Command {
	var (
		email, name, telegram string
		active, password      bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update fields of the selected user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.requireUser()
			if err != nil {
				return err
			}

			var upd models.UserUpdate
			flags := cmd.Flags()
			if flags.Changed("email") {
				upd.Email = &email
			}
			if flags.Changed("name") {
				upd.FullName = &name
			}
			if flags.Changed("telegram") {
				upd.TelegramChatID = &telegram
			}
			if flags.Changed("active") {
				upd.IsActive = &active
			}
			if password {
				pw, err := GetPassword(a.reader, "New mailbox password", cmd.OutOrStdout())
				if err != nil {
					return err
				}
				s := string(pw)
				wipe(pw)
				upd.EmailPassword = &s
			}
			if upd == (models.UserUpdate{}) {
				return fmt.Errorf("nothing to update: pass at least one of --email, --name, --telegram, --active, --password")
			}

			u, err := a.users.Update(cmd.Context(), id, upd)
			if err != nil {
				return err
			}
			a.printUser(cmd.OutOrStdout(), u)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new e-mail address")
	cmd.Flags().StringVar(&name, "name", "", "new full name")
	cmd.Flags().StringVar(&telegram, "telegram", "", "new Telegram chat id")
	cmd.Flags().BoolVar(&active, "active", true, "enable or disable the daily job search")
	cmd.Flags().BoolVar(&password, "password", false, "ask for a new mailbox password")
	return cmd
}

func (a *App) useCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [id]",
		Short: "Select the user the CLI acts for",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				if id := a.currentUser(); id != 0 {
					fmt.Fprintf(out, "Current user: %d\n", id)
				} else {
					fmt.Fprintln(out, "No user selected")
				}
				return nil
			}

			id, err := parseID(args[0], "user")
			if err != nil {
				return err
			}
			u, err := a.users.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			a.selectUser(u.ID)
			if err := a.loadBoard(cmd.Context(), true); err != nil {
				a.log.Warn(cmd.Context(), "resume board not loaded", "user_id", u.ID, "error", err)
			}
			a.printUser(out, u)
			return nil
		},
	}
}

// userArg resolves an optional id argument, defaulting to the selected user.
func (a *App) userArg(args []string) (int64, error) {
	if len(args) == 0 {
		return a.requireUser()
	}
	return parseID(args[0], "user")
}
