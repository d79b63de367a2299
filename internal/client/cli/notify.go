package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobpilot/internal/client/models"
	"github.com/spf13/cobra"
)

func (a *App) notifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send and list Telegram notifications",
	}
	cmd.AddCommand(a.notifySendCmd(), a.notifyListCmd())
	return cmd
}

// parseButtons turns "text=callback" pairs into inline keyboard buttons.
func parseButtons(specs []string) (*models.ButtonsData, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	pairs := make([]string, 0, 2*len(specs))
	for _, s := range specs {
		text, data, ok := strings.Cut(s, "=")
		if !ok || text == "" || data == "" {
			return nil, fmt.Errorf("invalid button %q: want text=callback_data", s)
		}
		pairs = append(pairs, text, data)
	}
	return models.NewButtonsData(pairs...), nil
}

func (a *App) notifySendCmd() *cobra.Command {
	var (
		kind, title, message, data string
		buttons                    []string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification to the selected user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.requireUser()
			if err != nil {
				return err
			}

			req := models.NotificationRequest{
				UserID:           id,
				NotificationType: kind,
				Title:            title,
				Message:          message,
			}
			if data != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				req.Data = json.RawMessage(data)
			}
			if req.ButtonsData, err = parseButtons(buttons); err != nil {
				return err
			}

			n, err := a.client.SendNotification(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.printNotifications(cmd.OutOrStdout(), []models.Notification{*n})
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", models.NotificationJobsFound, "notification type: jobs_found, application_sent or response_received")
	cmd.Flags().StringVar(&title, "title", "", "title")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message text (Markdown)")
	cmd.Flags().StringVar(&data, "data", "", "extra JSON payload")
	cmd.Flags().StringArrayVar(&buttons, "button", nil, "inline button as text=callback_data (repeatable)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func (a *App) notifyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the selected user's notifications, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.requireUser()
			if err != nil {
				return err
			}
			ns, err := a.client.ListNotifications(cmd.Context(), id)
			if err != nil {
				return err
			}
			a.printNotifications(cmd.OutOrStdout(), ns)
			return nil
		},
	}
}

func (a *App) webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Configure the Telegram bot webhook",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "setup",
			Short: "Point the bot webhook at the backend",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				msg, err := a.client.SetupWebhook(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Remove the bot webhook",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				msg, err := a.client.DeleteWebhook(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
				return nil
			},
		},
	)
	return cmd
}
