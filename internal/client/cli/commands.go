package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// newRootCmd builds a fresh command tree. The REPL builds one per line so
// flag values never leak between commands.
func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobpilot",
		Short:         "Job search assistant client",
		Long:          "jobpilot manages resumes, job searches, applications and Telegram notifications on the jobpilot backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		a.userCmd(),
		a.useCmd(),
		a.resumesCmd(),
		a.jobsCmd(),
		a.notifyCmd(),
		a.webhookCmd(),
		a.overviewCmd(),
		a.pingCmd(),
	)
	return root
}

func (a *App) execute(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.reader)
	root.SetOut(a.out)
	root.SetErr(a.out)
	return root.ExecuteContext(ctx)
}

func (a *App) hasCommand(name string) bool {
	for _, c := range a.newRootCmd().Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func (a *App) usage() string {
	var names []string
	for _, c := range a.newRootCmd().Commands() {
		names = append(names, c.Name())
	}
	names = append(names, "help", "exit")
	return "Available commands: " + strings.Join(names, ", ") + "\nUse '<command> --help' for details."
}

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, s)
	}
	return id, nil
}

func parseIDs(args []string, what string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, s := range args {
		id, err := parseID(s, what)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
