package cmds

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pandodao/money-tracker/service/tracker"
	"github.com/spf13/cobra"
)

type Cmd struct {
	Tracker *tracker.Service
}

func (c *Cmd) Run(ctx context.Context, args []string) error {
	root := c.command()
	root.SetArgs(args)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	return root.ExecuteContext(ctx)
}

func (c *Cmd) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker-cli",
		Short:         "money tracker command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// a failed restore leaves the session anonymous, commands that
			// need a user report that themselves
			if _, err := c.Tracker.Start(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "restore session:", err)
			}
		},
	}

	root.AddCommand(c.usersCmd())
	root.AddCommand(c.userCmd())
	root.AddCommand(c.logoutCmd())
	root.AddCommand(c.overviewCmd())
	root.AddCommand(c.walletsCmd())
	root.AddCommand(c.walletCmd())
	root.AddCommand(c.transactionsCmd())
	root.AddCommand(c.txCmd())

	return root
}

func jsonPrint(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
