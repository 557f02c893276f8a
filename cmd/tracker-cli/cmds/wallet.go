package cmds

import (
	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/tracker"
	"github.com/spf13/cobra"
)

func (c *Cmd) overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "show the active user's dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := c.Tracker.Overview(cmd.Context())
			if err != nil {
				return err
			}

			return jsonPrint(cmd, page)
		},
	}
}

func (c *Cmd) walletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallets",
		Short: "list the active user's wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := c.Tracker.Wallets(cmd.Context())
			if err != nil {
				return err
			}

			return jsonPrint(cmd, page.User.Wallets)
		},
	}
}

func (c *Cmd) walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "inspect or create wallets",
	}

	cmd.AddCommand(c.walletShowCmd())
	cmd.AddCommand(c.walletCloseCmd())
	cmd.AddCommand(c.walletCreateCmd())
	return cmd
}

func (c *Cmd) walletShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <wallet_id>",
		Short: "show a wallet with its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := c.Tracker.WalletDetail(cmd.Context(), core.ParseID(args[0]))
			if err != nil {
				return err
			}

			return jsonPrint(cmd, page)
		},
	}
}

func (c *Cmd) walletCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "clear the selected wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Tracker.CloseWallet()
			return jsonPrint(cmd, map[string]any{"selected_wallet_id": c.Tracker.SelectedWalletID()})
		},
	}
}

func (c *Cmd) walletCreateCmd() *cobra.Command {
	var form tracker.WalletForm

	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a wallet for the active user",
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := c.Tracker.CreateWallet(cmd.Context(), form)
			if err != nil {
				return err
			}

			return jsonPrint(cmd, wallet)
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "wallet name")
	cmd.Flags().StringVar(&form.Balance, "balance", "", "initial balance, 0 when empty")
	cmd.Flags().StringVar(&form.Description, "description", "", "description, \"<name> wallet\" when empty")
	return cmd
}
