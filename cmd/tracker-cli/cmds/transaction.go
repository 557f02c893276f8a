package cmds

import (
	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/tracker"
	"github.com/spf13/cobra"
)

func (c *Cmd) transactionsCmd() *cobra.Command {
	var opt struct {
		wallet string
		typ    string
		date   string
	}

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "list the active user's transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := core.ParseFilter(opt.wallet, opt.typ, opt.date)
			if err != nil {
				return err
			}

			page, err := c.Tracker.Transactions(cmd.Context(), filter)
			if err != nil {
				return err
			}

			return jsonPrint(cmd, page)
		},
	}

	cmd.Flags().StringVar(&opt.wallet, "wallet", "", "only this wallet")
	cmd.Flags().StringVar(&opt.typ, "type", "", "income or expense")
	cmd.Flags().StringVar(&opt.date, "date", "", "only this day (YYYY-MM-DD, local time)")
	return cmd
}

func (c *Cmd) txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "record transactions",
	}

	cmd.AddCommand(c.txCreateCmd())
	cmd.AddCommand(c.txShowCmd())
	return cmd
}

func (c *Cmd) txCreateCmd() *cobra.Command {
	var form tracker.TransactionForm

	cmd := &cobra.Command{
		Use:   "create",
		Short: "record an income or an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := c.Tracker.CreateTransaction(cmd.Context(), form)
			if err != nil {
				return err
			}

			return jsonPrint(cmd, tx)
		},
	}

	cmd.Flags().StringVar(&form.WalletID, "wallet", "", "wallet id")
	cmd.Flags().StringVar(&form.Type, "type", string(core.TransactionTypeIncome), "income or expense")
	cmd.Flags().StringVar(&form.Amount, "amount", "", "amount, greater than 0")
	cmd.Flags().StringVar(&form.Description, "description", "", "description")
	return cmd
}

func (c *Cmd) txShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "show one transaction with its wallet and full date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := c.Tracker.Transaction(cmd.Context(), core.ParseID(args[0]))
			if err != nil {
				return err
			}

			return jsonPrint(cmd, page)
		},
	}
}
