package cmds

import (
	"github.com/pandodao/generic"
	"github.com/pandodao/money-tracker/core"
	"github.com/spf13/cobra"
)

type userItem struct {
	ID      core.ID `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Wallets int     `json:"wallets"`
}

func userItemFromSummary(u core.UserSummary) userItem {
	return userItem{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Wallets: u.WalletCount(),
	}
}

func (c *Cmd) usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "list all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.Tracker.Users(cmd.Context())
			if err != nil {
				return err
			}

			return jsonPrint(cmd, generic.MapSlice(users, userItemFromSummary))
		},
	}
}

func (c *Cmd) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "create or select the active user",
	}

	cmd.AddCommand(c.userCreateCmd())
	cmd.AddCommand(c.userSelectCmd())
	return cmd
}

func (c *Cmd) userCreateCmd() *cobra.Command {
	var opt struct {
		name  string
		email string
	}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a user and make it active",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.Tracker.CreateUser(cmd.Context(), opt.name, opt.email)
			if err != nil {
				return err
			}

			return jsonPrint(cmd, user)
		},
	}

	cmd.Flags().StringVar(&opt.name, "name", "", "full name")
	cmd.Flags().StringVar(&opt.email, "email", "", "email, derived from the name when empty")
	return cmd
}

func (c *Cmd) userSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <user_id>",
		Short: "make an existing user active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.Tracker.SelectUser(cmd.Context(), core.ParseID(args[0]))
			if err != nil {
				return err
			}

			return jsonPrint(cmd, user)
		},
	}
}

func (c *Cmd) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "forget the active user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Tracker.Logout(cmd.Context())
		},
	}
}
