package wallet

import (
	"context"
	"strings"

	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/api"
)

func New(client *api.Client) core.WalletService {
	return &service{client: client}
}

type service struct {
	client *api.Client
}

func (s *service) Create(ctx context.Context, input core.WalletInput) (*core.Wallet, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, core.NewValidationError("name", "wallet name is required")
	}

	if input.UserID.IsZero() {
		return nil, core.NewValidationError("user_id", "no active user")
	}

	if input.Balance.IsNegative() {
		return nil, core.NewValidationError("balance", "initial balance must not be negative")
	}

	if input.Description = strings.TrimSpace(input.Description); input.Description == "" {
		input.Description = input.Name + " wallet"
	}

	var w core.Wallet
	if err := s.client.Post(ctx, "/wallets", input, &w); err != nil {
		return nil, err
	}

	return &w, nil
}
