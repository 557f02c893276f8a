package tracker

import (
	"context"
	"strings"

	"github.com/pandodao/money-tracker/core"
	"github.com/shopspring/decimal"
)

// WalletForm carries the raw values of the wallet creation form.
type WalletForm struct {
	Name        string
	Balance     string
	Description string
}

// TransactionForm carries the raw values of the transaction form. An empty
// WalletID falls back to the selected wallet.
type TransactionForm struct {
	WalletID    string
	Type        string
	Amount      string
	Description string
}

func (s *Service) CreateWallet(ctx context.Context, form WalletForm) (*core.Wallet, error) {
	user, err := s.current()
	if err != nil {
		return nil, err
	}

	input := core.WalletInput{
		UserID:      user.ID,
		Name:        strings.TrimSpace(form.Name),
		Description: form.Description,
	}

	if input.Name == "" {
		return nil, core.NewValidationError("name", "wallet name is required")
	}

	if raw := strings.TrimSpace(form.Balance); raw != "" {
		balance, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, core.NewValidationError("balance", "initial balance must be a number")
		}
		input.Balance = balance
	}

	wallet, err := s.wallets.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.refresh(ctx)
	return wallet, nil
}

func (s *Service) CreateTransaction(ctx context.Context, form TransactionForm) (*core.Transaction, error) {
	if _, err := s.current(); err != nil {
		return nil, err
	}

	input, err := s.parseTransaction(form)
	if err != nil {
		return nil, err
	}

	tx, err := s.transactions.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.refresh(ctx)
	return tx, nil
}

func (s *Service) parseTransaction(form TransactionForm) (core.TransactionInput, error) {
	walletID := core.ParseID(form.WalletID)
	if walletID.IsZero() {
		walletID = s.session.SelectedWalletID()
	}

	if walletID.IsZero() {
		return core.TransactionInput{}, core.NewValidationError("wallet_id", "please select a wallet")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil || !amount.IsPositive() {
		return core.TransactionInput{}, core.NewValidationError("amount", "please enter a valid amount greater than 0")
	}

	typ, ok := core.ParseTransactionType(form.Type)
	if !ok {
		return core.TransactionInput{}, core.NewValidationError("type", "type must be income or expense")
	}

	return core.TransactionInput{
		WalletID:    walletID,
		Amount:      amount,
		Type:        typ,
		Description: strings.TrimSpace(form.Description),
	}, nil
}
