package core

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID          ID              `json:"id"`
	UserID      ID              `json:"user_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	// Transactions is only ever counted; wallet transactions are derived from
	// the global transaction list.
	Transactions []json.RawMessage `json:"transactions,omitempty"`
}

func (w Wallet) TransactionCount() int {
	return len(w.Transactions)
}

// Clone returns a copy that shares nothing with w.
func (w Wallet) Clone() Wallet {
	if w.Transactions != nil {
		txs := make([]json.RawMessage, len(w.Transactions))
		copy(txs, w.Transactions)
		w.Transactions = txs
	}

	return w
}

type WalletInput struct {
	UserID      ID              `json:"user_id"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
}

type WalletService interface {
	Create(ctx context.Context, input WalletInput) (*Wallet, error)
}
