package core

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ParseTransactionType accepts the two known types in any case.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return t, true
	default:
		return "", false
	}
}

type Transaction struct {
	ID       ID              `json:"id"`
	WalletID ID              `json:"wallet_id"`
	Amount   decimal.Decimal `json:"amount"`
	// Type is kept as sent by the server: it may be missing or differently
	// cased. Use Classify instead of reading it directly.
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// timestamp layouts accepted for created_at, tried in order. Layouts without
// a zone are read as local time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// parseTimestamp returns the zero time for anything it cannot read.
func parseTimestamp(b []byte) time.Time {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return time.Time{}
	}

	if b[0] != '"' {
		// epoch milliseconds
		if ms, err := strconv.ParseInt(string(b), 10, 64); err == nil {
			return time.UnixMilli(ms)
		}
		return time.Time{}
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}
	}

	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}

	return time.Time{}
}

func (tx *Transaction) UnmarshalJSON(b []byte) error {
	type plain Transaction
	var v struct {
		plain
		CreatedAt json.RawMessage `json:"created_at"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*tx = Transaction(v.plain)
	tx.CreatedAt = parseTimestamp(v.CreatedAt)
	return nil
}

type Classification struct {
	Type      TransactionType `json:"type"`
	Magnitude decimal.Decimal `json:"magnitude"`
}

func (c Classification) IsIncome() bool {
	return c.Type == TransactionTypeIncome
}

// Classify resolves a transaction into income or expense. A negative amount
// always wins, then an "expense" type, and everything else is income.
func Classify(tx Transaction) Classification {
	switch {
	case tx.Amount.IsNegative():
		return Classification{Type: TransactionTypeExpense, Magnitude: tx.Amount.Abs()}
	case strings.EqualFold(strings.TrimSpace(tx.Type), string(TransactionTypeExpense)):
		return Classification{Type: TransactionTypeExpense, Magnitude: tx.Amount}
	default:
		return Classification{Type: TransactionTypeIncome, Magnitude: tx.Amount}
	}
}

type TransactionInput struct {
	WalletID    ID              `json:"wallet_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
}

// MarshalJSON sends the amount as a JSON number rather than a quoted decimal.
func (in TransactionInput) MarshalJSON() ([]byte, error) {
	type input TransactionInput
	return json.Marshal(struct {
		input
		Amount json.Number `json:"amount"`
	}{input: input(in), Amount: json.Number(in.Amount.String())})
}

type TransactionService interface {
	// List returns every transaction the API knows about, across all users.
	List(ctx context.Context) ([]Transaction, error)
	Create(ctx context.Context, input TransactionInput) (*Transaction, error)
}
