package core

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Filter struct {
	WalletID ID              `json:"wallet_id,omitempty"`
	Type     TransactionType `json:"type,omitempty"`
	// Date is a calendar date (2006-01-02) matched against created_at in
	// Location, or local time when Location is nil.
	Date     string         `json:"date,omitempty"`
	Location *time.Location `json:"-"`
}

// ParseFilter builds a filter from raw form or flag values. Blank values
// leave the corresponding constraint off.
func ParseFilter(walletID, typ, date string) (Filter, error) {
	f := Filter{WalletID: ParseID(walletID)}

	if typ = strings.TrimSpace(typ); typ != "" {
		t, ok := ParseTransactionType(typ)
		if !ok {
			return Filter{}, NewValidationError("type", "type must be income or expense")
		}
		f.Type = t
	}

	if date = strings.TrimSpace(date); date != "" {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return Filter{}, NewValidationError("date", "date must be formatted as YYYY-MM-DD")
		}
		f.Date = date
	}

	return f, nil
}

func (f Filter) IsEmpty() bool {
	return f.WalletID.IsZero() && f.Type == "" && f.Date == ""
}

func (f Filter) Match(tx Transaction) bool {
	if !f.WalletID.IsZero() && !tx.WalletID.Equal(f.WalletID) {
		return false
	}

	if f.Type != "" && Classify(tx).Type != f.Type {
		return false
	}

	if f.Date != "" {
		loc := f.Location
		if loc == nil {
			loc = time.Local
		}

		if tx.CreatedAt.In(loc).Format(DateLayout) != f.Date {
			return false
		}
	}

	return true
}

// ApplyFilters returns the matching transactions in their original order.
// The source slice is never modified.
func ApplyFilters(txs []Transaction, f Filter) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}

	return out
}
