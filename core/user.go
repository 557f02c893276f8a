package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           ID              `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	CreatedAt    time.Time       `json:"created_at"`
	Wallets      []Wallet        `json:"wallets"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var v struct {
		plain
		CreatedAt json.RawMessage `json:"created_at"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*u = User(v.plain)
	u.CreatedAt = parseTimestamp(v.CreatedAt)
	return nil
}

// Wallet looks up one of the user's wallets by loose id comparison.
func (u *User) Wallet(id ID) (Wallet, bool) {
	for _, w := range u.Wallets {
		if w.ID.Equal(id) {
			return w, true
		}
	}

	return Wallet{}, false
}

func (u *User) WalletIDs() []ID {
	ids := make([]ID, 0, len(u.Wallets))
	for _, w := range u.Wallets {
		ids = append(ids, w.ID)
	}

	return ids
}

// Clone returns a deep copy, so readers can never reach the session's own
// snapshot.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	c := *u
	c.Wallets = make([]Wallet, len(u.Wallets))
	for i, w := range u.Wallets {
		c.Wallets[i] = w.Clone()
	}

	return &c
}

// UserSummary is the list form returned by the users index.
type UserSummary struct {
	ID      ID       `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Wallets []Wallet `json:"wallets,omitempty"`
}

func (u UserSummary) WalletCount() int {
	return len(u.Wallets)
}

type UserService interface {
	List(ctx context.Context) ([]UserSummary, error)
	// Create registers a user; an empty email is derived from the name.
	Create(ctx context.Context, name, email string) (*User, error)
	Find(ctx context.Context, id ID) (*User, error)
}
