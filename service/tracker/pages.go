package tracker

import (
	"cmp"
	"context"
	"slices"

	"github.com/pandodao/generic"
	"github.com/pandodao/money-tracker/core"
	"github.com/zyedidia/generic/mapset"
)

const recentLimit = 5

// TransactionRow is a transaction with everything a table row shows.
type TransactionRow struct {
	core.Transaction
	Classification core.Classification `json:"classification"`
	WalletName     string              `json:"wallet_name"`
}

type OverviewPage struct {
	User    *core.User       `json:"user"`
	Summary core.Summary     `json:"summary"`
	Recent  []TransactionRow `json:"recent"`
	// StatsUnavailable is set when the transaction list could not be loaded.
	StatsUnavailable bool `json:"stats_unavailable,omitempty"`
}

type WalletsPage struct {
	User       *core.User `json:"user"`
	SelectedID core.ID    `json:"selected_id,omitempty"`
}

type WalletDetailPage struct {
	User         *core.User       `json:"user"`
	Wallet       core.Wallet      `json:"wallet"`
	Transactions []TransactionRow `json:"transactions"`
	Summary      core.Summary     `json:"summary"`
	Unavailable  bool             `json:"unavailable,omitempty"`
}

type TransactionsPage struct {
	User         *core.User       `json:"user"`
	Filter       core.Filter      `json:"filter"`
	Transactions []TransactionRow `json:"transactions"`
	Summary      core.Summary     `json:"summary"`
}

type TransactionDetailPage struct {
	User        *core.User     `json:"user"`
	Transaction TransactionRow `json:"transaction"`
}

func (s *Service) Overview(ctx context.Context) (*OverviewPage, error) {
	user, err := s.current()
	if err != nil {
		return nil, err
	}

	page := &OverviewPage{User: user, Recent: []TransactionRow{}}

	txs, err := s.userTransactions(ctx, user)
	if err != nil {
		s.logger.Error("transactions.List", "err", err)
		page.StatsUnavailable = true
		return page, nil
	}

	page.Summary = core.Aggregate(txs)
	page.Recent = rows(user, newestFirst(txs)[:min(len(txs), recentLimit)])
	return page, nil
}

func (s *Service) Wallets(ctx context.Context) (*WalletsPage, error) {
	user, err := s.current()
	if err != nil {
		return nil, err
	}

	return &WalletsPage{User: user, SelectedID: s.session.SelectedWalletID()}, nil
}

// WalletDetail selects the wallet and loads its transactions from the global
// list. A failed list degrades to an empty table.
func (s *Service) WalletDetail(ctx context.Context, id core.ID) (*WalletDetailPage, error) {
	user, err := s.current()
	if err != nil {
		return nil, err
	}

	wallet, err := s.session.SelectWallet(id)
	if err != nil {
		return nil, err
	}

	page := &WalletDetailPage{
		User:         user,
		Wallet:       wallet,
		Transactions: []TransactionRow{},
	}

	all, err := s.transactions.List(ctx)
	if err != nil {
		s.logger.Error("transactions.List", "wallet", wallet.ID, "err", err)
		page.Unavailable = true
		return page, nil
	}

	txs := core.ApplyFilters(all, core.Filter{WalletID: wallet.ID})
	page.Transactions = rows(user, txs)
	page.Summary = core.Aggregate(txs)
	return page, nil
}

func (s *Service) CloseWallet() {
	s.session.ClearWallet()
}

// Transactions lists the active user's transactions, newest first. The
// summary covers exactly the filtered rows.
func (s *Service) Transactions(ctx context.Context, filter core.Filter) (*TransactionsPage, error) {
	user, err := s.current()
	if err != nil {
		return nil, err
	}

	txs, err := s.userTransactions(ctx, user)
	if err != nil {
		return nil, err
	}

	txs = core.ApplyFilters(newestFirst(txs), filter)

	return &TransactionsPage{
		User:         user,
		Filter:       filter,
		Transactions: rows(user, txs),
		Summary:      core.Aggregate(txs),
	}, nil
}

// Transaction looks up one of the active user's transactions. Transactions of
// other users are not found.
func (s *Service) Transaction(ctx context.Context, id core.ID) (*TransactionDetailPage, error) {
	user, err := s.current()
	if err != nil {
		return nil, err
	}

	if id.IsZero() {
		return nil, core.NewValidationError("id", "transaction id is required")
	}

	txs, err := s.userTransactions(ctx, user)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(txs, func(tx core.Transaction) bool {
		return tx.ID.Equal(id)
	})
	if i < 0 {
		return nil, core.ErrTransactionNotFound
	}

	return &TransactionDetailPage{
		User:        user,
		Transaction: rows(user, txs[i:i+1])[0],
	}, nil
}

// userTransactions narrows the global list to the user's wallets.
func (s *Service) userTransactions(ctx context.Context, user *core.User) ([]core.Transaction, error) {
	all, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := mapset.New[string]()
	for _, id := range user.WalletIDs() {
		ids.Put(id.Key())
	}

	txs := make([]core.Transaction, 0, len(all))
	for _, tx := range all {
		if ids.Has(tx.WalletID.Key()) {
			txs = append(txs, tx)
		}
	}

	return txs, nil
}

func newestFirst(txs []core.Transaction) []core.Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b core.Transaction) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return sorted
}

func rows(user *core.User, txs []core.Transaction) []TransactionRow {
	return generic.MapSlice(txs, func(tx core.Transaction) TransactionRow {
		row := TransactionRow{
			Transaction:    tx,
			Classification: core.Classify(tx),
			WalletName:     "Wallet",
		}

		if w, ok := user.Wallet(tx.WalletID); ok {
			row.WalletName = w.Name
		}

		return row
	})
}
