package transaction

import (
	"context"
	"slices"
	"strings"

	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/api"
	"golang.org/x/sync/singleflight"
)

func New(client *api.Client) core.TransactionService {
	return &service{client: client}
}

type service struct {
	client *api.Client
	sf     singleflight.Group
}

// List collapses concurrent calls into one request. Nothing is kept once the
// request returns, and each caller gets its own copy. The shared request is
// detached from any one caller, so a caller giving up only ends its own wait.
func (s *service) List(ctx context.Context) ([]core.Transaction, error) {
	ch := s.sf.DoChan("list", func() (any, error) {
		var txs []core.Transaction
		if err := s.client.Get(context.WithoutCancel(ctx), "/transactions", &txs); err != nil {
			return nil, err
		}

		return txs, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, &core.NetworkError{Op: "GET /transactions", Err: ctx.Err()}
	case res = <-ch:
	}

	if res.Err != nil {
		return nil, res.Err
	}

	txs := slices.Clone(res.Val.([]core.Transaction))
	if txs == nil {
		txs = []core.Transaction{}
	}

	return txs, nil
}

func (s *service) Create(ctx context.Context, input core.TransactionInput) (*core.Transaction, error) {
	if input.WalletID.IsZero() {
		return nil, core.NewValidationError("wallet_id", "wallet is required")
	}

	if !input.Amount.IsPositive() {
		return nil, core.NewValidationError("amount", "amount must be greater than zero")
	}

	if _, ok := core.ParseTransactionType(string(input.Type)); !ok {
		return nil, core.NewValidationError("type", "type must be income or expense")
	}

	input.Description = strings.TrimSpace(input.Description)

	var tx core.Transaction
	if err := s.client.Post(ctx, "/transactions", input, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}
