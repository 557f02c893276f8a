package transaction

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, h http.HandlerFunc) core.TransactionService {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(api.New(api.Config{BaseURL: srv.URL}, slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestList(t *testing.T) {
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true,"data":[
			{"id":1,"wallet_id":1,"amount":"50.00","type":"income","created_at":"2024-03-01T10:00:00Z"},
			{"id":2,"wallet_id":1,"amount":-20,"created_at":"2024-03-02T10:00:00Z"}
		]}`)
	})

	txs, err := s.List(t.Context())
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, core.TransactionTypeExpense, core.Classify(txs[1]).Type)
}

func TestListEachCallerOwnsResult(t *testing.T) {
	var hits atomic.Int32
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, `[{"id":1,"wallet_id":1,"amount":"5"}]`)
	})

	var wg sync.WaitGroup
	results := make([][]core.Transaction, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			txs, err := s.List(t.Context())
			assert.NoError(t, err)
			results[i] = txs
		}(i)
	}
	wg.Wait()

	results[0][0].Description = "changed"
	for _, txs := range results[1:] {
		require.Len(t, txs, 1)
		assert.Empty(t, txs[0].Description)
	}
	assert.LessOrEqual(t, hits.Load(), int32(len(results)))

	// nothing is cached between calls
	before := hits.Load()
	_, err := s.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before+1, hits.Load())
}

func TestListCancelledCallerDoesNotFailOthers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var hits atomic.Int32
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		_, _ = io.WriteString(w, `[{"id":1,"wallet_id":1,"amount":"5"}]`)
	})

	ctxA, cancelA := context.WithCancel(t.Context())
	errA := make(chan error, 1)
	go func() {
		_, err := s.List(ctxA)
		errA <- err
	}()
	<-started

	type result struct {
		txs []core.Transaction
		err error
	}
	resB := make(chan result, 1)
	go func() {
		txs, err := s.List(t.Context())
		resB <- result{txs, err}
	}()

	cancelA()
	err := <-errA
	assert.True(t, core.IsNetworkError(err))
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	b := <-resB
	require.NoError(t, b.err)
	assert.Len(t, b.txs, 1)
}

func TestCreate(t *testing.T) {
	var body map[string]any
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":10,"wallet_id":2,"amount":"12.5","type":"expense"}}`)
	})

	tx, err := s.Create(t.Context(), core.TransactionInput{
		WalletID:    "2",
		Amount:      decimal.RequireFromString("12.5"),
		Type:        core.TransactionTypeExpense,
		Description: " lunch ",
	})
	require.NoError(t, err)

	assert.Equal(t, core.ID("10"), tx.ID)
	assert.Equal(t, "expense", body["type"])
	assert.Equal(t, "lunch", body["description"])
	assert.Equal(t, 12.5, body["amount"])
}

func TestCreateSendsAmountAsNumber(t *testing.T) {
	var raw []byte
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{"id":11,"wallet_id":1,"amount":"0.10","type":"income"}`)
	})

	_, err := s.Create(t.Context(), core.TransactionInput{
		WalletID: "1",
		Amount:   decimal.RequireFromString("0.10"),
		Type:     core.TransactionTypeIncome,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallet_id":1,"amount":0.1,"type":"income","description":""}`, string(raw))
}

func TestCreateValidation(t *testing.T) {
	var hits atomic.Int32
	s := newService(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	tests := []struct {
		name  string
		input core.TransactionInput
	}{
		{"no wallet", core.TransactionInput{Amount: decimal.NewFromInt(1), Type: core.TransactionTypeIncome}},
		{"zero amount", core.TransactionInput{WalletID: "1", Type: core.TransactionTypeIncome}},
		{"negative amount", core.TransactionInput{WalletID: "1", Amount: decimal.NewFromInt(-3), Type: core.TransactionTypeIncome}},
		{"bad type", core.TransactionInput{WalletID: "1", Amount: decimal.NewFromInt(3), Type: "transfer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(t.Context(), tt.input)
			assert.True(t, core.IsValidationError(err))
		})
	}

	assert.Zero(t, hits.Load())
}
