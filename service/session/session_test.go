package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/pandodao/money-tracker/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[core.ID]*core.User
	err   error
	finds int
}

func (f *fakeUsers) List(ctx context.Context) ([]core.UserSummary, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsers) Create(ctx context.Context, name, email string) (*core.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsers) Find(ctx context.Context, id core.ID) (*core.User, error) {
	f.finds++
	if f.err != nil {
		return nil, f.err
	}

	u, ok := f.users[id]
	if !ok {
		return nil, &core.APIError{StatusCode: 404, Message: "user not found"}
	}

	return u.Clone(), nil
}

type fakeProperties struct {
	mux    sync.Mutex
	values map[string][]byte
	sets   int
}

func (f *fakeProperties) Get(ctx context.Context, key string, value any) error {
	f.mux.Lock()
	defer f.mux.Unlock()

	if b, ok := f.values[key]; ok {
		return json.Unmarshal(b, value)
	}

	return nil
}

func (f *fakeProperties) Set(ctx context.Context, key string, value any) error {
	f.mux.Lock()
	defer f.mux.Unlock()

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	f.sets++
	f.values[key] = b
	return nil
}

func (f *fakeProperties) Delete(ctx context.Context, key string) error {
	f.mux.Lock()
	defer f.mux.Unlock()

	delete(f.values, key)
	return nil
}

func ada() *core.User {
	return &core.User{
		ID:    "7",
		Name:  "Ada Lovelace",
		Email: "ada.lovelace@example.com",
		Wallets: []core.Wallet{
			{ID: "1", Name: "Cash", Balance: decimal.NewFromInt(100)},
			{ID: "2", Name: "Bank", Balance: decimal.NewFromInt(250)},
		},
		TotalBalance: decimal.NewFromInt(350),
	}
}

func newSession(users *fakeUsers) (*Session, *fakeProperties) {
	props := &fakeProperties{values: map[string][]byte{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(users, props, logger), props
}

func TestLoginFailureKeepsAnonymous(t *testing.T) {
	users := &fakeUsers{err: &core.NetworkError{Op: "GET /users/7", Err: errors.New("connection refused")}}
	s, props := newSession(users)

	err := s.Login(t.Context(), "7")
	assert.True(t, core.IsNetworkError(err))

	assert.Equal(t, Anonymous, s.State())
	_, ok := s.Snapshot()
	assert.False(t, ok)
	assert.Zero(t, props.sets)
	assert.Empty(t, props.values)
}

func TestLoginPersistsKey(t *testing.T) {
	s, props := newSession(&fakeUsers{users: map[core.ID]*core.User{"7": ada()}})

	require.NoError(t, s.Login(t.Context(), "7"))
	assert.Equal(t, Active, s.State())
	assert.JSONEq(t, `7`, string(props.values[propertyUserID]))

	assert.ErrorIs(t, s.Login(t.Context(), "7"), core.ErrSessionActive)
	assert.ErrorIs(t, s.Start(t.Context(), ada()), core.ErrSessionActive)
}

func TestRestore(t *testing.T) {
	users := &fakeUsers{users: map[core.ID]*core.User{"7": ada()}}

	t.Run("no saved key", func(t *testing.T) {
		s, _ := newSession(users)
		ok, err := s.Restore(t.Context())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("saved key", func(t *testing.T) {
		s, props := newSession(users)
		props.values[propertyUserID] = []byte(`"7"`)

		ok, err := s.Restore(t.Context())
		require.NoError(t, err)
		assert.True(t, ok)

		u, _ := s.Snapshot()
		assert.Equal(t, "Ada Lovelace", u.Name)
	})

	t.Run("fetch fails", func(t *testing.T) {
		failing := &fakeUsers{err: &core.NetworkError{Op: "GET", Err: errors.New("down")}}
		s, props := newSession(failing)
		props.values[propertyUserID] = []byte(`7`)

		ok, err := s.Restore(t.Context())
		assert.Error(t, err)
		assert.False(t, ok)
		assert.Equal(t, Anonymous, s.State())
		assert.Equal(t, []byte(`7`), props.values[propertyUserID])
	})
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	users := &fakeUsers{users: map[core.ID]*core.User{"7": ada()}}
	s, _ := newSession(users)
	require.NoError(t, s.Start(t.Context(), ada()))

	updated := ada()
	updated.Wallets = updated.Wallets[:1]
	updated.TotalBalance = decimal.NewFromInt(100)
	users.users["7"] = updated

	require.NoError(t, s.Refresh(t.Context()))
	u, _ := s.Snapshot()
	assert.Len(t, u.Wallets, 1)
	assert.Equal(t, "100", u.TotalBalance.String())

	users.err = errors.New("boom")
	assert.Error(t, s.Refresh(t.Context()))
	u, _ = s.Snapshot()
	assert.Len(t, u.Wallets, 1)
}

func TestRefreshAnonymous(t *testing.T) {
	users := &fakeUsers{}
	s, _ := newSession(users)

	assert.True(t, core.IsValidationError(s.Refresh(t.Context())))
	assert.Zero(t, users.finds)
}

func TestSnapshotIsCopy(t *testing.T) {
	s, _ := newSession(&fakeUsers{})
	require.NoError(t, s.Start(t.Context(), ada()))

	u, _ := s.Snapshot()
	u.Name = "changed"
	u.Wallets[0].Name = "changed"

	again, _ := s.Snapshot()
	assert.Equal(t, "Ada Lovelace", again.Name)
	assert.Equal(t, "Cash", again.Wallets[0].Name)
}

func TestWalletSelection(t *testing.T) {
	s, _ := newSession(&fakeUsers{})

	_, err := s.SelectWallet("1")
	assert.True(t, core.IsValidationError(err))
	assert.NotErrorIs(t, err, core.ErrWalletNotFound)

	require.NoError(t, s.Start(t.Context(), ada()))

	w, err := s.SelectWallet(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, "Bank", w.Name)
	assert.Equal(t, core.ID("2"), s.SelectedWalletID())

	_, err = s.SelectWallet("9")
	assert.ErrorIs(t, err, core.ErrWalletNotFound)
	assert.True(t, core.IsValidationError(err))
	assert.Equal(t, core.ID("2"), s.SelectedWalletID())

	s.ClearWallet()
	assert.True(t, s.SelectedWalletID().IsZero())
}

func TestLogout(t *testing.T) {
	s, props := newSession(&fakeUsers{})
	require.NoError(t, s.Start(t.Context(), ada()))
	_, err := s.SelectWallet("1")
	require.NoError(t, err)

	require.NoError(t, s.Logout(t.Context()))

	assert.Equal(t, Anonymous, s.State())
	assert.True(t, s.SelectedWalletID().IsZero())
	assert.NotContains(t, props.values, propertyUserID)
}
