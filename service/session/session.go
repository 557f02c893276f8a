package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pandodao/money-tracker/core"
)

const propertyUserID = "session_user_id"

type State int

const (
	Anonymous State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}

	return "anonymous"
}

// Session holds the active user snapshot and the selected wallet. Only the
// active user id survives a restart.
type Session struct {
	users      core.UserService
	properties core.PropertyStore
	logger     *slog.Logger

	// wmux serializes transitions, mux guards the fields below it.
	wmux     sync.Mutex
	mux      sync.RWMutex
	user     *core.User
	walletID core.ID
}

func New(
	users core.UserService,
	properties core.PropertyStore,
	logger *slog.Logger,
) *Session {
	return &Session{
		users:      users,
		properties: properties,
		logger:     logger.With("service", "session"),
	}
}

func (s *Session) State() State {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if s.user == nil {
		return Anonymous
	}

	return Active
}

// Snapshot returns a copy of the active user.
func (s *Session) Snapshot() (*core.User, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if s.user == nil {
		return nil, false
	}

	return s.user.Clone(), true
}

func (s *Session) SelectedWalletID() core.ID {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return s.walletID
}

// Restore activates the user saved by a previous run, if any. It reports
// whether a user is active afterwards.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	s.wmux.Lock()
	defer s.wmux.Unlock()

	if s.State() == Active {
		return true, nil
	}

	var id core.ID
	if err := s.properties.Get(ctx, propertyUserID, &id); err != nil {
		s.logger.Error("properties.Get", "err", err)
		return false, fmt.Errorf("read session: %w", err)
	}

	if id.IsZero() {
		return false, nil
	}

	user, err := s.users.Find(ctx, id)
	if err != nil {
		s.logger.Error("users.Find", "user", id, "err", err)
		return false, err
	}

	s.set(user)
	s.logger.Info("session restored", "user", user.ID)
	return true, nil
}

// Login fetches the user and makes it active.
func (s *Session) Login(ctx context.Context, id core.ID) error {
	s.wmux.Lock()
	defer s.wmux.Unlock()

	if s.State() == Active {
		return core.ErrSessionActive
	}

	if id.IsZero() {
		return core.NewValidationError("user_id", "user id is required")
	}

	user, err := s.users.Find(ctx, id)
	if err != nil {
		s.logger.Error("users.Find", "user", id, "err", err)
		return err
	}

	return s.activate(ctx, user)
}

// Start makes an already fetched user active, typically the response of a
// user creation.
func (s *Session) Start(ctx context.Context, user *core.User) error {
	s.wmux.Lock()
	defer s.wmux.Unlock()

	if s.State() == Active {
		return core.ErrSessionActive
	}

	if user == nil || user.ID.IsZero() {
		return core.NewValidationError("user_id", "user id is required")
	}

	return s.activate(ctx, user.Clone())
}

// Refresh replaces the active user with a fresh copy from the API.
func (s *Session) Refresh(ctx context.Context) error {
	s.wmux.Lock()
	defer s.wmux.Unlock()

	s.mux.RLock()
	var id core.ID
	if s.user != nil {
		id = s.user.ID
	}
	s.mux.RUnlock()

	if id.IsZero() {
		return core.NewValidationError("user", "no active user")
	}

	user, err := s.users.Find(ctx, id)
	if err != nil {
		s.logger.Error("users.Find", "user", id, "err", err)
		return err
	}

	s.mux.Lock()
	s.user = user
	s.mux.Unlock()

	return nil
}

// Logout always clears the in-memory session; the returned error only
// reports a failure to remove the saved key.
func (s *Session) Logout(ctx context.Context) error {
	s.wmux.Lock()
	defer s.wmux.Unlock()

	s.mux.Lock()
	s.user = nil
	s.walletID = ""
	s.mux.Unlock()

	if err := s.properties.Delete(ctx, propertyUserID); err != nil {
		s.logger.Error("properties.Delete", "err", err)
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// SelectWallet marks one of the active user's wallets as selected.
func (s *Session) SelectWallet(id core.ID) (core.Wallet, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.user == nil {
		return core.Wallet{}, core.NewValidationError("user", "no active user")
	}

	w, ok := s.user.Wallet(id)
	if !ok {
		return core.Wallet{}, core.ErrWalletNotFound
	}

	s.walletID = w.ID
	return w.Clone(), nil
}

func (s *Session) ClearWallet() {
	s.mux.Lock()
	s.walletID = ""
	s.mux.Unlock()
}

func (s *Session) activate(ctx context.Context, user *core.User) error {
	if err := s.properties.Set(ctx, propertyUserID, user.ID); err != nil {
		s.logger.Error("properties.Set", "err", err)
		return fmt.Errorf("save session: %w", err)
	}

	s.set(user)
	s.logger.Info("session started", "user", user.ID)
	return nil
}

func (s *Session) set(user *core.User) {
	s.mux.Lock()
	s.user = user
	s.walletID = ""
	s.mux.Unlock()
}
