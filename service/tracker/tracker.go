package tracker

import (
	"context"
	"log/slog"

	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/session"
)

// Service is the application shell shared by the web and command line front
// ends. Each page or command maps to one method: it talks to the API, updates
// the session at most once and returns what the page needs.
type Service struct {
	session      *session.Session
	users        core.UserService
	wallets      core.WalletService
	transactions core.TransactionService
	logger       *slog.Logger
}

func New(
	session *session.Session,
	users core.UserService,
	wallets core.WalletService,
	transactions core.TransactionService,
	logger *slog.Logger,
) *Service {
	return &Service{
		session:      session,
		users:        users,
		wallets:      wallets,
		transactions: transactions,
		logger:       logger.With("service", "tracker"),
	}
}

// Start restores the saved session. A failed restore keeps the app usable
// without an active user.
func (s *Service) Start(ctx context.Context) (bool, error) {
	return s.session.Restore(ctx)
}

func (s *Service) Active() bool {
	return s.session.State() == session.Active
}

func (s *Service) Current() (*core.User, bool) {
	return s.session.Snapshot()
}

func (s *Service) SelectedWalletID() core.ID {
	return s.session.SelectedWalletID()
}

func (s *Service) Users(ctx context.Context) ([]core.UserSummary, error) {
	return s.users.List(ctx)
}

// CreateUser registers a user and switches to it. The current user stays
// active when the creation fails.
func (s *Service) CreateUser(ctx context.Context, name, email string) (*core.User, error) {
	user, err := s.users.Create(ctx, name, email)
	if err != nil {
		return nil, err
	}

	if err := s.switchTo(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SelectUser switches to an existing user.
func (s *Service) SelectUser(ctx context.Context, id core.ID) (*core.User, error) {
	if id.IsZero() {
		return nil, core.NewValidationError("user_id", "select a user")
	}

	user, err := s.users.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.switchTo(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}

func (s *Service) switchTo(ctx context.Context, user *core.User) error {
	if s.Active() {
		if err := s.session.Logout(ctx); err != nil {
			return err
		}
	}

	return s.session.Start(ctx, user)
}

func (s *Service) current() (*core.User, error) {
	user, ok := s.session.Snapshot()
	if !ok {
		return nil, core.NewValidationError("user", "create or select a user first")
	}

	return user, nil
}

// refresh reloads the active user after a mutation. The mutation already
// went through, so a failure here only leaves the snapshot stale.
func (s *Service) refresh(ctx context.Context) {
	if err := s.session.Refresh(ctx); err != nil {
		s.logger.Warn("session.Refresh", "err", err)
	}
}
