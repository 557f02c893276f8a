package refresher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingUsers struct {
	finds atomic.Int32
	fail  atomic.Bool
}

func (u *countingUsers) List(ctx context.Context) ([]core.UserSummary, error) {
	return nil, nil
}

func (u *countingUsers) Create(ctx context.Context, name, email string) (*core.User, error) {
	return nil, errors.New("not implemented")
}

func (u *countingUsers) Find(ctx context.Context, id core.ID) (*core.User, error) {
	n := u.finds.Add(1)
	if u.fail.Load() {
		return nil, &core.NetworkError{Op: "GET", Err: errors.New("down")}
	}
	return &core.User{ID: id, Name: "refresh " + string(rune('0'+n%10))}, nil
}

type nopProperties struct{}

func (nopProperties) Get(ctx context.Context, key string, value any) error { return nil }
func (nopProperties) Set(ctx context.Context, key string, value any) error {
	_, err := json.Marshal(value)
	return err
}
func (nopProperties) Delete(ctx context.Context, key string) error { return nil }

func TestRefresherDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := New(session.New(&countingUsers{}, nopProperties{}, logger), logger, Config{})

	assert.NoError(t, w.Run(t.Context()))
}

func TestRefresherRefreshesActiveUser(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := &countingUsers{}
	sess := session.New(users, nopProperties{}, logger)
	w := New(sess, logger, Config{Interval: 5 * time.Millisecond})

	// anonymous sessions are left alone
	require.NoError(t, w.run(t.Context()))
	assert.Zero(t, users.finds.Load())

	require.NoError(t, sess.Start(t.Context(), &core.User{ID: "7", Name: "Ada"}))

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Run(ctx), context.DeadlineExceeded)
	assert.Positive(t, users.finds.Load())

	users.fail.Store(true)
	before, _ := sess.Snapshot()
	assert.Error(t, w.run(t.Context()))
	after, _ := sess.Snapshot()
	assert.Equal(t, before.Name, after.Name)
}
