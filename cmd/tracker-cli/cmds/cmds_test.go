package cmds

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/api"
	"github.com/pandodao/money-tracker/service/session"
	"github.com/pandodao/money-tracker/service/tracker"
	"github.com/pandodao/money-tracker/service/transaction"
	"github.com/pandodao/money-tracker/service/user"
	"github.com/pandodao/money-tracker/service/wallet"
	"github.com/pandodao/money-tracker/store/db"
	"github.com/pandodao/money-tracker/store/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userJSON = `{"success":true,"data":{"id":7,"name":"Ada Lovelace","email":"ada.lovelace@example.com",
		"total_balance":"60","wallets":[{"id":1,"name":"Cash","balance":"60"}]}}`
	transactionsJSON = `{"success":true,"data":[
		{"id":10,"wallet_id":1,"amount":"100","type":"income","created_at":"2024-03-01T09:00:00Z"},
		{"id":11,"wallet_id":1,"amount":"40","type":"EXPENSE","created_at":"2024-03-02T09:00:00Z"},
		{"id":12,"wallet_id":5,"amount":"7","type":"income","created_at":"2024-03-03T09:00:00Z"}]}`
)

type env struct {
	remote *httptest.Server
	db     *db.DB
}

func newEnv(t *testing.T) *env {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":7,"name":"Ada Lovelace","email":"ada.lovelace@example.com","wallets":[{"id":1}]}]`)
	})
	mux.HandleFunc("GET /users/7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, userJSON)
	})
	mux.HandleFunc("GET /transactions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, transactionsJSON)
	})

	remote := httptest.NewServer(mux)
	t.Cleanup(remote.Close)

	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &env{remote: remote, db: conn}
}

// run executes one command line against a fresh process state, sharing only
// the database with previous runs.
func (e *env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.New(api.Config{BaseURL: e.remote.URL}, logger)
	users := user.New(client)
	sess := session.New(users, property.New(e.db), logger)
	c := &Cmd{Tracker: tracker.New(sess, users, wallet.New(client), transaction.New(client), logger)}

	var out, errOut bytes.Buffer
	root := c.command()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func TestUsers(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":7,"name":"Ada Lovelace","email":"ada.lovelace@example.com","wallets":1}]`, out)
}

func TestSessionSurvivesInvocations(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "overview")
	assert.Error(t, err, "no active user yet")

	_, err = e.run(t, "user", "select", "7")
	require.NoError(t, err)

	out, err := e.run(t, "overview")
	require.NoError(t, err)

	var page struct {
		User    struct{ Name string }
		Summary struct {
			Count   int
			Income  string
			Expense string
			Net     string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, "Ada Lovelace", page.User.Name)
	assert.Equal(t, 2, page.Summary.Count)
	assert.Equal(t, "100", page.Summary.Income)
	assert.Equal(t, "40", page.Summary.Expense)
	assert.Equal(t, "60", page.Summary.Net)

	out, err = e.run(t, "transactions", "--type", "expense")
	require.NoError(t, err)
	assert.Contains(t, out, `"wallet_name": "Cash"`)
	assert.NotContains(t, out, `"id": 10`)

	out, err = e.run(t, "tx", "show", "11")
	require.NoError(t, err)
	assert.Contains(t, out, `"wallet_name": "Cash"`)
	assert.Contains(t, out, `"type": "expense"`)

	_, err = e.run(t, "tx", "show", "12")
	assert.ErrorIs(t, err, core.ErrTransactionNotFound)

	_, err = e.run(t, "logout")
	require.NoError(t, err)

	_, err = e.run(t, "wallets")
	assert.Error(t, err)
}

func TestTransactionsRejectsBadFilter(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "user", "select", "7")
	require.NoError(t, err)

	_, err = e.run(t, "transactions", "--date", "yesterday")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}
