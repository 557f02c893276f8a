package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pandodao/money-tracker/handler/view"
)

const (
	noticeUserCreated        = "user-created"
	noticeUserSelected       = "user-selected"
	noticeLoggedOut          = "logged-out"
	noticeWalletCreated      = "wallet-created"
	noticeTransactionCreated = "transaction-created"
)

var notices = map[string]string{
	noticeUserCreated:        "User created successfully!",
	noticeUserSelected:       "Welcome back!",
	noticeLoggedOut:          "You have been logged out.",
	noticeWalletCreated:      "Wallet created successfully!",
	noticeTransactionCreated: "Transaction added successfully!",
}

// noticeFrom turns the notice code of a redirect back into a notification.
// Unknown codes are ignored so nothing from the query is echoed.
func noticeFrom(r *http.Request) *view.Notification {
	msg, ok := notices[r.URL.Query().Get("notice")]
	if !ok {
		return nil
	}

	return view.Success(msg)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func trigger(w http.ResponseWriter, n *view.Notification) {
	b, err := json.Marshal(map[string]any{"show-notification": n})
	if err != nil {
		return
	}

	w.Header().Set("HX-Trigger", string(b))
}

// localTarget keeps redirects on this site.
func localTarget(next, fallback string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}

	u, err := url.Parse(next)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return fallback
	}

	return u.RequestURI()
}
