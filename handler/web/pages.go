package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/handler/view"
)

func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	s.renderOverview(w, r, http.StatusOK, noticeFrom(r))
}

func (s *Server) wallets(w http.ResponseWriter, r *http.Request) {
	s.renderWallets(w, r, http.StatusOK, noticeFrom(r))
}

func (s *Server) wallet(w http.ResponseWriter, r *http.Request) {
	s.renderWallet(w, r, core.ParseID(chi.URLParam(r, "id")), http.StatusOK, noticeFrom(r))
}

func (s *Server) transactions(w http.ResponseWriter, r *http.Request) {
	s.renderTransactions(w, r, r.URL.Query(), http.StatusOK, noticeFrom(r))
}

func (s *Server) transaction(w http.ResponseWriter, r *http.Request) {
	if s.anonymous(w, r) {
		return
	}

	page, err := s.tracker.Transaction(r.Context(), core.ParseID(chi.URLParam(r, "id")))
	if err != nil {
		status := statusFor(err)
		if errors.Is(err, core.ErrTransactionNotFound) {
			status = http.StatusNotFound
		}
		s.renderTransactions(w, r, url.Values{}, status, view.NotificationFor(err))
		return
	}

	s.render(w, http.StatusOK, view.PageTransaction, view.Page{
		Title: "Transaction",
		Nav:   view.PageTransactions,
		User:  page.User,
		Data:  page,
	})
}

func (s *Server) users(w http.ResponseWriter, r *http.Request) {
	s.renderUsers(w, r, http.StatusOK, noticeFrom(r))
}

// anonymous sends requests without an active user to the user chooser.
func (s *Server) anonymous(w http.ResponseWriter, r *http.Request) bool {
	if s.tracker.Active() {
		return false
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
	return true
}

func (s *Server) renderOverview(w http.ResponseWriter, r *http.Request, status int, n *view.Notification) {
	if s.anonymous(w, r) {
		return
	}

	page, err := s.tracker.Overview(r.Context())
	if err != nil {
		s.renderUsers(w, r, statusFor(err), view.NotificationFor(err))
		return
	}

	s.render(w, status, view.PageOverview, view.Page{
		Title:        "Dashboard",
		User:         page.User,
		Notification: n,
		Data:         page,
	})
}

func (s *Server) renderWallets(w http.ResponseWriter, r *http.Request, status int, n *view.Notification) {
	if s.anonymous(w, r) {
		return
	}

	page, err := s.tracker.Wallets(r.Context())
	if err != nil {
		s.renderUsers(w, r, statusFor(err), view.NotificationFor(err))
		return
	}

	s.render(w, status, view.PageWallets, view.Page{
		Title:        "Wallets",
		User:         page.User,
		Notification: n,
		Data:         page,
	})
}

func (s *Server) renderWallet(w http.ResponseWriter, r *http.Request, id core.ID, status int, n *view.Notification) {
	if s.anonymous(w, r) {
		return
	}

	page, err := s.tracker.WalletDetail(r.Context(), id)
	if err != nil {
		status := statusFor(err)
		if errors.Is(err, core.ErrWalletNotFound) {
			status = http.StatusNotFound
		}
		s.renderWallets(w, r, status, view.NotificationFor(err))
		return
	}

	s.render(w, status, view.PageWallet, view.Page{
		Title:        page.Wallet.Name,
		User:         page.User,
		Notification: n,
		Data:         page,
	})
}

func (s *Server) renderTransactions(w http.ResponseWriter, r *http.Request, query url.Values, status int, n *view.Notification) {
	if s.anonymous(w, r) {
		return
	}

	filter, err := core.ParseFilter(query.Get("wallet_id"), query.Get("type"), query.Get("date"))
	if err != nil {
		status, n = statusFor(err), view.NotificationFor(err)
	}

	page, err := s.tracker.Transactions(r.Context(), filter)
	if err != nil {
		s.renderOverview(w, r, statusFor(err), view.NotificationFor(err))
		return
	}

	s.render(w, status, view.PageTransactions, view.Page{
		Title:        "Transactions",
		User:         page.User,
		Notification: n,
		Data:         page,
	})
}

type usersPage struct {
	Users []core.UserSummary
}

func (s *Server) renderUsers(w http.ResponseWriter, r *http.Request, status int, n *view.Notification) {
	users, err := s.tracker.Users(r.Context())
	if err != nil {
		s.logger.Error("tracker.Users", "err", err)
		if n == nil {
			status, n = statusFor(err), view.NotificationFor(err)
		}
	}

	if users == nil {
		users = []core.UserSummary{}
	}

	s.render(w, status, view.PageUsers, view.Page{
		Title:        "Users",
		Notification: n,
		Data:         usersPage{Users: users},
	})
}
