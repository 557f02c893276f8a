package web

import (
	"net/http"

	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/service/tracker"
)

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	if _, err := s.tracker.CreateUser(r.Context(), r.FormValue("name"), r.FormValue("email")); err != nil {
		s.fail(w, r, "/users", err)
		return
	}

	s.done(w, r, "/", noticeUserCreated)
}

func (s *Server) selectUser(w http.ResponseWriter, r *http.Request) {
	if _, err := s.tracker.SelectUser(r.Context(), core.ParseID(r.FormValue("user_id"))); err != nil {
		s.fail(w, r, "/users", err)
		return
	}

	s.done(w, r, "/", noticeUserSelected)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.Logout(r.Context()); err != nil {
		s.logger.Error("tracker.Logout", "err", err)
	}

	s.done(w, r, "/users", noticeLoggedOut)
}

func (s *Server) closeWallet(w http.ResponseWriter, r *http.Request) {
	s.tracker.CloseWallet()
	http.Redirect(w, r, "/wallets", http.StatusSeeOther)
}

func (s *Server) createWallet(w http.ResponseWriter, r *http.Request) {
	target := localTarget(r.FormValue("next"), "/wallets")

	_, err := s.tracker.CreateWallet(r.Context(), tracker.WalletForm{
		Name:        r.FormValue("name"),
		Balance:     r.FormValue("balance"),
		Description: r.FormValue("description"),
	})
	if err != nil {
		s.fail(w, r, target, err)
		return
	}

	s.done(w, r, target, noticeWalletCreated)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	target := localTarget(r.FormValue("next"), "/transactions")

	_, err := s.tracker.CreateTransaction(r.Context(), tracker.TransactionForm{
		WalletID:    r.FormValue("wallet_id"),
		Type:        r.FormValue("type"),
		Amount:      r.FormValue("amount"),
		Description: r.FormValue("description"),
	})
	if err != nil {
		s.fail(w, r, target, err)
		return
	}

	s.done(w, r, target, noticeTransactionCreated)
}
