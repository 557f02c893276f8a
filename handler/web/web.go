package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pandodao/money-tracker/core"
	"github.com/pandodao/money-tracker/handler/view"
	"github.com/pandodao/money-tracker/service/tracker"
)

type Server struct {
	tracker *tracker.Service
	view    *view.Renderer
	logger  *slog.Logger
}

func New(tracker *tracker.Service, view *view.Renderer, logger *slog.Logger) *Server {
	return &Server{
		tracker: tracker,
		view:    view,
		logger:  logger.With("handler", "web"),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.overview)
	r.Get("/users", s.users)
	r.Post("/users", s.createUser)
	r.Post("/users/select", s.selectUser)
	r.Post("/logout", s.logout)

	r.Route("/wallets", func(r chi.Router) {
		r.Get("/", s.wallets)
		r.Post("/", s.createWallet)
		r.Post("/close", s.closeWallet)
		r.Get("/{id}", s.wallet)
	})

	r.Get("/transactions", s.transactions)
	r.Post("/transactions", s.createTransaction)
	r.Get("/transactions/{id}", s.transaction)

	return r
}

// done finishes a successful mutation. Plain form posts are redirected with
// a notice code, HTMX requests get the notification as an event.
func (s *Server) done(w http.ResponseWriter, r *http.Request, target, notice string) {
	if isHTMX(r) {
		trigger(w, view.Success(notices[notice]))
		w.Header().Set("HX-Location", target)
		w.WriteHeader(http.StatusOK)
		return
	}

	u, _ := url.Parse(target)
	q := u.Query()
	q.Set("notice", notice)
	u.RawQuery = q.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// fail re-renders the page the request came from with the error shown.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, target string, err error) {
	n := view.NotificationFor(err)
	if isHTMX(r) {
		trigger(w, n)
	}

	s.show(w, r, target, statusFor(err), n)
}

func (s *Server) show(w http.ResponseWriter, r *http.Request, target string, status int, n *view.Notification) {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/"}
	}

	switch path := u.Path; {
	case path == "/":
		s.renderOverview(w, r, status, n)
	case path == "/wallets":
		s.renderWallets(w, r, status, n)
	case strings.HasPrefix(path, "/wallets/"):
		s.renderWallet(w, r, core.ParseID(strings.TrimPrefix(path, "/wallets/")), status, n)
	case path == "/transactions":
		s.renderTransactions(w, r, u.Query(), status, n)
	default:
		s.renderUsers(w, r, status, n)
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, page view.Page) {
	if page.User == nil {
		page.User, _ = s.tracker.Current()
	}

	if err := s.view.Render(w, status, name, page); err != nil {
		s.logger.Error("view.Render", "page", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func statusFor(err error) int {
	var apiErr *core.APIError

	switch {
	case core.IsValidationError(err), errors.Is(err, core.ErrSessionActive):
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	case core.IsNetworkError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
