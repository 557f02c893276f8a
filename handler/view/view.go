package view

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/oxtoacart/bpool"
	"github.com/pandodao/money-tracker/core"
)

//go:embed templates/*.html
var templates embed.FS

const (
	PageOverview     = "overview"
	PageWallets      = "wallets"
	PageWallet       = "wallet"
	PageTransactions = "transactions"
	PageTransaction  = "transaction"
	PageUsers        = "users"
)

// Page is what every template receives. Data holds the page specific model.
type Page struct {
	Title        string
	Nav          string
	User         *core.User
	Notification *Notification
	Data         any
}

type Renderer struct {
	tmpl *template.Template
	pool *bpool.BufferPool
}

func New() *Renderer {
	tmpl := template.Must(template.New("").Funcs(funcs()).ParseFS(templates, "templates/*.html"))

	return &Renderer{
		tmpl: tmpl,
		pool: bpool.NewBufferPool(64),
	}
}

// Render executes the named page into a pooled buffer first, so nothing
// reaches w when the template fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	buf := r.pool.Get()
	defer r.pool.Put(buf)

	if page.Nav == "" {
		page.Nav = name
	}

	if err := r.tmpl.ExecuteTemplate(buf, name, page); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
