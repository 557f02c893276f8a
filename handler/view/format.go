package view

import (
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pandodao/money-tracker/core"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func funcs() template.FuncMap {
	return template.FuncMap{
		"money":    Money,
		"signed":   Signed,
		"label":    Label,
		"date":     Date,
		"datetime": DateTime,
		"since":    MemberSince,
		"txForm":   newTxForm,
		"isIncome": core.Classification.IsIncome,
	}
}

// txForm is the model of the transaction form partial. With a WalletID the
// form posts to that wallet, otherwise it offers a wallet picker.
type txForm struct {
	WalletID core.ID
	Next     string
	Wallets  []core.Wallet
}

func newTxForm(walletID core.ID, next string, wallets []core.Wallet) txForm {
	return txForm{WalletID: walletID, Next: next, Wallets: wallets}
}

// Money formats an amount like "$1,234.50".
func Money(d decimal.Decimal) string {
	s := "$" + humanize.FormatFloat("#,###.##", d.Abs().Round(2).InexactFloat64())
	if d.Round(2).IsNegative() {
		return "-" + s
	}

	return s
}

// Signed formats a classified amount as "+$10.00" or "-$10.00".
func Signed(c core.Classification) string {
	if c.IsIncome() {
		return "+" + Money(c.Magnitude)
	}

	return "-" + Money(c.Magnitude)
}

// Label title-cases a transaction type. Casers keep state, so each call
// gets its own.
func Label(t core.TransactionType) string {
	return cases.Title(language.English).String(string(t))
}

func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format("Jan 2, 2006")
}

func DateTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return t.Local().Format("Mon, Jan 2, 2006 3:04 PM")
}

func MemberSince(u *core.User) string {
	if u == nil || u.CreatedAt.IsZero() {
		return "Member"
	}

	return "Member since " + u.CreatedAt.Format("2006")
}
