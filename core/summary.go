package core

import "github.com/shopspring/decimal"

type Summary struct {
	Count   int             `json:"count"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// Aggregate totals transactions by their classification in a single pass.
func Aggregate(txs []Transaction) Summary {
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		c := Classify(tx)
		if c.IsIncome() {
			income = income.Add(c.Magnitude)
		} else {
			expense = expense.Add(c.Magnitude)
		}
	}

	return Summary{
		Count:   len(txs),
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
