package report

import "kasir/internal/domain"

// Totals is the footer line of a report
type Totals struct {
	Items  int     `json:"items"`
	Sales  float64 `json:"total"`
	Profit float64 `json:"laba"`
}

// SumTransactions adds up item counts, sales and profit of the given sales
func SumTransactions(rows []domain.TransactionRow) Totals {
	var t Totals
	for _, r := range rows {
		t.Items += r.ItemCount
		t.Sales += r.Total
		t.Profit += r.Profit
	}
	return t
}

// SumItemRecap adds up quantities, sales and profit of a product recap
func SumItemRecap(rows []domain.ItemRecapRow) Totals {
	var t Totals
	for _, r := range rows {
		t.Items += r.Quantity
		t.Sales += r.TotalSales
		t.Profit += r.TotalProfit
	}
	return t
}
