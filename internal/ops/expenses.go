package ops

import (
	"math"
	"time"
)

// CategoryExpenses sums outflows for one category over a trailing 3-calendar-month
// window ending at (and including) ref. Payment dates and amounts are used.
// A category or window with no matching rows yields a total of 0.
func CategoryExpenses(txs []Transaction, category string, ref time.Time) CategoryReport {
	windowStart := ref.AddDate(0, -3, 0)

	var total float64
	for _, tx := range txs {
		if tx.Category != category {
			continue
		}
		if tx.PaymentDate.Before(windowStart) || tx.PaymentDate.After(ref) {
			continue
		}
		if tx.PaymentAmount < 0 {
			total += math.Abs(tx.PaymentAmount)
		}
	}

	return CategoryReport{
		Category:   category,
		Total:      total,
		ReportDate: ref.Format(ReportLayout),
	}
}

// TotalExpenses sums the absolute value of all negative operation amounts.
func TotalExpenses(txs []Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Amount < 0 {
			total += math.Abs(tx.Amount)
		}
	}
	return total
}
