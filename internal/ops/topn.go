package ops

import (
	"math"
	"sort"
)

// TopTransactions returns the n transactions with the greatest signed operation
// amount, as normalized projections. The sort is stable, so ties keep their
// original input order. Fewer than n rows returns all of them. The input slice
// is never modified.
func TopTransactions(txs []Transaction, n int) []TopTransaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	top := make([]TopTransaction, 0, n)
	for _, tx := range sorted[:n] {
		top = append(top, TopTransaction{
			Date:        tx.OperationDate.Format(DateLayout),
			Amount:      math.Abs(tx.Amount),
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	return top
}
