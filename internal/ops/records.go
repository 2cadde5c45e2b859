package ops

// Record is the JSON-friendly shape of a transaction, used when search
// results are written to a report file.
type Record struct {
	OperationDate string  `json:"operation_date"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	Card          string  `json:"card,omitempty"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	PaymentAmount float64 `json:"payment_amount"`
	Bonus         float64 `json:"bonus"`
	Cashback      float64 `json:"cashback"`
}

// ToRecords converts transactions to their JSON-friendly form. The result is
// never nil, so an empty input serializes as [] rather than null.
func ToRecords(txs []Transaction) []Record {
	records := make([]Record, 0, len(txs))
	for _, tx := range txs {
		r := Record{
			OperationDate: tx.OperationDate.Format(DateTimeLayout),
			Card:          tx.Card,
			Description:   tx.Description,
			Category:      tx.Category,
			Amount:        tx.Amount,
			PaymentAmount: tx.PaymentAmount,
			Bonus:         tx.Bonus,
			Cashback:      tx.Cashback,
		}
		if !tx.PaymentDate.IsZero() {
			r.PaymentDate = tx.PaymentDate.Format(DateLayout)
		}
		records = append(records, r)
	}
	return records
}
