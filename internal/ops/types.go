package ops

import "time"

// Date layouts used by the bank export. Operation timestamps carry a time
// component, payment dates do not.
const (
	DateTimeLayout = "02.01.2006 15:04:05"
	DateLayout     = "02.01.2006"
	ReportLayout   = "2006-01-02"
)

// Transaction is one row of the operations export. Loaders produce it,
// aggregators only read it.
type Transaction struct {
	OperationDate time.Time
	PaymentDate   time.Time
	Card          string // may be empty
	Description   string
	Category      string
	Amount        float64 // signed operation amount, negative = outflow
	PaymentAmount float64 // signed payment amount
	Bonus         float64 // bonuses including cashback, 0 when absent
	Cashback      float64 // 0 when absent
}

// CardSummary aggregates spend and bonuses for one card suffix.
type CardSummary struct {
	EndDigits string  `json:"end_digits"`
	Spent     float64 `json:"spent"`
	Bonus     float64 `json:"bonus"`
}

// TopTransaction is the normalized projection used for top-N output.
type TopTransaction struct {
	Date        string  `json:"date"` // date portion only, DD.MM.YYYY
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// CategoryReport is the result of a category expense window calculation.
type CategoryReport struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total_expenses"`
	ReportDate string  `json:"report_date"` // YYYY-MM-DD
}
