package report

import (
	"spendview/internal/market"
	"spendview/internal/ops"
)

// Dashboard is the root object of the main report. Rates may be null when the
// provider has no quote for a currency.
type Dashboard struct {
	Greeting            string               `json:"greeting"`
	TotalExpenses       float64              `json:"total_expenses"`
	CardUsage           []ops.CardSummary    `json:"card_usage"`
	LargestTransactions []ops.TopTransaction `json:"largest_transactions"`
	CurrencyRates       map[string]*float64  `json:"currency_rates"`
	StockPrices         []market.StockPrice  `json:"stock_prices"`
}
