package report

import (
	"bytes"
	"strings"
	"testing"

	"spendview/internal/market"
	"spendview/internal/ops"
)

func TestRenderCardUsage(t *testing.T) {
	var buf bytes.Buffer
	cards := []ops.CardSummary{
		{EndDigits: "23456", Spent: 100, Bonus: 10},
		{EndDigits: "23457", Spent: 200, Bonus: 20},
	}

	RenderCardUsage(&buf, cards, GetCurrency("RUB"))

	out := buf.String()
	for _, want := range []string{"Card", "23456", "23457", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTopTransactions(t *testing.T) {
	var buf bytes.Buffer
	top := []ops.TopTransaction{
		{Date: "01.01.2024", Amount: 1000, Category: "Переводы", Description: "Аренда"},
	}

	RenderTopTransactions(&buf, top, GetCurrency("RUB"))

	out := buf.String()
	for _, want := range []string{"01.01.2024", "Переводы", "Аренда"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStockPrices(t *testing.T) {
	var buf bytes.Buffer
	prices := []market.StockPrice{{Stock: "AAPL", Price: 100.5}}

	RenderStockPrices(&buf, prices, GetCurrency("USD"))

	if !strings.Contains(buf.String(), "AAPL") {
		t.Errorf("table output missing ticker:\n%s", buf.String())
	}
}
