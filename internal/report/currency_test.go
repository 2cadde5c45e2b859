package report

import "testing"

func TestCurrencyFormat(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		amount   float64
		expected string
	}{
		{"rub suffix with decimal comma", "RUB", 75.5, "75,50 ₽"},
		{"usd prefix", "USD", 12.3, "$12.30"},
		{"usd grouping", "USD", 1234.5, "$1,234.50"},
		{"unknown code falls back to the code", "ZZZ", 1, "1.00 ZZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetCurrency(tt.code).Format(tt.amount)
			if got != tt.expected {
				t.Errorf("Format(%v) for %s = %q, want %q", tt.amount, tt.code, got, tt.expected)
			}
		})
	}
}

func TestGetCurrencyNormalizesCode(t *testing.T) {
	if c := GetCurrency("rub"); c.Code != "RUB" {
		t.Errorf("expected code RUB, got %q", c.Code)
	}
}
