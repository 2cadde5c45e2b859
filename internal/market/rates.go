package market

import (
	"fmt"
	"net/http"
	"strings"

	"spendview/internal/log"
)

// RatesClient fetches currency conversion rates from an exchangerate-api.com
// style endpoint: GET {base}/{key}/latest/{code} returns a conversion_rates
// mapping keyed by currency code.
type RatesClient struct {
	BaseURL string
	APIKey  string
	Target  string // currency the rate is quoted in, e.g. "RUB"
	HTTP    *http.Client
	Logger  *log.Logger
}

type ratesResponse struct {
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// Rate returns how much one unit of code is worth in the target currency.
// A zero or missing rate in the payload yields nil; the two cases are not
// distinguished by the provider.
func (c *RatesClient) Rate(code string) (*float64, error) {
	code = strings.ToUpper(code)
	addr := fmt.Sprintf("%s/%s/latest/%s", strings.TrimRight(c.BaseURL, "/"), c.APIKey, code)

	var payload ratesResponse
	if err := getJSON(c.HTTP, addr, &payload); err != nil {
		return nil, fmt.Errorf("fetching rate for %s: %w", code, err)
	}

	rate := payload.ConversionRates[c.Target]
	if rate == 0 {
		if c.Logger != nil {
			c.Logger.Warn("no rate in provider response", "currency", code, "target", c.Target)
		}
		return nil, nil
	}

	if c.Logger != nil {
		c.Logger.Debug("fetched rate", "currency", code, "target", c.Target, "rate", rate)
	}
	return &rate, nil
}

// Rates fetches rates for all codes, one provider call per code, in order.
func (c *RatesClient) Rates(codes []string) (map[string]*float64, error) {
	rates := make(map[string]*float64, len(codes))
	for _, code := range codes {
		rate, err := c.Rate(code)
		if err != nil {
			return nil, err
		}
		rates[strings.ToUpper(code)] = rate
	}
	return rates, nil
}
