package market

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"spendview/internal/log"
)

// StocksClient fetches daily close prices from an Alpha Vantage style
// endpoint: GET {base}/query?function=TIME_SERIES_DAILY&symbol={t}&apikey={k}
// returns the daily OHLC history, of which only the latest close is consumed.
type StocksClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Logger  *log.Logger
}

// StockPrice pairs a ticker with its latest close price.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

type dailySeriesResponse struct {
	// keyed by ISO date, values keyed by "1. open" .. "4. close"
	Series map[string]map[string]string `json:"Time Series (Daily)"`
}

// LatestClose returns the most recent daily close price for ticker.
func (c *StocksClient) LatestClose(ticker string) (float64, error) {
	ticker = strings.ToUpper(ticker)
	addr := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&apikey=%s",
		strings.TrimRight(c.BaseURL, "/"), url.QueryEscape(ticker), url.QueryEscape(c.APIKey))

	var payload dailySeriesResponse
	if err := getJSON(c.HTTP, addr, &payload); err != nil {
		return 0, fmt.Errorf("fetching price for %s: %w", ticker, err)
	}
	if len(payload.Series) == 0 {
		return 0, fmt.Errorf("no daily series for %s in provider response", ticker)
	}

	// ISO date keys sort chronologically, so the greatest key is the latest day.
	var latest string
	for day := range payload.Series {
		if day > latest {
			latest = day
		}
	}

	closeStr, ok := payload.Series[latest]["4. close"]
	if !ok {
		return 0, fmt.Errorf("no close price for %s on %s", ticker, latest)
	}
	price, err := strconv.ParseFloat(closeStr, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing close price %q for %s: %w", closeStr, ticker, err)
	}

	if c.Logger != nil {
		c.Logger.Debug("fetched close price", "ticker", ticker, "day", latest, "price", price)
	}
	return price, nil
}

// Prices fetches the latest close for every ticker, one provider call per
// ticker, sequentially, preserving input order.
func (c *StocksClient) Prices(tickers []string) ([]StockPrice, error) {
	prices := make([]StockPrice, 0, len(tickers))
	for _, ticker := range tickers {
		price, err := c.LatestClose(ticker)
		if err != nil {
			return nil, err
		}
		prices = append(prices, StockPrice{Stock: strings.ToUpper(ticker), Price: price})
	}
	return prices, nil
}
