package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds environment-derived configuration for the enrichment providers.
type Config struct {
	// Exchange rate provider
	ExchangeAPIURL string
	ExchangeAPIKey string

	// Stock price provider
	StocksAPIURL string
	StocksAPIKey string

	// Currency the rates are quoted against
	TargetCurrency string
}

// Load reads configuration from the process environment.
func Load() *Config {
	return &Config{
		ExchangeAPIURL: getEnv("EXCHANGE_API_URL", "https://v6.exchangerate-api.com/v6"),
		ExchangeAPIKey: getEnv("EXCHANGE_API_KEY", ""),
		StocksAPIURL:   getEnv("STOCKS_API_URL", "https://www.alphavantage.co"),
		StocksAPIKey:   getEnv("STOCKS_API_KEY", ""),
		TargetCurrency: strings.ToUpper(getEnv("TARGET_CURRENCY", "RUB")),
	}
}

// Validate checks that the configuration can produce well-formed provider
// requests, so a missing key fails at startup instead of as a malformed URL
// downstream.
func (c *Config) Validate() error {
	var errs []string

	if c.ExchangeAPIKey == "" {
		errs = append(errs, "EXCHANGE_API_KEY is not set")
	}
	if c.StocksAPIKey == "" {
		errs = append(errs, "STOCKS_API_KEY is not set")
	}
	if msg := checkURL("EXCHANGE_API_URL", c.ExchangeAPIURL); msg != "" {
		errs = append(errs, msg)
	}
	if msg := checkURL("STOCKS_API_URL", c.StocksAPIURL); msg != "" {
		errs = append(errs, msg)
	}
	if len(c.TargetCurrency) != 3 {
		errs = append(errs, fmt.Sprintf("invalid TARGET_CURRENCY %q: must be a 3-letter code", c.TargetCurrency))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func checkURL(name, raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Sprintf("invalid %s %q: %v", name, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("invalid %s scheme %q: must be http or https", name, u.Scheme)
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
