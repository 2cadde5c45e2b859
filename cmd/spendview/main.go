package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"

	"spendview/internal/config"
	"spendview/internal/log"
	"spendview/internal/market"
	"spendview/internal/ops"
	"spendview/internal/report"
)

type Params struct {
	File     string `descr:"Path to the operations file" positional:"true"`
	Format   string `descr:"Input format" alts:"tinkoff-xlsx,simple-json" strict:"true" default:"tinkoff-xlsx"`
	Time     string `descr:"Report time override (YYYY-MM-DD HH:MM:SS), empty for now" default:"" optional:"true"`
	Settings string `descr:"Path to the user settings file" default:"settings.yaml"`
	Verbose  bool   `descr:"Enable debug logging" default:"false"`
}

func main() {
	boa.NewCmdT[Params]("spendview").
		WithShort("Build the operations dashboard report").
		WithLong("Loads a bank operations export, aggregates expenses, card usage and the largest transactions, enriches the result with live currency rates and stock prices, and writes a pretty-printed JSON report.").
		WithRunFunc(run).
		Run()
}

func run(params *Params) {
	// Load .env for local development; absence is fine.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if params.Verbose {
		level = slog.LevelDebug
	}
	logger := log.New(log.Config{Level: level, Component: "spendview"})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fail(logger, "invalid configuration", err)
	}

	settings, err := config.LoadSettings(params.Settings)
	if err != nil {
		fail(logger, "loading settings", err)
	}

	when := time.Now()
	if params.Time != "" {
		when, err = time.Parse("2006-01-02 15:04:05", params.Time)
		if err != nil {
			fail(logger, "invalid --time value", err)
		}
	}

	loader, err := ops.GetLoader(params.Format)
	if err != nil {
		fail(logger, "selecting input format", err)
	}
	transactions, err := loader.Load(params.File)
	if err != nil {
		fail(logger, "loading operations", err)
	}
	logger.Info("operations loaded", "file", params.File, "count", len(transactions))

	cardUsage := ops.CardUsage(transactions, logger.WithComponent("cards"))
	topTxs := ops.TopTransactions(transactions, 5)

	rates := &market.RatesClient{
		BaseURL: cfg.ExchangeAPIURL,
		APIKey:  cfg.ExchangeAPIKey,
		Target:  cfg.TargetCurrency,
		Logger:  logger.WithComponent("rates"),
	}
	currencyRates, err := rates.Rates(settings.Currencies)
	if err != nil {
		fail(logger, "fetching currency rates", err)
	}

	stocks := &market.StocksClient{
		BaseURL: cfg.StocksAPIURL,
		APIKey:  cfg.StocksAPIKey,
		Logger:  logger.WithComponent("stocks"),
	}
	stockPrices, err := stocks.Prices(settings.Stocks)
	if err != nil {
		fail(logger, "fetching stock prices", err)
	}

	dashboard := report.Dashboard{
		Greeting:            ops.Greeting(when),
		TotalExpenses:       ops.TotalExpenses(transactions),
		CardUsage:           cardUsage,
		LargestTransactions: topTxs,
		CurrencyRates:       currencyRates,
		StockPrices:         stockPrices,
	}

	home := report.GetCurrency(cfg.TargetCurrency)
	fmt.Println(dashboard.Greeting)
	fmt.Println()
	report.RenderCardUsage(os.Stdout, dashboard.CardUsage, home)
	report.RenderTopTransactions(os.Stdout, dashboard.LargestTransactions, home)
	report.RenderStockPrices(os.Stdout, dashboard.StockPrices, report.GetCurrency("USD"))
	fmt.Println()

	if err := report.EncodeJSON(os.Stdout, dashboard); err != nil {
		fail(logger, "printing report", err)
	}
	if err := report.WriteJSON(settings.DashboardFile, dashboard); err != nil {
		fail(logger, "writing report", err)
	}
	logger.Info("report written", "file", settings.DashboardFile)
}

func fail(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
