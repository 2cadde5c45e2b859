package main

import (
	"fmt"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"

	"spendview/internal/config"
	"spendview/internal/log"
	"spendview/internal/ops"
	"spendview/internal/report"
)

type Params struct {
	File     string `descr:"Path to the operations file" positional:"true"`
	Category string `descr:"Category to sum expenses for" positional:"true"`
	Date     string `descr:"Reference date (YYYY-MM-DD), empty for today" default:"" optional:"true"`
	Format   string `descr:"Input format" alts:"tinkoff-xlsx,simple-json" strict:"true" default:"tinkoff-xlsx"`
	Settings string `descr:"Path to the user settings file" default:"settings.yaml"`
}

func main() {
	boa.NewCmdT[Params]("spendview-expenses").
		WithShort("Sum category expenses over a trailing 3-month window").
		WithLong("Sums outflows for one category over the 3 calendar months ending at the reference date (inclusive) and writes the result as a JSON report.").
		WithRunFunc(run).
		Run()
}

func run(params *Params) {
	_ = godotenv.Load()
	logger := log.New(log.Config{Component: "spendview-expenses"})

	settings, err := config.LoadSettings(params.Settings)
	if err != nil {
		fail(logger, "loading settings", err)
	}

	ref := time.Now()
	if params.Date != "" {
		ref, err = time.Parse(ops.ReportLayout, params.Date)
		if err != nil {
			fail(logger, "invalid --date value", err)
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

	result := ops.CategoryExpenses(transactions, params.Category, ref)
	logger.Info("expenses calculated",
		"category", result.Category, "total", result.Total, "date", result.ReportDate)

	if err := report.EncodeJSON(os.Stdout, result); err != nil {
		fail(logger, "printing report", err)
	}
	if err := report.WriteJSON(settings.ExpensesFile, result); err != nil {
		fail(logger, "writing report", err)
	}
	fmt.Printf("Expense report written to %s\n", settings.ExpensesFile)
}

func fail(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
