package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"

	"spendview/internal/config"
	"spendview/internal/log"
	"spendview/internal/ops"
	"spendview/internal/report"
)

type Params struct {
	File         string `descr:"Path to the operations file" positional:"true"`
	Query        string `descr:"Search keyword; prompted for when empty" default:"" optional:"true"`
	WithCategory bool   `descr:"Also match the category field" default:"false"`
	Format       string `descr:"Input format" alts:"tinkoff-xlsx,simple-json" strict:"true" default:"tinkoff-xlsx"`
	Settings     string `descr:"Path to the user settings file" default:"settings.yaml"`
}

func main() {
	boa.NewCmdT[Params]("spendview-search").
		WithShort("Search operations by keyword").
		WithLong("Performs a case-insensitive literal substring search over operation descriptions (and optionally categories), writes matches to a JSON file and echoes them to the console. An empty keyword matches nothing.").
		WithRunFunc(run).
		Run()
}

func run(params *Params) {
	_ = godotenv.Load()
	logger := log.New(log.Config{Component: "spendview-search"})

	settings, err := config.LoadSettings(params.Settings)
	if err != nil {
		fail(logger, "loading settings", err)
	}

	loader, err := ops.GetLoader(params.Format)
	if err != nil {
		fail(logger, "selecting input format", err)
	}
	transactions, err := loader.Load(params.File)
	if err != nil {
		fail(logger, "loading operations", err)
	}

	query := params.Query
	if query == "" {
		query, err = promptKeyword()
		if err != nil {
			fail(logger, "reading search keyword", err)
		}
	}

	var matches []ops.Transaction
	if params.WithCategory {
		matches = ops.SearchWithCategory(transactions, query)
	} else {
		matches = ops.Search(transactions, query)
	}
	logger.Info("search finished", "query", query, "matches", len(matches))

	records := ops.ToRecords(matches)
	if err := report.EncodeJSON(os.Stdout, records); err != nil {
		fail(logger, "printing results", err)
	}
	if err := report.WriteJSON(settings.SearchFile, records); err != nil {
		fail(logger, "writing results", err)
	}
	fmt.Printf("Search results written to %s\n", settings.SearchFile)
}

func promptKeyword() (string, error) {
	fmt.Print("Enter search keyword: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func fail(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
