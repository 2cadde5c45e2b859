package ops

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column headers of a Tinkoff operations export.
const (
	colOperationDate = "Дата операции"
	colPaymentDate   = "Дата платежа"
	colCard          = "Номер карты"
	colDescription   = "Описание"
	colCategory      = "Категория"
	colAmount        = "Сумма операции"
	colPaymentAmount = "Сумма платежа"
	colBonus         = "Бонусы (включая кэшбэк)"
	colCashback      = "Кэшбэк"
)

// ParseXLSX reads transactions from a Tinkoff Excel export. Columns are located
// by header name on the first sheet; «Дата операции» and «Сумма операции» are
// required, the rest default to empty/zero when absent. Blank rows are skipped,
// malformed dates or amounts abort the load.
func ParseXLSX(path string) ([]Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	// Find the header row and column indices
	cols := map[string]int{}
	dataStartRow := -1
	for i, row := range rows {
		for j, cell := range row {
			switch strings.TrimSpace(cell) {
			case colOperationDate, colPaymentDate, colCard, colDescription,
				colCategory, colAmount, colPaymentAmount, colBonus, colCashback:
				cols[strings.TrimSpace(cell)] = j
			}
		}
		if _, ok := cols[colOperationDate]; ok {
			dataStartRow = i + 1
			break
		}
		cols = map[string]int{}
	}

	if dataStartRow < 0 {
		return nil, fmt.Errorf("could not find header row (looking for %q)", colOperationDate)
	}
	if _, ok := cols[colAmount]; !ok {
		return nil, fmt.Errorf("missing required column %q", colAmount)
	}

	var transactions []Transaction
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]

		dateStr := cell(row, cols, colOperationDate)
		amountStr := cell(row, cols, colAmount)

		// Skip empty rows
		if dateStr == "" && amountStr == "" {
			continue
		}

		opDate, err := parseOperationDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		amount, err := parseAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing %q: %w", i+1, colAmount, err)
		}

		tx := Transaction{
			OperationDate: opDate,
			Card:          cell(row, cols, colCard),
			Description:   cell(row, cols, colDescription),
			Category:      cell(row, cols, colCategory),
			Amount:        amount,
		}

		if s := cell(row, cols, colPaymentDate); s != "" {
			tx.PaymentDate, err = parseOperationDate(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		if s := cell(row, cols, colPaymentAmount); s != "" {
			tx.PaymentAmount, err = parseAmount(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing %q: %w", i+1, colPaymentAmount, err)
			}
		}
		if s := cell(row, cols, colBonus); s != "" {
			tx.Bonus, err = parseAmount(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing %q: %w", i+1, colBonus, err)
			}
		}
		if s := cell(row, cols, colCashback); s != "" {
			tx.Cashback, err = parseAmount(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing %q: %w", i+1, colCashback, err)
			}
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// cell returns the trimmed value of a named column, or "" when the column is
// absent or the row is too short.
func cell(row []string, cols map[string]int, name string) string {
	j, ok := cols[name]
	if !ok || j >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[j])
}

// parseOperationDate accepts dates with or without a time component.
func parseOperationDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateTimeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// parseAmount accepts both dot and comma decimal separators. Regular and
// non-breaking spaces are tolerated as digit group separators.
func parseAmount(s string) (float64, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(s)
	return strconv.ParseFloat(s, 64)
}

func init() {
	RegisterLoader("tinkoff-xlsx", LoaderFunc(ParseXLSX))
}
