package ops

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeXLSX builds an operations export in a temp dir and returns its path.
func writeXLSX(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("building cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			t.Fatalf("writing row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), "operations.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving fixture: %v", err)
	}
	return path
}

func header() []any {
	return []any{
		"Дата операции", "Дата платежа", "Номер карты", "Категория",
		"Описание", "Сумма операции", "Сумма платежа", "Бонусы (включая кэшбэк)", "Кэшбэк",
	}
}

func TestParseXLSX(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Справка о движении средств"}, // preamble before the header row
		header(),
		{"01.01.2024 12:30:00", "01.01.2024", "*7197", "Супермаркеты", "Магазин", "-1000,50", "-1000,50", "10", "5"},
		{"02.01.2024", "02.01.2024", "", "Переводы", "Перевод", "-200.25", "-200.25", "", ""},
		{"", "", "", "", "", "", "", "", ""}, // blank row is skipped
	})

	txs, err := ParseXLSX(path)
	if err != nil {
		t.Fatalf("ParseXLSX: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}

	first := txs[0]
	if first.OperationDate.Format(DateTimeLayout) != "01.01.2024 12:30:00" {
		t.Errorf("unexpected operation date %v", first.OperationDate)
	}
	if first.PaymentDate.Format(DateLayout) != "01.01.2024" {
		t.Errorf("unexpected payment date %v", first.PaymentDate)
	}
	if first.Card != "*7197" || first.Category != "Супермаркеты" || first.Description != "Магазин" {
		t.Errorf("unexpected row fields: %+v", first)
	}
	if first.Amount != -1000.50 || first.PaymentAmount != -1000.50 {
		t.Errorf("comma decimal separator not handled: %+v", first)
	}
	if first.Bonus != 10 || first.Cashback != 5 {
		t.Errorf("unexpected bonus/cashback: %+v", first)
	}

	second := txs[1]
	if second.Card != "" {
		t.Errorf("expected empty card, got %q", second.Card)
	}
	if second.Amount != -200.25 {
		t.Errorf("dot decimal separator not handled: %v", second.Amount)
	}
	if second.Bonus != 0 || second.Cashback != 0 {
		t.Errorf("blank bonus cells must default to zero: %+v", second)
	}
}

func TestParseXLSXDateWithoutTime(t *testing.T) {
	path := writeXLSX(t, [][]any{
		header(),
		{"15.06.2024", "15.06.2024", "*1111", "Кафе", "Кофейня", "-150", "-150", "0", "0"},
	})

	txs, err := ParseXLSX(path)
	if err != nil {
		t.Fatalf("ParseXLSX: %v", err)
	}
	if txs[0].OperationDate.Format(DateLayout) != "15.06.2024" {
		t.Errorf("unexpected operation date %v", txs[0].OperationDate)
	}
}

func TestParseXLSXMalformedDateIsFatal(t *testing.T) {
	path := writeXLSX(t, [][]any{
		header(),
		{"2024-13-99", "01.01.2024", "*1111", "Кафе", "Кофейня", "-150", "-150", "0", "0"},
	})

	if _, err := ParseXLSX(path); err == nil {
		t.Fatal("expected a parse error for a malformed date")
	}
}

func TestParseXLSXMalformedAmountIsFatal(t *testing.T) {
	path := writeXLSX(t, [][]any{
		header(),
		{"01.01.2024", "01.01.2024", "*1111", "Кафе", "Кофейня", "сто рублей", "-150", "0", "0"},
	})

	if _, err := ParseXLSX(path); err == nil {
		t.Fatal("expected a parse error for a malformed amount")
	}
}

func TestParseXLSXMissingHeader(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Колонка1", "Колонка2"},
		{"значение", "значение"},
	})

	if _, err := ParseXLSX(path); err == nil {
		t.Fatal("expected an error for a file without the header row")
	}
}

func TestParseXLSXMissingFile(t *testing.T) {
	if _, err := ParseXLSX(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
