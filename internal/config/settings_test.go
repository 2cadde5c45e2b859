package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSettingsMissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !reflect.DeepEqual(s, DefaultSettings()) {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadSettings(t *testing.T) {
	content := `
currencies: [usd, gbp]
stocks: [nvda]
dashboard_file: dash.json
`
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if !reflect.DeepEqual(s.Currencies, []string{"USD", "GBP"}) {
		t.Errorf("symbols not upper-cased: %v", s.Currencies)
	}
	if !reflect.DeepEqual(s.Stocks, []string{"NVDA"}) {
		t.Errorf("unexpected stocks: %v", s.Stocks)
	}
	if s.DashboardFile != "dash.json" {
		t.Errorf("unexpected dashboard file %q", s.DashboardFile)
	}

	// Unset fields fall back to their defaults.
	if s.SearchFile != DefaultSettings().SearchFile {
		t.Errorf("unexpected search file %q", s.SearchFile)
	}
	if s.ExpensesFile != DefaultSettings().ExpensesFile {
		t.Errorf("unexpected expenses file %q", s.ExpensesFile)
	}
}

func TestLoadSettingsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("currencies: [unterminated"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	original := &Settings{
		Currencies:    []string{"USD"},
		Stocks:        []string{"AAPL"},
		DashboardFile: "a.json",
		SearchFile:    "b.json",
		ExpensesFile:  "c.json",
	}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("round trip mismatch:\noriginal: %+v\nloaded:   %+v", original, loaded)
	}
}
