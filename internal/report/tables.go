package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"spendview/internal/market"
	"spendview/internal/ops"
)

// RenderCardUsage prints card usage summaries as a formatted table.
func RenderCardUsage(w io.Writer, cards []ops.CardSummary, cur Currency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Card", "Spent", "Bonus"})

	var totalSpent, totalBonus float64
	for _, card := range cards {
		t.AppendRow(table.Row{card.EndDigits, cur.Format(card.Spent), cur.Format(card.Bonus)})
		totalSpent += card.Spent
		totalBonus += card.Bonus
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{
		text.Bold.Sprint("Total"),
		text.Bold.Sprint(cur.Format(totalSpent)),
		text.Bold.Sprint(cur.Format(totalBonus)),
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

// RenderTopTransactions prints the largest transactions as a formatted table.
func RenderTopTransactions(w io.Writer, top []ops.TopTransaction, cur Currency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Amount", "Category", "Description"})

	for _, tx := range top {
		t.AppendRow(table.Row{tx.Date, cur.Format(tx.Amount), tx.Category, tx.Description})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}

// RenderStockPrices prints the fetched close prices as a formatted table.
func RenderStockPrices(w io.Writer, prices []market.StockPrice, cur Currency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Stock", "Price"})

	for _, p := range prices {
		t.AppendRow(table.Row{p.Stock, cur.Format(p.Price)})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}
