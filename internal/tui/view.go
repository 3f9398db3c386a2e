package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/listing"
)

func (m *Model) View() string {
	if m.route == routeDetail {
		return m.viewDetail()
	}
	return m.viewListing()
}

// viewListing - строки в том порядке, который ожидает layout()
func (m *Model) viewListing() string {
	var b strings.Builder

	b.WriteString(Styles.Title.Render("Largest Crypto Marketplace") + "\n")
	b.WriteString(Styles.Subtitle.Render("Welcome to the world's largest cryptocurrency marketplace.") + "\n")
	b.WriteString("\n")

	button := Styles.Button
	if m.focus == focusSearch {
		button = Styles.ButtonFocus
	}
	b.WriteString(Styles.Input.Render(m.input.View()) + " " + button.Render(buttonLabel) + "\n")

	active := m.page.ActiveIndex()
	for i, c := range m.visibleSuggestions() {
		style := Styles.Suggestion
		if m.suggOffset+i == active {
			style = Styles.SuggestionActive
		}
		b.WriteString("  " + style.Render(c.Name) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Styles.Header.Render(formatCells("#", "Coins", "Price", "24H Change", "Market Cap")) + "\n")
	if len(m.rows) == 0 {
		b.WriteString(Styles.Empty.Render("No coins to show") + "\n")
	}
	for i, r := range m.rows {
		b.WriteString(m.renderRow(i, r) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render(m.hint()))
	return b.String()
}

func (m *Model) renderRow(i int, r listing.Row) string {
	style := Styles.Row
	if m.focus == focusTable && i == m.cursor {
		style = Styles.RowSelected
	}
	head := style.Render(fmt.Sprintf("%-*d%-*s%-*s",
		rankColumn, r.Rank,
		coinsColumn, truncate(r.Label, coinsColumn-1),
		priceColumn, r.Price,
	))
	change := changeStyle(r.ChangeClass).Render(fmt.Sprintf("%-*s", changeColumn, r.Change))
	return head + change + style.Render(r.MarketCap)
}

func formatCells(rank, coins, price, change, mcap string) string {
	return fmt.Sprintf("%-*s%-*s%-*s%-*s%s",
		rankColumn, rank,
		coinsColumn, coins,
		priceColumn, price,
		changeColumn, change,
		mcap,
	)
}

func (m *Model) hint() string {
	if m.focus == focusTable {
		return "↑/↓: move • enter: open coin • tab: search • ctrl+c: quit"
	}
	return "↑/↓: suggestions • enter: search • tab: table • ctrl+c: quit"
}

func (m *Model) viewDetail() string {
	var b strings.Builder
	if !m.found {
		b.WriteString(Styles.Title.Render("Coin not found") + "\n\n")
		b.WriteString(Styles.Muted.Render(fmt.Sprintf("No coin with id %q in the current market.", m.detailID)) + "\n\n")
		b.WriteString(Styles.Hint.Render("esc: back • ctrl+c: quit"))
		return b.String()
	}

	c := m.detail
	row := listing.NewRow(c, m.src.Currency())
	updated := "-"
	if !c.UpdatedAt.IsZero() {
		updated = c.UpdatedAt.Local().Format(time.DateTime)
	}

	b.WriteString(Styles.Title.Render(fmt.Sprintf("%s (%s)", c.Name, strings.ToUpper(c.Symbol))) + "\n\n")
	field := func(label, value string) {
		b.WriteString(Styles.Label.Render(label) + value + "\n")
	}
	field("Rank", fmt.Sprintf("#%d", row.Rank))
	field("Price", row.Price)
	field("Market cap", row.MarketCap)
	field("24H change", changeStyle(row.ChangeClass).Render(row.Change))
	field("Image", row.Image)
	field("Updated", updated)
	field("Link", row.Link)
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render("esc: back • ctrl+c: quit"))
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
