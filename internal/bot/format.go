package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/listing"
)

// formatRows - строки таблицы, по одной на монету
func formatRows(rows []listing.Row) string {
	var bld strings.Builder
	for i, r := range rows {
		if i > 0 {
			bld.WriteByte('\n')
		}
		bld.WriteString(formatRowLine(r))
	}
	return bld.String()
}

func formatRowLine(r listing.Row) string {
	return fmt.Sprintf("#%d %s | %s | %s", r.Rank, r.Label, r.Price, r.Change)
}

// formatCoinDetails - подробное сообщение для команды /coin {id}
func formatCoinDetails(d CoinDTO) string {
	row := listing.NewRow(d.Coin, d.Currency)
	updated := "-"
	if !d.Coin.UpdatedAt.IsZero() {
		updated = d.Coin.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf(
		"[%s]\nРанг: %d\nЦена: %s\nКапитализация: %s\nИзменение за 24ч: %s\nОбновлено: %s",
		row.Label,
		row.Rank,
		row.Price,
		row.MarketCap,
		row.Change,
		updated,
	)
}
