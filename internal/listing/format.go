package listing

import (
	"math"
	"strconv"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	ClassGreen = "green"
	ClassRed   = "red"
)

// Row - одна строка таблицы, готовая к выводу
type Row struct {
	ID          string `json:"id"`
	Rank        int    `json:"rank"`
	Image       string `json:"image"`
	Label       string `json:"label"` // Bitcoin - btc
	Price       string `json:"price"`
	Change      string `json:"change"`
	ChangeClass string `json:"change_class"`
	MarketCap   string `json:"market_cap"`
	Link        string `json:"link"`
}

// FormatNumber - группировка разрядов в стиле en-US, не более трёх знаков после запятой
func FormatNumber(v float64) string {
	// message.Printer не потокобезопасен, поэтому создаётся на каждый вызов
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatMoney - сумма с символом валюты впереди
func FormatMoney(cur domain.Currency, v float64) string {
	return cur.Symbol + " " + FormatNumber(v)
}

// FormatChange - изменение за 24ч, обрезанное до сотых в сторону нуля, и его класс
func FormatChange(pct float64) (string, string) {
	t := math.Trunc(pct*100) / 100
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if pct > 0 {
		return "+" + s + " %", ClassGreen
	}
	return s + " %", ClassRed
}

// CoinLink - маршрут детальной страницы монеты
func CoinLink(id string) string {
	return "/coin/" + id
}

// NewRow - строка таблицы для монеты в валюте cur
func NewRow(c domain.Coin, cur domain.Currency) Row {
	change, class := FormatChange(c.MarketCapChangePercentage24h)
	return Row{
		ID:          c.ID,
		Rank:        c.MarketCapRank,
		Image:       c.Image,
		Label:       c.Name + " - " + c.Symbol,
		Price:       FormatMoney(cur, c.CurrentPrice),
		Change:      change,
		ChangeClass: class,
		MarketCap:   FormatMoney(cur, c.MarketCap),
		Link:        CoinLink(c.ID),
	}
}

// Render - первые limit монет в виде строк таблицы
func Render(coins []domain.Coin, cur domain.Currency, limit int) []Row {
	if limit > 0 && len(coins) > limit {
		coins = coins[:limit]
	}
	rows := make([]Row, 0, len(coins))
	for _, c := range coins {
		rows = append(rows, NewRow(c, cur))
	}
	return rows
}
