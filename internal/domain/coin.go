package domain

import (
	"strings"
	"time"
)

// Coin - рыночный снимок одной криптовалюты (поля повторяют ответ CoinGecko /coins/markets)
type Coin struct {
	ID                           string    `json:"id"`     // bitcoin
	Name                         string    `json:"name"`   // Bitcoin
	Symbol                       string    `json:"symbol"` // btc
	Image                        string    `json:"image"`
	CurrentPrice                 float64   `json:"current_price"`
	MarketCap                    float64   `json:"market_cap"`
	MarketCapRank                int       `json:"market_cap_rank"`
	MarketCapChangePercentage24h float64   `json:"market_cap_change_percentage_24h"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

// Currency - валюта котировок и её символ для отображения
type Currency struct {
	Code   string `json:"code"`   // usd
	Symbol string `json:"symbol"` // $
}

var currencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"inr": "₹",
}

// CurrencyFor - валюта по коду; для неизвестных кодов символом служит сам код
func CurrencyFor(code string) Currency {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		code = "usd"
	}
	if sym, ok := currencySymbols[code]; ok {
		return Currency{Code: code, Symbol: sym}
	}
	return Currency{Code: code, Symbol: strings.ToUpper(code)}
}
