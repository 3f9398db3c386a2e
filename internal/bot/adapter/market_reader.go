package adapter

import (
	"context"

	"github.com/NastyaGoryachaya/crypto-market/internal/bot"
	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market/internal/listing"
)

// MarketService - то, что адаптеру нужно от сервиса рынка
type MarketService interface {
	AllCoins(ctx context.Context) ([]domain.Coin, error)
	CoinByID(ctx context.Context, id string) (domain.Coin, error)
	Currency() domain.Currency
}

// serviceMarketReader - адаптер, который превращает сервис рынка в интерфейс бота MarketReader.
type serviceMarketReader struct{ svc MarketService }

// NewMarketReader - конструктор адаптера над сервисом рынка.
func NewMarketReader(svc MarketService) bot.MarketReader {
	return serviceMarketReader{svc: svc}
}

// Listing - строки таблицы: весь рынок или монеты, в имени которых есть query.
func (a serviceMarketReader) Listing(ctx context.Context, query string, limit int) ([]listing.Row, error) {
	coins, err := a.svc.AllCoins(ctx)
	if err != nil {
		return nil, err
	}
	if query != "" {
		coins = listing.MatchName(coins, query)
	}
	return listing.Render(coins, a.svc.Currency(), limit), nil
}

// Coin - монета по идентификатору вместе с валютой.
func (a serviceMarketReader) Coin(ctx context.Context, id string) (bot.CoinDTO, error) {
	c, err := a.svc.CoinByID(ctx, id)
	if err != nil {
		return bot.CoinDTO{}, err
	}
	return bot.CoinDTO{Coin: c, Currency: a.svc.Currency()}, nil
}
