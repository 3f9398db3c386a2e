package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
)

//go:generate mockgen -source=fetch_service.go -destination=mocks/fetch_service.go -package=mocks

type Service interface {
	FetchAndPublish(ctx context.Context) error
}

// MarketProvider - внешний источник рынка (CoinGecko)
type MarketProvider interface {
	FetchMarket(ctx context.Context) ([]domain.Coin, error)
}

// SnapshotWriter - хранилище последнего снапшота
type SnapshotWriter interface {
	SaveSnapshot(ctx context.Context, coins []domain.Coin) error
}

// Publisher - общий контекст рынка, который читают UI и транспорты
type Publisher interface {
	Publish(coins []domain.Coin)
}

type fetchService struct {
	provider  MarketProvider
	store     SnapshotWriter
	publisher Publisher
	logger    *slog.Logger
}

// NewService - конструктор сервиса получения рынка; store может быть nil (без БД)
func NewService(provider MarketProvider, store SnapshotWriter, publisher Publisher, logger *slog.Logger) Service {
	return &fetchService{
		provider:  provider,
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// FetchAndPublish - запрашивает рынок у провайдера, сохраняет снапшот и публикует его.
// Ошибка сохранения не мешает публикации: UI важнее свежие данные.
func (s *fetchService) FetchAndPublish(ctx context.Context) error {
	started := time.Now()
	coins, err := s.provider.FetchMarket(ctx)
	if err != nil {
		s.logger.Error("fetch market", "err", err)
		return fmt.Errorf("fetch market: %w", err)
	}
	if len(coins) == 0 {
		s.logger.Warn("provider returned empty market, keeping previous snapshot")
		return nil
	}

	if s.store != nil {
		if err := s.store.SaveSnapshot(ctx, coins); err != nil {
			s.logger.Warn("save snapshot to db failed", "count", len(coins), "err", err)
		}
	}

	s.publisher.Publish(coins)
	s.logger.Debug("market published", "count", len(coins), "duration", time.Since(started))
	return nil
}
