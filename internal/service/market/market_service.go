package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
	derrors "github.com/NastyaGoryachaya/crypto-market/internal/errors"
	"github.com/NastyaGoryachaya/crypto-market/internal/repository"
)

//go:generate mockgen -source=market_service.go -destination=mocks/market_service.go -package=mocks

// SnapshotReader - сохранённый снапшот (Postgres), нужен для тёплого старта
type SnapshotReader interface {
	Latest(ctx context.Context) ([]domain.Coin, error)
	CoinByID(ctx context.Context, id string) (domain.Coin, error)
}

// Service - чтение рынка для транспортов: сначала Hub, затем хранилище
type Service struct {
	hub    *Hub
	repo   SnapshotReader
	logger *slog.Logger
}

// NewService - repo может быть nil, тогда сервис работает только из памяти
func NewService(hub *Hub, repo SnapshotReader, logger *slog.Logger) *Service {
	return &Service{hub: hub, repo: repo, logger: logger}
}

// AllCoins - весь список монет в порядке источника
func (s *Service) AllCoins(ctx context.Context) ([]domain.Coin, error) {
	if coins := s.hub.Snapshot(); len(coins) > 0 {
		return coins, nil
	}
	if s.repo == nil {
		s.logger.Warn("market snapshot is empty")
		return nil, derrors.ErrMarketUnavailable
	}

	coins, err := s.repo.Latest(ctx)
	if err != nil {
		s.logger.Error("failed to load stored snapshot", "err", err)
		return nil, fmt.Errorf("%w: load snapshot: %v", derrors.ErrInternal, err)
	}
	if len(coins) == 0 {
		s.logger.Warn("no stored snapshot available")
		return nil, derrors.ErrMarketUnavailable
	}

	// тёплый старт: снапшот из БД становится общим, только если свежие данные ещё не пришли
	if s.hub.PublishIfEmpty(coins) {
		s.logger.Info("market warmed from storage", "count", len(coins))
	} else {
		s.logger.Debug("fresh snapshot arrived during warm start, stored one dropped")
	}
	return s.hub.Snapshot(), nil
}

// CoinByID - монета по идентификатору CoinGecko
func (s *Service) CoinByID(ctx context.Context, id string) (domain.Coin, error) {
	for _, c := range s.hub.Snapshot() {
		if c.ID == id {
			return c, nil
		}
	}
	if s.repo == nil {
		return domain.Coin{}, derrors.ErrCoinNotFound
	}

	c, err := s.repo.CoinByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("coin not found", "id", id)
			return domain.Coin{}, derrors.ErrCoinNotFound
		}
		s.logger.Error("failed to get coin by id", "id", id, "err", err)
		return domain.Coin{}, fmt.Errorf("%w: coin by id: %v", derrors.ErrInternal, err)
	}
	return c, nil
}

func (s *Service) Currency() domain.Currency {
	return s.hub.Currency()
}
