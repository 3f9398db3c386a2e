package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/service/fetch"
)

const defaultInterval = 5 * time.Minute

// Scheduler - периодическое обновление общего рынка
type Scheduler struct {
	fetchService fetch.Service
	interval     time.Duration
	logger       *slog.Logger

	failures int // подряд неудачных циклов
}

// NewScheduler - interval <= 0 заменяется на 5 минут
func NewScheduler(fetchService fetch.Service, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		fetchService: fetchService,
		interval:     interval,
		logger:       logger.With(slog.String("component", "scheduler")),
	}
}

// Start - первый цикл сразу, дальше по тикеру; блокирует до отмены ctx
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("market refresh started", slog.Duration("interval", s.interval))
	defer s.logger.Info("market refresh stopped")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.refresh(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	started := time.Now()
	if err := s.fetchService.FetchAndPublish(ctx); err != nil {
		s.failures++
		s.logger.Error("market refresh failed",
			slog.Int("consecutive_failures", s.failures),
			slog.Any("err", err),
		)
		return
	}
	if s.failures > 0 {
		s.logger.Info("market refresh recovered", slog.Int("after_failures", s.failures))
	}
	s.failures = 0
	s.logger.Debug("market refreshed", slog.Duration("took", time.Since(started)))
}
