package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/bassel-dev/crypto-dashboard/internal/domain"
)

// MarketsSource — то, что прогреваем: кэширующая операция топа рынка.
type MarketsSource interface {
	TopMarkets(ctx context.Context) ([]domain.CoinSummary, error)
}

// Scheduler — фоновый прогрев кэша топа рынка, чтобы первый рендер
// после истечения TTL не ждал upstream. Ошибки не всплывают дальше лога.
type Scheduler struct {
	markets  MarketsSource
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler — конструктор планировщика прогрева кэша
func NewScheduler(markets MarketsSource, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		markets:  markets,
		interval: interval,
		logger:   logger,
	}
}

// Start — запускает периодическое выполнение задачи до остановки контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("cache warmer started")
	s.logger.Debug("warmer interval configured", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// первый запуск сразу
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("cache warmer stopped")
			return
		}
	}
}

// runOnce — одна итерация: запросить топ рынка и тем самым обновить кэш
func (s *Scheduler) runOnce(ctx context.Context) {
	s.logger.Debug("tick: warming markets cache")
	coins, err := s.markets.TopMarkets(ctx)
	if err != nil {
		s.logger.Error("tick: warm failed", slog.Any("err", err))
		return
	}
	s.logger.Debug("tick: completed", slog.Int("coins", len(coins)))
}
