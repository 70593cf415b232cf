package market

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bassel-dev/crypto-dashboard/internal/domain"
	"github.com/bassel-dev/crypto-dashboard/internal/pkg/cache"
)

// Кэширующий слой над провайдером рыночных данных: три операции,
// каждая со своим TTL. Ошибки провайдера переводятся в типизированные
// сигналы, чтобы вызывающий отличал "данных нет" от "запрос упал".

type Service interface {
	// TopMarkets — верхняя страница рынка, не длиннее настроенного page_size.
	// Пустой список при nil-ошибке означает "монет нет", а не сбой.
	TopMarkets(ctx context.Context) ([]domain.CoinSummary, error)
	// CoinHistory — три ряда истории монеты за окно в днях.
	// Ряды валидируются совместно: либо все три, либо ErrHistoryUnavailable.
	CoinHistory(ctx context.Context, coinID string, days int) (domain.HistorySeries, error)
	// GlobalStats — общий снимок рынка; при сбое ErrGlobalUnavailable,
	// вызывающий прячет панель метрик.
	GlobalStats(ctx context.Context) (*domain.GlobalStats, error)
}

// Provider — сырой доступ к upstream API (см. infra/coingecko).
type Provider interface {
	ListMarkets(ctx context.Context, perPage, page int) ([]domain.CoinSummary, error)
	MarketChart(ctx context.Context, coinID string, days int) (domain.HistorySeries, error)
	Global(ctx context.Context) (*domain.GlobalStats, error)
}

type Config struct {
	PageSize   int
	Page       int
	MarketsTTL time.Duration
	HistoryTTL time.Duration
	GlobalTTL  time.Duration
}

type service struct {
	provider Provider
	store    *cache.Cache
	cfg      Config
	logger   *slog.Logger
}

// NewService — конструктор кэширующего сервиса рыночных данных.
func NewService(provider Provider, store *cache.Cache, cfg Config, logger *slog.Logger) Service {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.Page <= 0 {
		cfg.Page = 1
	}
	if cfg.MarketsTTL <= 0 {
		cfg.MarketsTTL = 10 * time.Minute
	}
	if cfg.HistoryTTL <= 0 {
		cfg.HistoryTTL = 5 * time.Minute
	}
	if cfg.GlobalTTL <= 0 {
		cfg.GlobalTTL = 5 * time.Minute
	}
	return &service{
		provider: provider,
		store:    store,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *service) TopMarkets(ctx context.Context) ([]domain.CoinSummary, error) {
	key := fmt.Sprintf("markets|%d|%d", s.cfg.PageSize, s.cfg.Page)
	v, err := s.store.GetOrFetch(ctx, key, s.cfg.MarketsTTL, func(ctx context.Context) (any, error) {
		coins, err := s.provider.ListMarkets(ctx, s.cfg.PageSize, s.cfg.Page)
		if err != nil {
			return nil, err
		}
		return coins, nil
	})
	if err != nil {
		s.logger.Error("fetch top markets", "err", err)
		return nil, ErrMarketsUnavailable
	}

	coins := v.([]domain.CoinSummary)
	// API не обязан уважать per_page, контракт выше — обязан
	if len(coins) > s.cfg.PageSize {
		coins = coins[:s.cfg.PageSize]
	}
	return coins, nil
}

func (s *service) CoinHistory(ctx context.Context, coinID string, days int) (domain.HistorySeries, error) {
	if coinID == "" {
		return domain.HistorySeries{}, ErrHistoryUnavailable
	}

	key := fmt.Sprintf("history|%s|%d", coinID, days)
	v, err := s.store.GetOrFetch(ctx, key, s.cfg.HistoryTTL, func(ctx context.Context) (any, error) {
		series, err := s.provider.MarketChart(ctx, coinID, days)
		if err != nil {
			return nil, err
		}
		if err := validateSeries(series); err != nil {
			return nil, err
		}
		return series, nil
	})
	if err != nil {
		s.logger.Error("fetch coin history", "coin_id", coinID, "days", days, "err", err)
		return domain.HistorySeries{}, ErrHistoryUnavailable
	}
	return v.(domain.HistorySeries), nil
}

func (s *service) GlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	v, err := s.store.GetOrFetch(ctx, "global", s.cfg.GlobalTTL, func(ctx context.Context) (any, error) {
		stats, err := s.provider.Global(ctx)
		if err != nil {
			return nil, err
		}
		return stats, nil
	})
	if err != nil {
		s.logger.Error("fetch global stats", "err", err)
		return nil, ErrGlobalUnavailable
	}
	return v.(*domain.GlobalStats), nil
}

// validateSeries — три ряда принимаются только вместе: одинаковая
// ненулевая длина и строго возрастающие отметки времени в каждом.
func validateSeries(hs domain.HistorySeries) error {
	n := len(hs.Prices)
	if n == 0 || len(hs.MarketCaps) != n || len(hs.Volumes) != n {
		return fmt.Errorf("inconsistent history: %d/%d/%d points",
			len(hs.Prices), len(hs.MarketCaps), len(hs.Volumes))
	}
	for _, series := range [][]domain.PricePoint{hs.Prices, hs.MarketCaps, hs.Volumes} {
		for i := 1; i < len(series); i++ {
			if !series[i].Timestamp.After(series[i-1].Timestamp) {
				return fmt.Errorf("timestamps out of order at index %d", i)
			}
		}
	}
	return nil
}
