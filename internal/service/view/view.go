package view

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bassel-dev/crypto-dashboard/internal/domain"
	"github.com/bassel-dev/crypto-dashboard/internal/pkg/moneyfmt"
)

// Сборка готовых к отображению представлений: глобальный обзор и
// детали по монете. Состояние между запросами не хранится — каждый
// рендер заново выводится из текущего выбора пользователя.

// GlobalOverviewOption — сторожевой пункт выпадающего списка,
// переключающий дашборд в режим обзора рынка.
const GlobalOverviewOption = "Global Overview"

// chartNotice — текст вместо графиков, когда история недоступна.
const chartNotice = "chart data unavailable"

var windowOptions = []string{"7 Days", "30 Days", "90 Days"}

// WindowDays — подпись окна в число дней истории.
// Неизвестная подпись трактуется как "7 Days".
func WindowDays(label string) int {
	switch label {
	case "30 Days":
		return 30
	case "90 Days":
		return 90
	default:
		return 7
	}
}

// IsGlobalOverview — выбран ли пункт глобального обзора.
func IsGlobalOverview(selection string) bool {
	return selection == GlobalOverviewOption
}

// MarketData — срез рыночного сервиса, нужный представлениям.
type MarketData interface {
	TopMarkets(ctx context.Context) ([]domain.CoinSummary, error)
	CoinHistory(ctx context.Context, coinID string, days int) (domain.HistorySeries, error)
	GlobalStats(ctx context.Context) (*domain.GlobalStats, error)
}

// OverviewMetrics — три метрики панели обзора, уже отформатированные.
type OverviewMetrics struct {
	MarketCap    string `json:"market_cap"`
	Volume24h    string `json:"volume_24h"`
	BTCDominance string `json:"btc_dominance"`
}

// CoinRow — строка таблицы топ-100.
type CoinRow struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Price        float64 `json:"price"`
	Change24hPct float64 `json:"change_24h_pct"`
	MarketCap    float64 `json:"market_cap"`
}

// Overview — обзор рынка: метрики (могут отсутствовать) и таблица.
type Overview struct {
	Metrics *OverviewMetrics `json:"metrics,omitempty"`
	Table   []CoinRow        `json:"table"`
}

// Charts — три ряда для графиков: линия цены, столбцы объёма,
// область капитализации.
type Charts struct {
	Price     []domain.PricePoint `json:"price"`
	Volume    []domain.PricePoint `json:"volume"`
	MarketCap []domain.PricePoint `json:"market_cap"`
}

// CoinDetail — карточка монеты: идентичность, точечные метрики
// и графики за выбранное окно.
type CoinDetail struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	ImageURL    string  `json:"image_url"`
	Price       string  `json:"price"`
	Change24h   string  `json:"change_24h"`
	High24h     string  `json:"high_24h"`
	WindowDays  int     `json:"window_days"`
	Charts      *Charts `json:"charts,omitempty"`
	ChartNotice string  `json:"chart_notice,omitempty"`
}

// Options — значения виджетов выбора для презентационного слоя.
type Options struct {
	Views   []string `json:"views"`
	Windows []string `json:"windows"`
}

type Service interface {
	// Options — пункты выпадающего списка (обзор + имена монет
	// в порядке капитализации) и подписи окон.
	Options(ctx context.Context) (Options, error)
	// Overview — метрики рынка и таблица топ-100.
	Overview(ctx context.Context) (Overview, error)
	// CoinDetail — карточка монеты по точному имени и подписи окна.
	CoinDetail(ctx context.Context, name, windowLabel string) (CoinDetail, error)
}

type service struct {
	market   MarketData
	currency string
	logger   *slog.Logger
}

// NewService — конструктор сервиса представлений.
func NewService(market MarketData, currency string, logger *slog.Logger) Service {
	if currency == "" {
		currency = "eur"
	}
	return &service{
		market:   market,
		currency: strings.ToLower(currency),
		logger:   logger,
	}
}

func (s *service) Options(ctx context.Context) (Options, error) {
	coins, err := s.market.TopMarkets(ctx)
	if err != nil {
		return Options{}, err
	}

	views := make([]string, 0, len(coins)+1)
	views = append(views, GlobalOverviewOption)
	for _, coin := range coins {
		views = append(views, coin.Name)
	}
	return Options{
		Views:   views,
		Windows: append([]string(nil), windowOptions...),
	}, nil
}

func (s *service) Overview(ctx context.Context) (Overview, error) {
	coins, err := s.market.TopMarkets(ctx)
	if err != nil {
		return Overview{}, err
	}

	out := Overview{Table: make([]CoinRow, 0, len(coins))}
	for _, coin := range coins {
		out.Table = append(out.Table, CoinRow{
			Name:         coin.Name,
			Symbol:       coin.Symbol,
			Price:        coin.CurrentPrice,
			Change24hPct: coin.Change24hPct,
			MarketCap:    coin.MarketCap,
		})
	}

	// Снимок рынка необязателен: без него панель метрик просто не рисуется
	stats, err := s.market.GlobalStats(ctx)
	if err != nil || stats == nil {
		s.logger.Debug("overview without global metrics", "err", err)
		return out, nil
	}

	metrics := &OverviewMetrics{
		MarketCap:    moneyfmt.FormatAmount(mapValue(stats.TotalMarketCap, s.currency)),
		Volume24h:    moneyfmt.FormatAmount(mapValue(stats.TotalVolume, s.currency)),
		BTCDominance: "N/A",
	}
	if btc, ok := stats.MarketCapPercentage["btc"]; ok {
		metrics.BTCDominance = moneyfmt.FormatPercent(btc, 1)
	}
	out.Metrics = metrics
	return out, nil
}

func (s *service) CoinDetail(ctx context.Context, name, windowLabel string) (CoinDetail, error) {
	days := WindowDays(windowLabel)

	coins, err := s.market.TopMarkets(ctx)
	if err != nil {
		return CoinDetail{}, err
	}

	// Линейный поиск по точному имени: список не длиннее 100 строк
	var selected *domain.CoinSummary
	for i := range coins {
		if coins[i].Name == name {
			selected = &coins[i]
			break
		}
	}
	if selected == nil {
		s.logger.Warn("coin not found", "name", name)
		return CoinDetail{}, ErrCoinNotFound
	}

	detail := CoinDetail{
		Name:       selected.Name,
		Symbol:     strings.ToUpper(selected.Symbol),
		ImageURL:   selected.ImageURL,
		Price:      moneyfmt.FormatAmount(&selected.CurrentPrice),
		Change24h:  moneyfmt.FormatChange(selected.Change24hPct),
		High24h:    moneyfmt.FormatAmount(&selected.High24h),
		WindowDays: days,
	}

	history, err := s.market.CoinHistory(ctx, selected.ID, days)
	if err != nil {
		// Карточка живёт и без графиков, вместо них уведомление
		detail.ChartNotice = chartNotice
		return detail, nil
	}
	detail.Charts = &Charts{
		Price:     history.Prices,
		Volume:    history.Volumes,
		MarketCap: history.MarketCaps,
	}
	return detail, nil
}

// mapValue — значение карты по ключу либо nil, если ключа нет
// (nil отобразится как "N/A").
func mapValue(m map[string]float64, key string) *float64 {
	if v, ok := m[key]; ok {
		return &v
	}
	return nil
}
