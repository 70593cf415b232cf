package view_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/bassel-dev/crypto-dashboard/internal/domain"
	"github.com/bassel-dev/crypto-dashboard/internal/service/market"
	"github.com/bassel-dev/crypto-dashboard/internal/service/view"
	viewmocks "github.com/bassel-dev/crypto-dashboard/internal/service/view/mocks"
	"github.com/golang/mock/gomock"
)

func sampleCoins() []domain.CoinSummary {
	return []domain.CoinSummary{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 50000, Change24hPct: -2.5, MarketCap: 980_000_000_000, High24h: 51500, ImageURL: "https://img.example/btc.png"},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: 2600, Change24hPct: 1.1, MarketCap: 310_000_000_000, High24h: 2700, ImageURL: "https://img.example/eth.png"},
	}
}

func sampleHistory(n int) domain.HistorySeries {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	series := func(start float64) []domain.PricePoint {
		points := make([]domain.PricePoint, 0, n)
		for i := 0; i < n; i++ {
			points = append(points, domain.PricePoint{
				Timestamp: base.Add(time.Duration(i) * time.Hour),
				Value:     start + float64(i),
			})
		}
		return points
	}
	return domain.HistorySeries{
		Prices:     series(50000),
		MarketCaps: series(980_000_000_000),
		Volumes:    series(30_000_000_000),
	}
}

// Подписи окон отображаются в дни, незнакомая подпись — это неделя
func TestWindowDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  int
	}{
		{"7 Days", 7},
		{"30 Days", 30},
		{"90 Days", 90},
		{"", 7},
		{"1 Year", 7},
		{"30 days", 7}, // подписи сравниваются точно
	}
	for _, tc := range tests {
		if got := view.WindowDays(tc.label); got != tc.want {
			t.Errorf("WindowDays(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

// Success: метрики отформатированы, таблица спроецирована на пять колонок
func TestOverview_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := viewmocks.NewMockMarketData(ctrl)
	md.EXPECT().TopMarkets(gomock.Any()).Return(sampleCoins(), nil).Times(1)
	md.EXPECT().GlobalStats(gomock.Any()).Return(&domain.GlobalStats{
		TotalMarketCap:      map[string]float64{"eur": 2_500_000_000},
		TotalVolume:         map[string]float64{"eur": 1_200_000},
		MarketCapPercentage: map[string]float64{"btc": 58.34},
	}, nil).Times(1)

	svc := view.NewService(md, "eur", slog.Default())

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Metrics == nil {
		t.Fatal("metrics missing")
	}
	if overview.Metrics.MarketCap != "€ 2.50 Mrd." {
		t.Errorf("market cap = %q", overview.Metrics.MarketCap)
	}
	if overview.Metrics.Volume24h != "€ 1.20 Mio." {
		t.Errorf("volume = %q", overview.Metrics.Volume24h)
	}
	if overview.Metrics.BTCDominance != "58.3 %" {
		t.Errorf("dominance = %q", overview.Metrics.BTCDominance)
	}
	if len(overview.Table) != 2 {
		t.Fatalf("table rows = %d", len(overview.Table))
	}
	row := overview.Table[0]
	if row.Name != "Bitcoin" || row.Symbol != "btc" || row.Price != 50000 ||
		row.Change24hPct != -2.5 || row.MarketCap != 980_000_000_000 {
		t.Errorf("unexpected row: %+v", row)
	}
}

// Снимок рынка недоступен — панель метрик опускается, таблица остаётся
func TestOverview_GlobalUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := viewmocks.NewMockMarketData(ctrl)
	md.EXPECT().TopMarkets(gomock.Any()).Return(sampleCoins(), nil).Times(1)
	md.EXPECT().GlobalStats(gomock.Any()).Return(nil, market.ErrGlobalUnavailable).Times(1)

	svc := view.NewService(md, "eur", slog.Default())

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Metrics != nil {
		t.Errorf("metrics should be omitted: %+v", overview.Metrics)
	}
	if len(overview.Table) != 2 {
		t.Errorf("table rows = %d", len(overview.Table))
	}
}

// Валюты нет в снимке — метрика отображается как N/A, а не как ноль
func TestOverview_MissingCurrencyKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := viewmocks.NewMockMarketData(ctrl)
	md.EXPECT().TopMarkets(gomock.Any()).Return(sampleCoins(), nil).Times(1)
	md.EXPECT().GlobalStats(gomock.Any()).Return(&domain.GlobalStats{
		TotalMarketCap:      map[string]float64{"usd": 2_700_000_000},
		TotalVolume:         map[string]float64{},
		MarketCapPercentage: map[string]float64{},
	}, nil).Times(1)

	svc := view.NewService(md, "eur", slog.Default())

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Metrics == nil {
		t.Fatal("metrics missing")
	}
	if overview.Metrics.MarketCap != "N/A" || overview.Metrics.Volume24h != "N/A" || overview.Metrics.BTCDominance != "N/A" {
		t.Errorf("unexpected metrics: %+v", overview.Metrics)
	}
}

// Рынок недоступен — ошибка уходит транспорту как есть
func TestOverview_MarketsUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := viewmocks.NewMockMarketData(ctrl)
	md.EXPECT().TopMarkets(gomock.Any()).Return(nil, market.ErrMarketsUnavailable).Times(1)
	md.EXPECT().GlobalStats(gomock.Any()).Times(0)

	svc := view.NewService(md, "eur", slog.Default())

	if _, err := svc.Overview(ctx); !errors.Is(err, market.ErrMarketsUnavailable) {
		t.Fatalf("expected ErrMarketsUnavailable, got %v", err)
	}
}

// Сторожевой пункт списка первый, дальше монеты в порядке капитализации
func TestOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := viewmocks.NewMockMarketData(ctrl)
	md.EXPECT().TopMarkets(gomock.Any()).Return(sampleCoins(), nil).Times(1)

	svc := view.NewService(md, "eur", slog.Default())

	opts, err := svc.Options(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Global Overview", "Bitcoin", "Ethereum"}
	if len(opts.Views) != len(want) {
		t.Fatalf("views = %v", opts.Views)
	}
	for i := range want {
		if opts.Views[i] != want[i] {
			t.Errorf("views[%d] = %q, want %q", i, opts.Views[i], want[i])
		}
	}
	if len(opts.Windows) != 3 || opts.Windows[0] != "7 Days" || opts.Windows[2] != "90 Days" {
		t.Errorf("windows = %v", opts.Windows)
	}
}

// Поиск идёт по точному имени, монеты вне топа не существуют для карточки
func TestCoinDetail_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := viewmocks.NewMockMarketData(ctrl)
	md.EXPECT().TopMarkets(gomock.Any()).Return(sampleCoins(), nil).Times(1)
	md.EXPECT().CoinHistory(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := view.NewService(md, "eur", slog.Default())

	if _, err := svc.CoinDetail(ctx, "bitcoin", "7 Days"); !errors.Is(err, view.ErrCoinNotFound) {
		t.Fatalf("expected ErrCoinNotFound (имена сравниваются точно), got %v", err)
	}
}

// История упала — карточка живёт, вместо графиков уведомление
func TestCoinDetail_HistoryUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := viewmocks.NewMockMarketData(ctrl)
	md.EXPECT().TopMarkets(gomock.Any()).Return(sampleCoins(), nil).Times(1)
	md.EXPECT().CoinHistory(gomock.Any(), "ethereum", 7).
		Return(domain.HistorySeries{}, market.ErrHistoryUnavailable).
		Times(1)

	svc := view.NewService(md, "eur", slog.Default())

	detail, err := svc.CoinDetail(ctx, "Ethereum", "7 Days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Charts != nil {
		t.Errorf("charts should be nil: %+v", detail.Charts)
	}
	if detail.ChartNotice != "chart data unavailable" {
		t.Errorf("chart notice = %q", detail.ChartNotice)
	}
}

// Сквозной сценарий: выбор "Bitcoin" + окно "30 Days" запрашивает
// историю на 30 дней и не трогает глобальный снимок
func TestCoinDetail_BitcoinThirtyDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := viewmocks.NewMockMarketData(ctrl)
	md.EXPECT().TopMarkets(gomock.Any()).Return(sampleCoins(), nil).Times(1)
	md.EXPECT().CoinHistory(gomock.Any(), "bitcoin", 30).
		Return(sampleHistory(5), nil).
		Times(1)
	md.EXPECT().GlobalStats(gomock.Any()).Times(0)

	svc := view.NewService(md, "eur", slog.Default())

	detail, err := svc.CoinDetail(ctx, "Bitcoin", "30 Days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Name != "Bitcoin" || detail.Symbol != "BTC" {
		t.Errorf("identity: %q / %q", detail.Name, detail.Symbol)
	}
	if detail.ImageURL != "https://img.example/btc.png" {
		t.Errorf("image: %q", detail.ImageURL)
	}
	if detail.Price != "€ 50,000.00" {
		t.Errorf("price = %q", detail.Price)
	}
	if detail.Change24h != "-2.50 %" {
		t.Errorf("change = %q", detail.Change24h)
	}
	if detail.High24h != "€ 51,500.00" {
		t.Errorf("high = %q", detail.High24h)
	}
	if detail.WindowDays != 30 {
		t.Errorf("window = %d", detail.WindowDays)
	}
	if detail.Charts == nil {
		t.Fatal("charts missing")
	}
	if len(detail.Charts.Price) != 5 || len(detail.Charts.Volume) != 5 || len(detail.Charts.MarketCap) != 5 {
		t.Errorf("series lengths: %d/%d/%d",
			len(detail.Charts.Price), len(detail.Charts.Volume), len(detail.Charts.MarketCap))
	}
	if detail.ChartNotice != "" {
		t.Errorf("unexpected notice: %q", detail.ChartNotice)
	}
}
