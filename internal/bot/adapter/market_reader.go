package adapter

import (
	"context"

	"github.com/bassel-dev/crypto-dashboard/internal/bot"
	"github.com/bassel-dev/crypto-dashboard/internal/service/view"
)

// serviceMarketReader — адаптер, который превращает сервис представлений
// в интерфейс бота MarketReader.

type serviceMarketReader struct{ svc view.Service }

// NewMarketReader — конструктор адаптера над сервисом представлений.
func NewMarketReader(svc view.Service) bot.MarketReader {
	return serviceMarketReader{svc: svc}
}

// GetOverview — глобальные метрики и размер топа в формате DTO бота.
func (a serviceMarketReader) GetOverview(ctx context.Context) (bot.OverviewDTO, error) {
	o, err := a.svc.Overview(ctx)
	if err != nil {
		return bot.OverviewDTO{}, err
	}
	out := bot.OverviewDTO{Coins: len(o.Table)}
	if o.Metrics != nil {
		out.HasMetrics = true
		out.MarketCap = o.Metrics.MarketCap
		out.Volume24h = o.Metrics.Volume24h
		out.BTCDominance = o.Metrics.BTCDominance
	}
	return out, nil
}

// GetCoin — точечные метрики монеты в формате DTO бота.
// Окно истории боту не нужно, графики он не показывает.
func (a serviceMarketReader) GetCoin(ctx context.Context, name string) (bot.CoinDTO, error) {
	d, err := a.svc.CoinDetail(ctx, name, "")
	if err != nil {
		return bot.CoinDTO{}, err
	}
	return bot.CoinDTO{
		Name:      d.Name,
		Symbol:    d.Symbol,
		Price:     d.Price,
		Change24h: d.Change24h,
		High24h:   d.High24h,
	}, nil
}
