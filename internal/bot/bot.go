package bot

import (
	"context"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"
)

// Config — конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
}

// OverviewDTO — метрики рынка для сообщения /overview
type OverviewDTO struct {
	MarketCap    string
	Volume24h    string
	BTCDominance string
	HasMetrics   bool
	Coins        int
}

// CoinDTO — карточка монеты для сообщения /coin {name}
type CoinDTO struct {
	Name      string
	Symbol    string
	Price     string
	Change24h string
	High24h   string
}

// MarketReader — интерфейс для чтения рыночных представлений
type MarketReader interface {
	GetOverview(ctx context.Context) (OverviewDTO, error)
	GetCoin(ctx context.Context, name string) (CoinDTO, error)
}

// Bot — телеграм-интерфейс дашборда. Никаких подписок и хранимого
// состояния: каждая команда — один запрос к сервису представлений.
type Bot struct {
	bot    *telebot.Bot
	market MarketReader
	logger *slog.Logger
}

// New создаёт новый экземпляр бота
func New(cfg Config, market MarketReader, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:    b,
		market: market,
		logger: logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/overview", bot.handleOverview)
	b.Handle("/coin", bot.handleCoin)
	return bot, nil
}

// Start запускает бота
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
