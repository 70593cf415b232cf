package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/telebot.v4"
)

// handleStart — отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Привет! Доступные команды:\n" +
		"/overview - обзор рынка: капитализация, объём, доминация BTC\n" +
		"/coin {name} - карточка монеты по имени (например /coin Bitcoin)")
}

// handleOverview — выводит глобальные метрики рынка
func (b *Bot) handleOverview(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	overview, err := b.market.GetOverview(ctx)
	if err != nil {
		b.logger.Warn("bot: /overview failed", slog.String("error", err.Error()))
		return c.Send(translateBotError(err))
	}
	return c.Send(formatOverview(overview))
}

// handleCoin — выводит карточку монеты по точному имени.
// Имя может состоять из нескольких слов (например "Bitcoin Cash")
func (b *Bot) handleCoin(c telebot.Context) error {
	name := strings.TrimSpace(strings.Join(c.Args(), " "))
	if name == "" {
		return c.Send("Укажи имя монеты: /coin Bitcoin")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	coin, err := b.market.GetCoin(ctx, name)
	if err != nil {
		b.logger.Debug("bot: /coin failed",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return c.Send(translateBotError(err))
	}
	return c.Send(formatCoin(coin))
}
