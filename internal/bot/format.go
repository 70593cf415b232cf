package bot

import (
	"fmt"
	"strings"
)

// formatOverview — сообщение для команды /overview
func formatOverview(o OverviewDTO) string {
	var bld strings.Builder
	bld.WriteString("Рынок криптовалют\n")
	if o.HasMetrics {
		fmt.Fprintf(&bld, "Капитализация: %s\n", o.MarketCap)
		fmt.Fprintf(&bld, "Объём за 24ч: %s\n", o.Volume24h)
		fmt.Fprintf(&bld, "Доминация BTC: %s\n", o.BTCDominance)
	} else {
		bld.WriteString("Метрики рынка сейчас недоступны\n")
	}
	fmt.Fprintf(&bld, "Монет в топе: %d", o.Coins)
	return bld.String()
}

// formatCoin — сообщение для команды /coin {name}
func formatCoin(c CoinDTO) string {
	return fmt.Sprintf(
		"%s (%s)\nЦена: %s\nИзменение за 24ч: %s\nМаксимум за 24ч: %s",
		c.Name,
		c.Symbol,
		c.Price,
		c.Change24h,
		c.High24h,
	)
}
