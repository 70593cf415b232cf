package bot

import (
	"errors"

	"github.com/bassel-dev/crypto-dashboard/internal/service/market"
	"github.com/bassel-dev/crypto-dashboard/internal/service/view"
)

func translateBotError(err error) string {
	switch {
	case errors.Is(err, view.ErrCoinNotFound):
		return "Монета не найдена в топ-100"
	case errors.Is(err, market.ErrMarketsUnavailable),
		errors.Is(err, market.ErrGlobalUnavailable):
		return "Данные рынка сейчас недоступны, попробуйте позже"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
