package httptransport

import (
	"errors"

	"github.com/bassel-dev/crypto-dashboard/internal/ports/errcode"
	"github.com/bassel-dev/crypto-dashboard/internal/service/market"
	"github.com/bassel-dev/crypto-dashboard/internal/service/view"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, view.ErrCoinNotFound):
		return errcode.NotFoundCoin
	case errors.Is(err, market.ErrMarketsUnavailable):
		return errcode.MarketsUnavailable
	case errors.Is(err, market.ErrGlobalUnavailable):
		return errcode.GlobalUnavailable
	default:
		return errcode.Internal
	}
}
