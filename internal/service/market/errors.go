package market

import "errors"

var (
	ErrMarketsUnavailable = errors.New("top markets unavailable")
	ErrHistoryUnavailable = errors.New("history unavailable")
	ErrGlobalUnavailable  = errors.New("global stats unavailable")
)
