package errcode

type Code string

const (
	NotFoundCoin Code = "COIN_NOT_FOUND"

	MarketsUnavailable Code = "MARKETS_UNAVAILABLE"
	GlobalUnavailable  Code = "GLOBAL_UNAVAILABLE"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
