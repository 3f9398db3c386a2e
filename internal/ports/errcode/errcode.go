package errcode

type Code string

const (
	NotFoundCoins     Code = "NOT_FOUND_COINS"
	MarketUnavailable Code = "MARKET_UNAVAILABLE"

	QueryRequired Code = "QUERY_REQUIRED"
	BadRequest    Code = "BAD_REQUEST"
	Internal      Code = "INTERNAL_ERROR"
)
