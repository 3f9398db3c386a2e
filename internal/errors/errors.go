package errors

import "errors"

var (
	ErrCoinNotFound      = errors.New("coin not found")
	ErrMarketUnavailable = errors.New("market data unavailable")
	ErrInternal          = errors.New("internal error")
)
