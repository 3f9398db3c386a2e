package httptransport

import (
	"errors"

	derrors "github.com/NastyaGoryachaya/crypto-market/internal/errors"
	"github.com/NastyaGoryachaya/crypto-market/internal/ports/errcode"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, derrors.ErrCoinNotFound):
		return errcode.NotFoundCoins
	case errors.Is(err, derrors.ErrMarketUnavailable):
		return errcode.MarketUnavailable
	default:
		return errcode.Internal
	}
}
