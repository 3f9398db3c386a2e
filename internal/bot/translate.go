package bot

import (
	"errors"

	derrors "github.com/NastyaGoryachaya/crypto-market/internal/errors"
	"github.com/NastyaGoryachaya/crypto-market/internal/ports/errcode"
)

func fromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, derrors.ErrCoinNotFound):
		return errcode.NotFoundCoins
	case errors.Is(err, derrors.ErrMarketUnavailable):
		return errcode.MarketUnavailable
	default:
		return errcode.Internal
	}
}

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.NotFoundCoins:
		return "Монета не найдена"
	case errcode.MarketUnavailable:
		return "Данные рынка ещё не загружены, попробуйте позже"
	case errcode.QueryRequired:
		return "Укажи текст для поиска: /search bit"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
