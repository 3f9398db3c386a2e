package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market/internal/listing"
	"github.com/NastyaGoryachaya/crypto-market/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

//go:generate mockgen -source=http.go -destination=mocks/http.go -package=mocks

// MarketReader - абстракция для чтения общего рынка.
type MarketReader interface {
	AllCoins(ctx context.Context) ([]domain.Coin, error)
	CoinByID(ctx context.Context, id string) (domain.Coin, error)
	Currency() domain.Currency
}

// Listing - ответ /listing: строки таблицы в том виде, в каком их видит пользователь.
type Listing struct {
	Currency domain.Currency `json:"currency"`
	Query    string          `json:"query,omitempty"`
	Exact    bool            `json:"exact,omitempty"`
	Rows     []listing.Row   `json:"rows"`
}

// MarketHandler - HTTP‑handler для рынка монет.
type MarketHandler struct {
	logger  *slog.Logger
	svc     MarketReader
	timeout time.Duration
	rows    int
}

func NewMarketHandler(logger *slog.Logger, svc MarketReader, timeout time.Duration, rows int) *MarketHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	if rows <= 0 {
		rows = listing.DefaultRows
	}
	return &MarketHandler{
		logger:  logger,
		svc:     svc,
		timeout: timeout,
		rows:    rows,
	}
}

func (h *MarketHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/coins", h.GetCoins)
	r.GET("/coins/suggest", h.Suggest)
	r.GET("/coins/search", h.Search)
	r.GET("/coins/:id", h.GetCoinByID)
	r.GET("/listing", h.GetListing)
}

func (h *MarketHandler) GetCoins(c echo.Context) error {
	coins, err := h.allCoins(c)
	if err != nil {
		return h.writeError(c, "GetCoins", err)
	}
	return c.JSON(http.StatusOK, coins)
}

// Suggest - подсказки автодополнения; пустой запрос даёт пустой список
func (h *MarketHandler) Suggest(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusOK, []domain.Coin{})
	}

	coins, err := h.allCoins(c)
	if err != nil {
		return h.writeError(c, "Suggest", err)
	}
	return c.JSON(http.StatusOK, listing.Suggest(coins, q))
}

// Search - отправка формы поиска: подстрока в имени, запрос обязателен
func (h *MarketHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "query_required",
		})
	}

	coins, err := h.allCoins(c)
	if err != nil {
		return h.writeError(c, "Search", err)
	}
	return c.JSON(http.StatusOK, listing.MatchName(coins, q))
}

func (h *MarketHandler) GetCoinByID(c echo.Context) error {
	id := strings.ToLower(strings.TrimSpace(c.Param("id")))
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "id_required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	coin, err := h.svc.CoinByID(ctx, id)
	if err != nil {
		if FromServiceError(err) == errcode.NotFoundCoins {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "coin_not_found",
				"id":    id,
			})
		}
		return h.writeError(c, "GetCoinByID", err)
	}
	return c.JSON(http.StatusOK, coin)
}

// GetListing - строки таблицы; exact=true включает точное совпадение имени (выбор подсказки)
func (h *MarketHandler) GetListing(c echo.Context) error {
	q := c.QueryParam("q")
	exact := false
	if raw := c.QueryParam("exact"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "bad_request",
			})
		}
		exact = v
	}

	coins, err := h.allCoins(c)
	if err != nil {
		return h.writeError(c, "GetListing", err)
	}

	switch {
	case q == "":
	case exact:
		coins = listing.MatchExact(coins, q)
	default:
		coins = listing.MatchName(coins, q)
	}

	cur := h.svc.Currency()
	return c.JSON(http.StatusOK, Listing{
		Currency: cur,
		Query:    q,
		Exact:    exact,
		Rows:     listing.Render(coins, cur, h.rows),
	})
}

func (h *MarketHandler) allCoins(c echo.Context) ([]domain.Coin, error) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()
	return h.svc.AllCoins(ctx)
}

func (h *MarketHandler) writeError(c echo.Context, op string, err error) error {
	switch FromServiceError(err) {
	case errcode.MarketUnavailable:
		// Снапшот ещё не получен - 503
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "market_unavailable",
		})
	case errcode.NotFoundCoins:
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "coin_not_found",
		})
	default:
		h.logger.Error("market request failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal_server_error",
		})
	}
}
