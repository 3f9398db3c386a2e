package api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/config"
	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
)

const defaultUserAgent = "crypto-market/1.0 (+https://github.com/NastyaGoryachaya/crypto-market)"

type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
	now        func() time.Time
}

// marketResponse - структура для парсинга элемента ответа /coins/markets
type marketResponse struct {
	ID                           string   `json:"id"`
	Symbol                       string   `json:"symbol"`
	Name                         string   `json:"name"`
	Image                        string   `json:"image"`
	CurrentPrice                 *float64 `json:"current_price"`
	MarketCap                    *float64 `json:"market_cap"`
	MarketCapRank                *int     `json:"market_cap_rank"`
	MarketCapChangePercentage24h *float64 `json:"market_cap_change_percentage_24h"`
	LastUpdated                  string   `json:"last_updated"`
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Currency - валюта, в которой запрашиваются котировки
func (c *Client) Currency() domain.Currency {
	return domain.CurrencyFor(c.cfg.Currency)
}

// FetchMarket - получает рыночную таблицу монет по API CoinGecko, порядок сохраняется как в ответе
func (c *Client) FetchMarket(ctx context.Context) ([]domain.Coin, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath("coins", "markets")

	q := u.Query()
	q.Set("vs_currency", c.Currency().Code)
	q.Set("order", "market_cap_desc")
	if len(c.cfg.Coins) > 0 {
		q.Set("ids", strings.Join(c.cfg.Coins, ","))
	}
	if c.cfg.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(c.cfg.PerPage))
	}
	if c.cfg.Page > 0 {
		q.Set("page", strconv.Itoa(c.cfg.Page))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.cfg.APIKey)
	}

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}

	var data []marketResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	fetchedAt := c.now()
	result := make([]domain.Coin, 0, len(data))
	for _, d := range data {
		result = append(result, toDomain(d, fetchedAt))
	}
	return result, nil
}

// toDomain - null-поля CoinGecko превращаются в нули
func toDomain(d marketResponse, fetchedAt time.Time) domain.Coin {
	c := domain.Coin{
		ID:        d.ID,
		Name:      d.Name,
		Symbol:    d.Symbol,
		Image:     d.Image,
		UpdatedAt: fetchedAt,
	}
	if d.CurrentPrice != nil {
		c.CurrentPrice = *d.CurrentPrice
	}
	if d.MarketCap != nil {
		c.MarketCap = *d.MarketCap
	}
	if d.MarketCapRank != nil {
		c.MarketCapRank = *d.MarketCapRank
	}
	if d.MarketCapChangePercentage24h != nil {
		c.MarketCapChangePercentage24h = *d.MarketCapChangePercentage24h
	}
	if ts, err := time.Parse(time.RFC3339, d.LastUpdated); err == nil {
		c.UpdatedAt = ts.UTC()
	}
	return c
}
