package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MarketRepo - репозиторий последнего рыночного снапшота (таблица market_coins).
type MarketRepo struct {
	db *pgxpool.Pool
}

// NewMarketRepository - Создаёт новый репозиторий снапшота на основе пула соединений.
func NewMarketRepository(db *pgxpool.Pool) *MarketRepo {
	return &MarketRepo{db: db}
}

// SaveSnapshot - заменяет снапшот: upsert по id, монеты, выпавшие из ответа, удаляются.
// position хранит порядок источника, чтобы Latest отдавал список в том же порядке.
func (r *MarketRepo) SaveSnapshot(ctx context.Context, coins []domain.Coin) error {
	if len(coins) == 0 {
		return nil
	}

	const upsert = `
		INSERT INTO market_coins (id, name, symbol, image, current_price, market_cap,
		                          market_cap_rank, market_cap_change_24h, position, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			symbol = EXCLUDED.symbol,
			image = EXCLUDED.image,
			current_price = EXCLUDED.current_price,
			market_cap = EXCLUDED.market_cap,
			market_cap_rank = EXCLUDED.market_cap_rank,
			market_cap_change_24h = EXCLUDED.market_cap_change_24h,
			position = EXCLUDED.position,
			updated_at = EXCLUDED.updated_at
	`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]string, 0, len(coins))
	batch := &pgx.Batch{}
	for i, c := range coins {
		ids = append(ids, c.ID)
		batch.Queue(upsert, c.ID, c.Name, c.Symbol, c.Image, c.CurrentPrice, c.MarketCap,
			c.MarketCapRank, c.MarketCapChangePercentage24h, i, c.UpdatedAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM market_coins WHERE NOT (id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("prune snapshot: %w", err)
	}
	return tx.Commit(ctx)
}

const selectCoin = `
	SELECT id, name, symbol, image, current_price, market_cap,
	       market_cap_rank, market_cap_change_24h, updated_at
	FROM market_coins
`

// Latest - последний сохранённый снапшот в порядке источника
func (r *MarketRepo) Latest(ctx context.Context) ([]domain.Coin, error) {
	rows, err := r.db.Query(ctx, selectCoin+` ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Coin
	for rows.Next() {
		c, err := scanCoin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// CoinByID - монета из снапшота по идентификатору CoinGecko
func (r *MarketRepo) CoinByID(ctx context.Context, id string) (domain.Coin, error) {
	c, err := scanCoin(r.db.QueryRow(ctx, selectCoin+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Coin{}, repository.ErrNotFound
	}
	if err != nil {
		return domain.Coin{}, err
	}
	return c, nil
}

func scanCoin(row pgx.Row) (domain.Coin, error) {
	var c domain.Coin
	err := row.Scan(&c.ID, &c.Name, &c.Symbol, &c.Image, &c.CurrentPrice, &c.MarketCap,
		&c.MarketCapRank, &c.MarketCapChangePercentage24h, &c.UpdatedAt)
	return c, err
}
