package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market/internal/listing"
	"gopkg.in/telebot.v4"
)

// Config - конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
	Rows            int
}

// CoinDTO - монета вместе с валютой котировки
type CoinDTO struct {
	Coin     domain.Coin
	Currency domain.Currency
}

// MarketReader - интерфейс для чтения рынка в виде строк таблицы
type MarketReader interface {
	Listing(ctx context.Context, query string, limit int) ([]listing.Row, error)
	Coin(ctx context.Context, id string) (CoinDTO, error)
}

// Bot - основной тип приложения
type Bot struct {
	bot    *telebot.Bot
	market MarketReader
	rows   int
	logger *slog.Logger
}

// New создаёт новый экземпляр бота
func New(cfg Config, market MarketReader, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 10
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:    b,
		market: market,
		rows:   cfg.Rows,
		logger: logger,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/coins", bot.handleCoins)
	b.Handle("/search", bot.handleSearch)
	b.Handle("/coin", bot.handleCoin)
	return bot, nil
}

// Start запускает бота
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
	<-ctx.Done()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
