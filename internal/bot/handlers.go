package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/ports/errcode"
	"gopkg.in/telebot.v4"
)

const helpText = "Привет! Доступные команды:\n" +
	"/coins - топ монет по капитализации\n" +
	"/search {текст} - поиск монет по названию\n" +
	"/coin {id} - подробности по монете (bitcoin, ethereum)"

// handleStart - отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(helpText)
}

// handleCoins - первые строки таблицы рынка
func (b *Bot) handleCoins(c telebot.Context) error {
	return c.Send(b.listingReply(context.Background(), ""))
}

// handleSearch - поиск по подстроке в имени; текст обязателен
func (b *Bot) handleSearch(c telebot.Context) error {
	query := strings.TrimSpace(c.Message().Payload)
	b.logger.Debug("bot: /search received",
		slog.Int64("chat_id", c.Chat().ID),
		slog.String("query", query),
	)
	if query == "" {
		return c.Send(translateBotError(errcode.QueryRequired))
	}
	return c.Send(b.listingReply(context.Background(), query))
}

// handleCoin - подробности по монете
func (b *Bot) handleCoin(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Укажи идентификатор монеты: /coin bitcoin")
	}
	return c.Send(b.coinReply(context.Background(), args[0]))
}

func (b *Bot) listingReply(ctx context.Context, query string) string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := b.market.Listing(ctx, query, b.rows)
	if err != nil {
		b.logger.Warn("bot: listing failed", slog.String("query", query), slog.String("error", err.Error()))
		return translateBotError(fromServiceError(err))
	}
	if len(rows) == 0 {
		return translateBotError(errcode.NotFoundCoins)
	}
	return formatRows(rows)
}

func (b *Bot) coinReply(ctx context.Context, id string) string {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	item, err := b.market.Coin(ctx, strings.ToLower(strings.TrimSpace(id)))
	if err != nil {
		return translateBotError(fromServiceError(err))
	}
	return formatCoinDetails(item)
}
