package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	botpkg "github.com/NastyaGoryachaya/crypto-market/internal/bot"
	"github.com/NastyaGoryachaya/crypto-market/internal/bot/adapter"
	"github.com/NastyaGoryachaya/crypto-market/internal/config"
	apiclient "github.com/NastyaGoryachaya/crypto-market/internal/infra/api_client"
	"github.com/NastyaGoryachaya/crypto-market/internal/infra/db"
	repopg "github.com/NastyaGoryachaya/crypto-market/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-market/internal/scheduler"
	fetchsvc "github.com/NastyaGoryachaya/crypto-market/internal/service/fetch"
	"github.com/NastyaGoryachaya/crypto-market/internal/service/market"
	"github.com/NastyaGoryachaya/crypto-market/internal/transport/httptransport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// App - общий каркас: рынок, хранилище, планировщик; транспорты подключаются для serve
type App struct {
	cfg *config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	hub    *market.Hub
	market *market.Service
	fetch  fetchsvc.Service

	updater *scheduler.Scheduler

	bot *botpkg.Bot
}

// newCore - то, что нужно и serve, и browse: hub, БД (если включена), fetch и market сервисы
func newCore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	provider := apiclient.NewClient(cfg.CoinGecko)
	app.hub = market.NewHub(provider.Currency())

	var (
		store fetchsvc.SnapshotWriter
		repo  market.SnapshotReader
	)
	if cfg.Postgres.Enabled {
		pool, err := db.NewPool(ctx, &cfg.Postgres)
		if err != nil {
			log.Error("postgres init failed", slog.String("error", err.Error()))
			return nil, fmt.Errorf("postgres: %w", err)
		}
		app.db = pool
		mr := repopg.NewMarketRepository(pool)
		store, repo = mr, mr
	} else {
		log.Info("postgres disabled, snapshot kept in memory only")
	}

	app.market = market.NewService(app.hub, repo, log)
	app.fetch = fetchsvc.NewService(provider, store, app.hub, log)

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(app.fetch, cfg.Scheduler.Interval, log)
	}
	return app, nil
}

// NewApp - приложение для команды serve: HTTP API и (опционально) Telegram бот
func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app, err := newCore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug("http request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	app.e = e

	mh := httptransport.NewMarketHandler(log, app.market, cfg.Server.ReadTimeout, cfg.UI.Rows)
	mh.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена - ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			app.closeDB()
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{Token: token, LongPollTimeout: cfg.Telegram.LongPollTimeout, Rows: cfg.Telegram.Rows},
			adapter.NewMarketReader(app.market),
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			app.closeDB()
			return nil, err
		}
		app.bot = botApp
	}
	log.Info("app initialized",
		slog.Bool("postgres_enabled", cfg.Postgres.Enabled),
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
		slog.String("currency", app.hub.Currency().Code),
	)
	return app, nil
}

// Run - команда serve: планировщик, бот и HTTP сервер до отмены контекста
func (a *App) Run(ctx context.Context) error {
	a.startUpdater(ctx)

	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	errCh := make(chan error, 1)
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	if err := a.Shutdown(context.Background()); err != nil {
		return err
	}
	return runErr
}

// warmStart - снапшот из БД, чтобы таблица не была пустой до первого ответа CoinGecko
func (a *App) warmStart(ctx context.Context) {
	if _, err := a.market.AllCoins(ctx); err != nil {
		a.log.Debug("warm start skipped", slog.String("error", err.Error()))
	}
}

func (a *App) startUpdater(ctx context.Context) {
	if a.updater == nil {
		a.log.Info("scheduler disabled, fetching market once")
		go func() {
			if err := a.fetch.FetchAndPublish(ctx); err != nil {
				a.log.Error("initial fetch failed", slog.String("error", err.Error()))
			}
		}()
		return
	}
	a.log.Info("starting updater")
	go a.updater.Start(ctx)
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	a.closeDB()

	a.log.Info("application stopped")
	return nil
}

func (a *App) closeDB() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}
