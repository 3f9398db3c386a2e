package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NastyaGoryachaya/crypto-market/internal/app"
	"github.com/NastyaGoryachaya/crypto-market/internal/config"
	"github.com/NastyaGoryachaya/crypto-market/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "crypto-market",
		Short:         "Cryptocurrency listing with search and autocomplete",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (falls back to CONFIG_PATH)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the market updater, HTTP API and Telegram bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive listing page in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context(), configPath)
		},
	}

	root.AddCommand(serveCmd, browseCmd)
	return root
}

func runServe(parent context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out, closeOut, err := logOutput(cfg.Logger.File, os.Stdout)
	if err != nil {
		return err
	}
	defer closeOut()
	log := logger.New(&cfg.Logger, out)

	// контекст + сигналы
	ctx, stop := signalContext(parent)
	defer stop()

	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		return err
	}
	if err := application.Run(ctx); err != nil {
		log.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}
	log.Info("crypto-market stopped")
	return nil
}

func runBrowse(parent context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// терминал занят интерфейсом, поэтому логи только в файл
	out, closeOut, err := logOutput(cfg.Logger.File, io.Discard)
	if err != nil {
		return err
	}
	defer closeOut()
	log := logger.New(&cfg.Logger, out)

	ctx, stop := signalContext(parent)
	defer stop()

	browser, err := app.NewBrowser(ctx, cfg, log)
	if err != nil {
		return err
	}
	return browser.Run(ctx)
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// logOutput - файл логов на дозапись; при пустом пути возвращает fallback
func logOutput(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return fallback, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
