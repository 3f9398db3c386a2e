package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NastyaGoryachaya/crypto-market/internal/config"
	"github.com/NastyaGoryachaya/crypto-market/internal/tui"
)

// Browser - приложение для команды browse: терминальная страница со списком монет
type Browser struct {
	*App
}

func NewBrowser(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Browser, error) {
	core, err := newCore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Browser{App: core}, nil
}

// Run - запускает обновление рынка и bubbletea программу; выход по ctrl+c или отмене контекста
func (b *Browser) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer b.closeDB()

	b.warmStart(ctx)
	b.startUpdater(ctx)

	updates, unsubscribe := b.hub.Subscribe()
	model := tui.New(b.hub, updates, unsubscribe, tui.Options{
		Rows:                  b.cfg.UI.Rows,
		MaxVisibleSuggestions: b.cfg.UI.MaxVisibleSuggestions,
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	b.log.Info("browse started")
	_, err := p.Run()
	// при выходе по сигналу Update не видит ctrl+c, поэтому страница снимается здесь
	model.Close()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	b.log.Info("browse stopped")
	return nil
}
