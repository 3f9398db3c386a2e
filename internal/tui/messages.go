package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
)

// CoinsMsg - свежий снапшот рынка из Hub
type CoinsMsg struct {
	Coins []domain.Coin
}

// NavigateMsg - запрос перехода, например "/coin/bitcoin"
type NavigateMsg struct {
	Path string
}

// waitForCoins - ждёт следующий снапшот подписки и превращает его в сообщение.
// Закрытый канал завершает подписку.
func waitForCoins(ch <-chan []domain.Coin) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		coins, ok := <-ch
		if !ok {
			return nil
		}
		return CoinsMsg{Coins: coins}
	}
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}
