package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
)

type stubSource struct {
	coins []domain.Coin
}

func (s *stubSource) Snapshot() []domain.Coin   { return s.coins }
func (s *stubSource) Currency() domain.Currency { return domain.CurrencyFor("usd") }

func testCoins() []domain.Coin {
	return []domain.Coin{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 67000, MarketCapRank: 1, MarketCapChangePercentage24h: 1.5},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: 3500, MarketCapRank: 2, MarketCapChangePercentage24h: -0.5},
		{ID: "bitcoin-cash", Name: "Bitcoin Cash", Symbol: "bch", CurrentPrice: 480, MarketCapRank: 3},
	}
}

func newTestModel(coins []domain.Coin) *Model {
	return New(&stubSource{coins: coins}, nil, nil, Options{Rows: 20, MaxVisibleSuggestions: 8})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

// run executes cmd and feeds the resulting message back into the model.
func run(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		m.Update(msg)
	}
}

func suggestionNames(m *Model) []string {
	out := []string{}
	for _, c := range m.Page().Suggestions() {
		out = append(out, c.Name)
	}
	return out
}

func displayNames(m *Model) []string {
	out := []string{}
	for _, c := range m.Page().Display() {
		out = append(out, c.Name)
	}
	return out
}

func TestTypingUpdatesSuggestions(t *testing.T) {
	m := newTestModel(testCoins())

	typeText(m, "bit")

	assert.Equal(t, "bit", m.Page().Input())
	assert.Equal(t, []string{"Bitcoin", "Bitcoin Cash"}, suggestionNames(m))
	assert.Contains(t, m.View(), "Bitcoin Cash")

	m.Update(keyMsg("backspace"))
	m.Update(keyMsg("backspace"))
	m.Update(keyMsg("backspace"))
	assert.Equal(t, "", m.Page().Input())
	assert.Empty(t, m.Page().Suggestions())
	assert.Len(t, m.Page().Display(), 3)
}

func TestArrowKeysAndEnterSelect(t *testing.T) {
	m := newTestModel(testCoins())
	typeText(m, "bit")

	m.Update(keyMsg("down"))
	m.Update(keyMsg("down"))
	m.Update(keyMsg("down"))
	assert.Equal(t, 1, m.Page().ActiveIndex())

	m.Update(keyMsg("up"))
	m.Update(keyMsg("up"))
	assert.Equal(t, 0, m.Page().ActiveIndex())

	m.Update(keyMsg("enter"))
	assert.Equal(t, "Bitcoin", m.input.Value())
	assert.Equal(t, []string{"Bitcoin"}, displayNames(m))
	assert.Empty(t, m.Page().Suggestions())
}

func TestEnterWithoutHighlightSubmits(t *testing.T) {
	m := newTestModel(testCoins())
	typeText(m, "bit")

	m.Update(keyMsg("enter"))

	assert.Equal(t, []string{"Bitcoin", "Bitcoin Cash"}, displayNames(m))
	assert.Empty(t, m.Page().Suggestions())
	assert.Len(t, m.rows, 2)
}

func TestMouseHoverAndClickSuggestion(t *testing.T) {
	m := newTestModel(testCoins())
	typeText(m, "bit")
	l := m.layout()
	require.Equal(t, 2, l.suggN)

	m.Update(motion(4, l.suggY+1))
	assert.Equal(t, 1, m.Page().ActiveIndex())

	m.Update(press(4, l.suggY+1))
	assert.Equal(t, "Bitcoin Cash", m.input.Value())
	assert.Equal(t, []string{"Bitcoin Cash"}, displayNames(m))
	assert.Empty(t, m.Page().Suggestions())
}

func TestClickOutsideClosesSuggestions(t *testing.T) {
	m := newTestModel(testCoins())
	typeText(m, "bit")
	l := m.layout()

	m.Update(press(2, l.inputY))
	assert.Len(t, m.Page().Suggestions(), 2, "click on the input keeps suggestions")

	m.Update(press(0, 0))
	assert.Empty(t, m.Page().Suggestions(), "click on the title closes suggestions")
	assert.Len(t, m.Page().Display(), 3)
}

func TestClickSearchButtonSubmits(t *testing.T) {
	m := newTestModel(testCoins())
	typeText(m, "ether")
	l := m.layout()

	m.Update(press(buttonX+2, l.inputY))

	assert.Equal(t, []string{"Ethereum"}, displayNames(m))
	assert.Empty(t, m.Page().Suggestions())
}

func TestClickRowOpensDetailAndEscReturns(t *testing.T) {
	m := newTestModel(testCoins())
	typeText(m, "bit")
	l := m.layout()

	// строка ethereum, пока подсказки ещё открыты
	_, cmd := m.Update(press(2, l.rowsY+1))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, NavigateMsg{Path: "/coin/ethereum"}, msg)
	assert.Empty(t, m.Page().Suggestions())

	m.Update(msg)
	assert.Equal(t, routeDetail, m.route)
	view := m.View()
	assert.Contains(t, view, "Ethereum (ETH)")
	assert.Contains(t, view, "$ 3,500")
	assert.Contains(t, view, "-0.5 %")

	m.Update(keyMsg("esc"))
	assert.Equal(t, routeListing, m.route)
	assert.Equal(t, "bit", m.Page().Input())
}

func TestUnknownCoinShowsNotFound(t *testing.T) {
	m := newTestModel(testCoins())

	m.Update(NavigateMsg{Path: "/coin/dogecoin"})

	assert.Equal(t, routeDetail, m.route)
	assert.Contains(t, m.View(), "Coin not found")
}

func TestTabFocusTableNavigation(t *testing.T) {
	m := newTestModel(testCoins())

	m.Update(keyMsg("tab"))
	assert.Equal(t, focusTable, m.focus)

	m.Update(keyMsg("down"))
	m.Update(keyMsg("down"))
	m.Update(keyMsg("down"))
	assert.Equal(t, 2, m.cursor)

	// в таблице ввод не попадает в поле поиска
	typeText(m, "x")
	assert.Equal(t, "", m.Page().Input())

	_, cmd := m.Update(keyMsg("enter"))
	run(m, cmd)
	assert.Equal(t, routeDetail, m.route)
	assert.Equal(t, "bitcoin-cash", m.detail.ID)

	m.Update(keyMsg("esc"))
	m.Update(keyMsg("tab"))
	assert.Equal(t, focusSearch, m.focus)
}

func TestCoinsMsgSyncsPage(t *testing.T) {
	updates := make(chan []domain.Coin, 1)
	src := &stubSource{coins: testCoins()}
	m := New(src, updates, nil, Options{})
	typeText(m, "eth")
	m.Update(keyMsg("enter"))
	require.Equal(t, []string{"Ethereum"}, displayNames(m))

	fresh := []domain.Coin{{ID: "solana", Name: "Solana", Symbol: "sol", MarketCapRank: 5}}
	src.coins = fresh
	updates <- fresh

	_, cmd := m.Update(CoinsMsg{Coins: fresh})
	assert.Equal(t, []string{"Solana"}, displayNames(m))
	require.NotNil(t, cmd)

	// следующая команда снова ждёт подписку
	msg := cmd()
	assert.Equal(t, CoinsMsg{Coins: fresh}, msg)
}

func TestSuggestionWindowFollowsActive(t *testing.T) {
	coins := make([]domain.Coin, 0, 10)
	for i := 0; i < 10; i++ {
		coins = append(coins, domain.Coin{ID: fmt.Sprintf("coin-%d", i), Name: fmt.Sprintf("Coin %d", i), MarketCapRank: i + 1})
	}
	m := New(&stubSource{coins: coins}, nil, nil, Options{MaxVisibleSuggestions: 3})
	typeText(m, "coin")

	require.Len(t, m.Page().Suggestions(), 10)
	assert.Len(t, m.visibleSuggestions(), 3)

	for i := 0; i < 5; i++ {
		m.Update(keyMsg("down"))
	}
	assert.Equal(t, 4, m.Page().ActiveIndex())
	assert.Equal(t, 2, m.suggOffset)
	assert.Equal(t, "Coin 4", m.visibleSuggestions()[2].Name)

	// клик по последней видимой строке выбирает подсказку с учётом сдвига
	l := m.layout()
	m.Update(press(3, l.suggY+2))
	assert.Equal(t, "Coin 4", m.input.Value())
}

func TestCtrlCUnmountsAndQuits(t *testing.T) {
	cancelled := false
	m := New(&stubSource{coins: testCoins()}, nil, func() { cancelled = true }, Options{})
	require.True(t, m.Page().Mounted())

	_, cmd := m.Update(keyMsg("ctrl+c"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Page().Mounted())
	assert.Equal(t, 0, m.dispatcher.Len())
	assert.True(t, cancelled)
}

func TestViewRendersRows(t *testing.T) {
	m := newTestModel(testCoins())

	view := m.View()
	lines := strings.Split(view, "\n")
	l := m.layout()
	require.Greater(t, len(lines), l.rowsY+2)
	assert.Contains(t, lines[l.headerY], "Market Cap")
	assert.Contains(t, lines[l.rowsY], "Bitcoin - btc")
	assert.Contains(t, lines[l.rowsY], "+1.5 %")
	assert.Contains(t, lines[l.rowsY+1], "Ethereum - eth")

	empty := newTestModel(nil)
	assert.Contains(t, empty.View(), "No coins to show")
}

func TestParseCoinRoute(t *testing.T) {
	id, ok := parseCoinRoute("/coin/bitcoin")
	assert.True(t, ok)
	assert.Equal(t, "bitcoin", id)

	for _, p := range []string{"/coin/", "/coins/bitcoin", "/coin/a/b", ""} {
		_, ok := parseCoinRoute(p)
		assert.False(t, ok, p)
	}
}

// выход по отмене контекста: Close снимает страницу без ctrl+c, повторный вызов безопасен
func TestCloseReleasesListenerOnAnyExit(t *testing.T) {
	unsubscribed := 0
	m := New(&stubSource{coins: testCoins()}, nil, func() { unsubscribed++ }, Options{})
	require.Equal(t, 1, m.dispatcher.Len())

	m.Close()
	m.Close()

	assert.False(t, m.Page().Mounted())
	assert.Equal(t, 0, m.dispatcher.Len())
	assert.Equal(t, 1, unsubscribed)
}
