package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
	"github.com/NastyaGoryachaya/crypto-market/internal/listing"
)

type focus int

const (
	focusSearch focus = iota
	focusTable
)

// Options - настройки терминального интерфейса
type Options struct {
	Rows                  int
	MaxVisibleSuggestions int
}

// Model - bubbletea модель с одной страницей списка
type Model struct {
	src        listing.Source
	page       *listing.Page
	dispatcher *listing.PointerDispatcher
	input      textinput.Model

	updates     <-chan []domain.Coin
	unsubscribe func()

	rows       []listing.Row
	focus      focus
	cursor     int
	suggOffset int
	maxSugg    int

	route    route
	detail   domain.Coin
	detailID string
	found    bool

	width  int
	height int
}

// New - собирает модель и подключает страницу к новому диспетчеру нажатий.
// updates и unsubscribe приходят из подписки на Hub и могут быть nil.
func New(src listing.Source, updates <-chan []domain.Coin, unsubscribe func(), opts Options) *Model {
	if opts.MaxVisibleSuggestions <= 0 {
		opts.MaxVisibleSuggestions = defaultSugg
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search Crypto..."
	ti.Width = inputWidth - len(ti.Prompt) - 1
	ti.Focus()

	m := &Model{
		src:         src,
		page:        listing.NewPage(src, opts.Rows),
		dispatcher:  listing.NewPointerDispatcher(),
		input:       ti,
		updates:     updates,
		unsubscribe: unsubscribe,
		maxSugg:     opts.MaxVisibleSuggestions,
	}
	m.page.Mount(m.dispatcher)
	m.refresh()
	return m
}

// Page - страница, которую показывает модель
func (m *Model) Page() *listing.Page { return m.page }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForCoins(m.updates))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case CoinsMsg:
		m.page.Sync(msg.Coins)
		m.refresh()
		if m.route == routeDetail {
			m.openCoin(m.detailID)
		}
		return m, waitForCoins(m.updates)

	case NavigateMsg:
		return m, m.navigate(msg.Path)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Close()
			return m, tea.Quit
		}
		if m.route == routeDetail {
			return m, m.updateDetail(msg)
		}
		return m, m.updateListingKey(msg)

	case tea.MouseMsg:
		if m.route == routeListing {
			return m, m.updateMouse(msg)
		}
		return m, nil
	}

	if m.focus == focusSearch && m.route == routeListing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateListingKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "tab" || msg.String() == "shift+tab" {
		m.toggleFocus()
		return nil
	}
	if m.focus == focusTable {
		return m.updateTableKey(msg)
	}

	switch msg.String() {
	case "down":
		m.page.KeyDown(listing.KeyArrowDown)
		m.refresh()
		return nil
	case "up":
		m.page.KeyDown(listing.KeyArrowUp)
		m.refresh()
		return nil
	case "enter":
		m.page.KeyDown(listing.KeyEnter)
		m.syncInput()
		m.refresh()
		return nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != prev {
		m.page.SetInput(v)
		m.refresh()
	}
	return cmd
}

func (m *Model) updateTableKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.rows) {
			return navigate(m.rows[m.cursor].Link)
		}
	}
	return nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" || msg.String() == "backspace" {
		m.route = routeListing
	}
	return nil
}

// updateMouse - попадание считается до рассылки нажатия: клик, закрывающий подсказки,
// всё равно приходится на ту строку, в которую целились.
func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	h := m.hitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if h.kind == hitSuggestion {
			m.page.Hover(h.index)
			m.refresh()
		}
		return nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.dispatcher.Dispatch(h.target())

		var cmd tea.Cmd
		switch h.kind {
		case hitInput:
			m.setFocus(focusSearch)
		case hitButton:
			m.page.Submit()
		case hitSuggestion:
			if h.index < len(m.page.Suggestions()) {
				m.page.SelectSuggestion(m.page.Suggestions()[h.index].Name)
				m.syncInput()
			}
		case hitRow:
			if h.index < len(m.rows) {
				m.cursor = h.index
				cmd = navigate(m.rows[h.index].Link)
			}
		}
		m.refresh()
		return cmd
	}
	return nil
}

func (m *Model) navigate(path string) tea.Cmd {
	id, ok := parseCoinRoute(path)
	if !ok {
		return nil
	}
	m.openCoin(id)
	m.route = routeDetail
	return nil
}

func (m *Model) openCoin(id string) {
	m.detailID = id
	m.found = false
	for _, c := range m.src.Snapshot() {
		if c.ID == id {
			m.detail = c
			m.found = true
			return
		}
	}
	m.detail = domain.Coin{}
}

func (m *Model) toggleFocus() {
	if m.focus == focusSearch {
		m.setFocus(focusTable)
		return
	}
	m.setFocus(focusSearch)
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusSearch {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

// syncInput - переносит текст страницы в поле ввода после выбора подсказки
func (m *Model) syncInput() {
	if m.input.Value() != m.page.Input() {
		m.input.SetValue(m.page.Input())
	}
}

// refresh - пересчитывает строки таблицы, ограничивает курсор
// и сдвигает окно подсказок так, чтобы активная была видна.
func (m *Model) refresh() {
	m.rows = m.page.Rows()
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}

	n := len(m.page.Suggestions())
	active := m.page.ActiveIndex()
	if active >= 0 {
		if active < m.suggOffset {
			m.suggOffset = active
		}
		if active >= m.suggOffset+m.maxSugg {
			m.suggOffset = active - m.maxSugg + 1
		}
	}
	m.suggOffset = min(m.suggOffset, max(n-m.maxSugg, 0))
	m.suggOffset = max(m.suggOffset, 0)
}

func (m *Model) visibleSuggestions() []domain.Coin {
	s := m.page.Suggestions()
	if len(s) == 0 {
		return nil
	}
	end := min(m.suggOffset+m.maxSugg, len(s))
	return s[m.suggOffset:end]
}

// Close - снимает страницу с диспетчера и отписывается от Hub; повторный вызов безопасен
func (m *Model) Close() {
	m.page.Unmount()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
