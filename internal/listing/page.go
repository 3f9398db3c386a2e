package listing

import (
	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
)

// DefaultRows - сколько строк таблицы выводится по умолчанию
const DefaultRows = 20

// Source - общий рынок, из которого страница читает монеты и валюту
type Source interface {
	Snapshot() []domain.Coin
	Currency() domain.Currency
}

// Key - клавиши, которые обрабатывает поле поиска
type Key int

const (
	KeyArrowDown Key = iota
	KeyArrowUp
	KeyEnter
)

// Page - состояние страницы со списком монет: поле поиска, подсказки и таблица.
// Методы вызываются из одного цикла событий.
type Page struct {
	src  Source
	rows int

	all         []domain.Coin
	display     []domain.Coin
	input       string
	suggestions []domain.Coin
	active      int

	sub *Subscription
}

// NewPage - страница поверх src; rows <= 0 означает DefaultRows
func NewPage(src Source, rows int) *Page {
	if rows <= 0 {
		rows = DefaultRows
	}
	all := src.Snapshot()
	return &Page{
		src:     src,
		rows:    rows,
		all:     all,
		display: all,
		active:  -1,
	}
}

func (p *Page) Input() string { return p.input }

func (p *Page) Suggestions() []domain.Coin { return p.suggestions }

// ActiveIndex - выделенная подсказка, -1 если нет
func (p *Page) ActiveIndex() int { return p.active }

// Display - монеты, отобранные для таблицы
func (p *Page) Display() []domain.Coin { return p.display }

func (p *Page) Currency() domain.Currency { return p.src.Currency() }

func (p *Page) Mounted() bool { return p.sub != nil }

// SetInput - изменение текста в поле поиска
func (p *Page) SetInput(text string) {
	p.input = text
	if text == "" {
		p.display = p.all
		p.suggestions = nil
	} else {
		p.suggestions = MatchName(p.all, text)
	}
	p.clampActive()
}

// Submit - отправка формы поиска; пустой ввод отклоняется
func (p *Page) Submit() bool {
	if p.input == "" {
		return false
	}
	p.display = MatchName(p.all, p.input)
	p.suggestions = nil
	p.clampActive()
	return true
}

// SelectSuggestion - выбор подсказки: точное совпадение имени
func (p *Page) SelectSuggestion(name string) {
	p.input = name
	p.display = MatchExact(p.all, name)
	p.suggestions = nil
	p.active = -1
}

// KeyDown - навигация по подсказкам с клавиатуры.
// ArrowUp не возвращает выделение в -1, пока подсказки открыты.
func (p *Page) KeyDown(k Key) {
	switch k {
	case KeyArrowDown:
		p.active = min(p.active+1, len(p.suggestions)-1)
	case KeyArrowUp:
		p.active = max(p.active-1, 0)
	case KeyEnter:
		if p.active != -1 {
			p.SelectSuggestion(p.suggestions[p.active].Name)
			return
		}
		p.Submit()
		return
	}
	p.clampActive()
}

// Hover - наведение указателя на подсказку i
func (p *Page) Hover(i int) {
	if i < 0 || i >= len(p.suggestions) {
		return
	}
	p.active = i
}

// PointerDown - нажатие вне поля и панели подсказок закрывает подсказки
func (p *Page) PointerDown(t Target) {
	if t != TargetOutside {
		return
	}
	p.suggestions = nil
	p.clampActive()
}

// Mount - подписка на глобальные нажатия; повторный вызов ничего не делает
func (p *Page) Mount(d *PointerDispatcher) {
	if p.sub != nil {
		return
	}
	p.sub = d.Subscribe(p.PointerDown)
}

// Unmount - освобождение подписки
func (p *Page) Unmount() {
	p.sub.Release()
	p.sub = nil
}

// Sync - обновился общий список: таблица снова показывает его целиком
func (p *Page) Sync(coins []domain.Coin) {
	p.all = coins
	p.display = coins
	if p.input != "" && len(p.suggestions) > 0 {
		p.suggestions = MatchName(coins, p.input)
	}
	p.clampActive()
}

// Rows - первые строки текущего отображаемого списка
func (p *Page) Rows() []Row {
	return Render(p.display, p.src.Currency(), p.rows)
}

func (p *Page) clampActive() {
	switch {
	case len(p.suggestions) == 0:
		p.active = -1
	case p.active >= len(p.suggestions):
		p.active = len(p.suggestions) - 1
	case p.active < -1:
		p.active = -1
	}
}
