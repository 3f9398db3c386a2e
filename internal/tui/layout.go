package tui

import "github.com/NastyaGoryachaya/crypto-market/internal/listing"

const (
	inputWidth   = 36
	buttonLabel  = "[ Search ]"
	buttonX      = inputWidth + 1
	headerLines  = 3 // заголовок, подзаголовок, пустая строка
	defaultSugg  = 8
	coinsColumn  = 28
	priceColumn  = 20
	changeColumn = 12
	rankColumn   = 5
)

// layout - строки экрана для каждой кликабельной области списка.
// View и hitTest считают его из одного и того же состояния.
type layout struct {
	inputY  int
	suggY   int
	suggN   int
	headerY int
	rowsY   int
	rowsN   int
}

func (m *Model) layout() layout {
	l := layout{inputY: headerLines}
	l.suggY = l.inputY + 1
	l.suggN = len(m.visibleSuggestions())
	l.headerY = l.suggY + l.suggN + 1
	l.rowsY = l.headerY + 1
	l.rowsN = len(m.rows)
	return l
}

type hitKind int

const (
	hitNone hitKind = iota
	hitInput
	hitButton
	hitSuggestion
	hitRow
)

type hit struct {
	kind  hitKind
	index int // индекс подсказки в состоянии страницы или индекс строки
}

// target - что видит глобальный диспетчер нажатий для этого попадания
func (h hit) target() listing.Target {
	switch h.kind {
	case hitInput:
		return listing.TargetInput
	case hitSuggestion:
		return listing.TargetSuggestions
	default:
		return listing.TargetOutside
	}
}

func (m *Model) hitTest(x, y int) hit {
	l := m.layout()
	switch {
	case y == l.inputY && x >= 0 && x < inputWidth:
		return hit{kind: hitInput}
	case y == l.inputY && x >= buttonX && x < buttonX+len(buttonLabel):
		return hit{kind: hitButton}
	case y >= l.suggY && y < l.suggY+l.suggN:
		return hit{kind: hitSuggestion, index: m.suggOffset + y - l.suggY}
	case y >= l.rowsY && y < l.rowsY+l.rowsN:
		return hit{kind: hitRow, index: y - l.rowsY}
	}
	return hit{kind: hitNone}
}
