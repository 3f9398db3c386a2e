package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/NastyaGoryachaya/crypto-market/internal/listing"
)

// Цвета темы
const (
	ColorAccent    = "86"  // заголовки
	ColorHighlight = "205" // активная подсказка, выбранная строка
	ColorGreen     = "42"
	ColorRed       = "196"
	ColorMuted     = "241"
	ColorText      = "252"
)

// Styles - общие стили списка и детальной страницы
var Styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Input       lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style

	Suggestion       lipgloss.Style
	SuggestionActive lipgloss.Style

	Header      lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style

	Green lipgloss.Style // класс изменения "green"
	Red   lipgloss.Style // класс изменения "red"

	Muted lipgloss.Style
	Hint  lipgloss.Style
	Label lipgloss.Style
	Empty lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Input: lipgloss.NewStyle().
		Width(inputWidth).
		MaxWidth(inputWidth),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	ButtonFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Suggestion: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	SuggestionActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Background(lipgloss.Color("238")).
		Bold(true),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Row: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	RowSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Green: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGreen)),
	Red: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorRed)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Bold(true).
		Width(16),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// changeStyle - стиль для класса изменения строки
func changeStyle(class string) lipgloss.Style {
	if class == listing.ClassGreen {
		return Styles.Green
	}
	return Styles.Red
}
