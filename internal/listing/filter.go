package listing

import (
	"strings"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
)

// MatchName - монеты, в имени которых встречается query (без учёта регистра), в исходном порядке
func MatchName(coins []domain.Coin, query string) []domain.Coin {
	q := strings.ToLower(query)
	out := make([]domain.Coin, 0, len(coins))
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// MatchExact - монеты с именем, равным name без учёта регистра; совпадений может быть несколько
func MatchExact(coins []domain.Coin, name string) []domain.Coin {
	n := strings.ToLower(name)
	out := make([]domain.Coin, 0, 1)
	for _, c := range coins {
		if strings.ToLower(c.Name) == n {
			out = append(out, c)
		}
	}
	return out
}

// Suggest - подсказки автодополнения: пусто для пустого ввода
func Suggest(coins []domain.Coin, input string) []domain.Coin {
	if input == "" {
		return nil
	}
	return MatchName(coins, input)
}
