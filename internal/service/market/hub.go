package market

import (
	"sync"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
)

// Hub - общий контекст рынка: последний снапшот монет, валюта и подписчики на обновления.
// Подписчики получают только самый свежий снапшот, Publish никогда не блокируется.
type Hub struct {
	mu       sync.RWMutex
	currency domain.Currency
	coins    []domain.Coin
	subs     map[int]chan []domain.Coin
	nextID   int
}

func NewHub(currency domain.Currency) *Hub {
	return &Hub{
		currency: currency,
		subs:     make(map[int]chan []domain.Coin),
	}
}

// Publish - заменяет снапшот и рассылает его подписчикам.
// Слайс копируется: снапшот неизменяем для читателей.
func (h *Hub) Publish(coins []domain.Coin) {
	snap := make([]domain.Coin, len(coins))
	copy(snap, coins)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.coins = snap
	for _, ch := range h.subs {
		offer(ch, snap)
	}
}

// PublishIfEmpty - публикует coins, только если снапшота ещё нет.
// Проверка и замена идут под одной блокировкой, поэтому свежие данные не затираются.
func (h *Hub) PublishIfEmpty(coins []domain.Coin) bool {
	snap := make([]domain.Coin, len(coins))
	copy(snap, coins)

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.coins) > 0 {
		return false
	}
	h.coins = snap
	for _, ch := range h.subs {
		offer(ch, snap)
	}
	return true
}

// offer - кладёт снапшот в буфер на одно значение, вытесняя устаревший
func offer(ch chan []domain.Coin, snap []domain.Coin) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- snap
}

// Snapshot - текущий снапшот (nil, если данных ещё нет)
func (h *Hub) Snapshot() []domain.Coin {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.coins
}

func (h *Hub) Currency() domain.Currency {
	return h.currency
}

// Subscribe - канал обновлений и функция отписки. Если снапшот уже есть, он приходит сразу.
// Отписка закрывает канал и безопасна при повторном вызове.
func (h *Hub) Subscribe() (<-chan []domain.Coin, func()) {
	ch := make(chan []domain.Coin, 1)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	if h.coins != nil {
		ch <- h.coins
	}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			close(ch)
			h.mu.Unlock()
		})
	}
	return ch, cancel
}
