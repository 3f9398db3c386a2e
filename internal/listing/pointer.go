package listing

import "sync"

// Target - куда пришлось нажатие указателя
type Target int

const (
	TargetOutside Target = iota
	TargetInput
	TargetSuggestions
)

func (t Target) String() string {
	switch t {
	case TargetInput:
		return "input"
	case TargetSuggestions:
		return "suggestions"
	default:
		return "outside"
	}
}

// PointerDispatcher - глобальная рассылка нажатий указателя всем подписчикам
type PointerDispatcher struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Target)
}

func NewPointerDispatcher() *PointerDispatcher {
	return &PointerDispatcher{subs: make(map[int]func(Target))}
}

// Subscription - захваченный обработчик; Release снимает его, повторный вызов ничего не делает
type Subscription struct {
	once sync.Once
	d    *PointerDispatcher
	id   int
}

// Subscribe - регистрирует обработчик нажатий
func (d *PointerDispatcher) Subscribe(fn func(Target)) *Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.subs[id] = fn
	return &Subscription{d: d, id: id}
}

func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.d.mu.Lock()
		delete(s.d.subs, s.id)
		s.d.mu.Unlock()
	})
}

// Dispatch - передаёт нажатие всем текущим подписчикам
func (d *PointerDispatcher) Dispatch(t Target) {
	d.mu.Lock()
	handlers := make([]func(Target), 0, len(d.subs))
	for _, fn := range d.subs {
		handlers = append(handlers, fn)
	}
	d.mu.Unlock()

	for _, fn := range handlers {
		fn(t)
	}
}

// Len - число активных подписок
func (d *PointerDispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}
