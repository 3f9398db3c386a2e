package market

import (
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-market/internal/domain"
)

func recv(t *testing.T, ch <-chan []domain.Coin) []domain.Coin {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed unexpectedly")
		}
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	return nil
}

func TestHub_SubscribeReceivesLatestOnly(t *testing.T) {
	h := NewHub(domain.CurrencyFor("usd"))
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Publish([]domain.Coin{{ID: "a"}})
	h.Publish([]domain.Coin{{ID: "b"}})

	got := recv(t, ch)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected latest snapshot [b], got %+v", got)
	}
	select {
	case v := <-ch:
		t.Fatalf("stale snapshot delivered: %+v", v)
	default:
	}
}

func TestHub_SubscribeAfterPublishGetsCurrent(t *testing.T) {
	h := NewHub(domain.CurrencyFor("usd"))
	h.Publish([]domain.Coin{{ID: "bitcoin"}})

	ch, cancel := h.Subscribe()
	defer cancel()

	got := recv(t, ch)
	if len(got) != 1 || got[0].ID != "bitcoin" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestHub_CancelClosesAndIsIdempotent(t *testing.T) {
	h := NewHub(domain.CurrencyFor("usd"))
	ch, cancel := h.Subscribe()
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after cancel")
	}
	// публикация после отписки не паникует
	h.Publish([]domain.Coin{{ID: "x"}})
}

func TestHub_PublishCopiesInput(t *testing.T) {
	h := NewHub(domain.CurrencyFor("usd"))
	in := []domain.Coin{{ID: "a"}}
	h.Publish(in)
	in[0].ID = "mutated"

	if got := h.Snapshot(); got[0].ID != "a" {
		t.Fatalf("snapshot must not alias publisher slice, got %+v", got)
	}
}

func TestHub_PublishIfEmpty(t *testing.T) {
	h := NewHub(domain.CurrencyFor("usd"))
	ch, cancel := h.Subscribe()
	defer cancel()

	if !h.PublishIfEmpty([]domain.Coin{{ID: "bitcoin"}}) {
		t.Fatalf("first publish into empty hub must succeed")
	}
	if got := recv(t, ch); len(got) != 1 || got[0].ID != "bitcoin" {
		t.Fatalf("subscriber got %+v", got)
	}

	if h.PublishIfEmpty([]domain.Coin{{ID: "ethereum"}}) {
		t.Fatalf("publish into non-empty hub must be rejected")
	}
	if got := h.Snapshot(); got[0].ID != "bitcoin" {
		t.Fatalf("snapshot replaced: %+v", got)
	}
	select {
	case got := <-ch:
		t.Fatalf("unexpected delivery %+v", got)
	default:
	}
}
