// Package sessionevents oturum değişikliklerini (giriş, çıkış, kayıt) abonelere
// kanal üzerinden ayrık olaylar olarak iletir. Global kullanıcı durumu tutulmaz;
// her istek kendi oturumunu context üzerinden taşır.
package sessionevents

import (
	"sync"
	"time"
)

// Kind olay türüdür.
type Kind string

const (
	KindLogin    Kind = "login"
	KindLogout   Kind = "logout"
	KindRegister Kind = "register"
)

// Event tek bir oturum değişikliğidir.
type Event struct {
	Kind   Kind
	UserID uint
	At     time.Time
}

// Hub olayları tüm abonelere dağıtır. Yavaş bir abonenin tamponu doluysa
// olay o abone için düşürülür, yayıncı asla bloklanmaz.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	closed bool
	buffer int
}

// NewHub abone başına buffer boyutunda kanal açan bir Hub oluşturur.
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{subs: map[int]chan Event{}, buffer: buffer}
}

// Subscribe yeni bir abone kanalı ve aboneliği bitiren fonksiyonu döndürür.
// Hub kapatılmışsa kanal kapalı olarak döner.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if c, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(c)
			}
		})
	}
}

// Publish olayı abonelere gönderir ve teslim edilen abone sayısını döndürür.
func (h *Hub) Publish(e Event) int {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return 0
	}
	delivered := 0
	for _, ch := range h.subs {
		select {
		case ch <- e:
			delivered++
		default:
		}
	}
	return delivered
}

// Close tüm abone kanallarını kapatır. Sonraki Publish çağrıları etkisizdir.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
