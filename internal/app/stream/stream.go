//go:generate mockgen -source=stream.go -destination=stream_mock.go -package=stream
package stream

import (
	"sync"
	"time"

	"runlog/internal/app/severity"
)

// Event is a single log event emitted by the host
type Event struct {
	Time     time.Time
	Severity severity.Severity
	Message  string
	Detail   string
}

// Handler receives events in emission order
type Handler func(Event)

// Subscription releases a handler registration
type Subscription interface {
	Unsubscribe()
}

// Source is the host log-event stream a sink subscribes to
type Source interface {
	Subscribe(handler Handler) Subscription
}

// Hub is a Source that fans published events out to its subscribers
type Hub interface {
	Source
	Publish(event Event)
	Close()
}

type hub struct {
	mu       sync.RWMutex
	deliver  sync.Mutex
	handlers map[uint64]Handler
	order    []uint64
	nextID   uint64
	closed   bool
}

// NewHub creates an empty hub
func NewHub() Hub {
	return &hub{
		handlers: make(map[uint64]Handler),
		order:    make([]uint64, 0),
	}
}

// Subscribe registers a handler; it is a no-op after Close
func (h *hub) Subscribe(handler Handler) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || handler == nil {
		return noOpSubscription{}
	}

	id := h.nextID
	h.nextID++

	h.handlers[id] = handler
	h.order = append(h.order, id)

	return &subscription{hub: h, id: id}
}

// Publish delivers the event to every subscriber synchronously.
// Deliveries are serialized so each handler observes events in publish order.
// Handlers must not publish to the same hub.
func (h *hub) Publish(event Event) {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	h.deliver.Lock()
	defer h.deliver.Unlock()

	for _, handler := range h.snapshot() {
		handler(event)
	}
}

// Close drops every subscriber; later publishes are ignored
func (h *hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.handlers = make(map[uint64]Handler)
	h.order = nil
}

func (h *hub) snapshot() []Handler {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	result := make([]Handler, 0, len(h.order))
	for _, id := range h.order {
		result = append(result, h.handlers[id])
	}

	return result
}

func (h *hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.handlers[id]; !ok {
		return
	}

	delete(h.handlers, id)

	for i, sub := range h.order {
		if sub == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

type subscription struct {
	hub  *hub
	id   uint64
	once sync.Once
}

// Unsubscribe removes the handler; repeated calls are ignored
func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.id)
	})
}

type noOpSubscription struct{}

func (noOpSubscription) Unsubscribe() {}
