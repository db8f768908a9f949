package bus

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNilHandler = errors.New("event handler is nil")

// simpleEvent is a basic implementation of Event.
type simpleEvent struct {
	typeStr string
	source  string
	at      float64
	data    any
}

func (e simpleEvent) Type() string   { return e.typeStr }
func (e simpleEvent) Source() string { return e.source }
func (e simpleEvent) At() float64    { return e.at }
func (e simpleEvent) Data() any      { return e.data }

// NewEvent creates a simple Event implementation.
func NewEvent(typ, src string, at float64, data any) Event {
	return simpleEvent{typeStr: typ, source: src, at: at, data: data}
}

type subscription struct {
	id        string
	eventType string
	handler   EventHandler
	active    bool
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) IsActive() bool    { return s.active }
func (s *subscription) Cancel() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

const wildcard = ""

// inMemoryBus keeps subscriptions per event type in registration order.
type inMemoryBus struct {
	mu        sync.RWMutex
	handlers  map[string][]*subscription
	metrics   EventBusMetrics
	observers []EventBusObserver
}

// New creates a new EventBus instance.
func New() EventBus {
	return &inMemoryBus{
		handlers: make(map[string][]*subscription),
	}
}

func (b *inMemoryBus) Publish(event Event) error {
	return b.deliver(event)
}

func (b *inMemoryBus) PublishWithFilters(event Event, filters ...EventFilter) error {
	for _, f := range filters {
		if !f(event) {
			b.mu.Lock()
			if len(b.observers) > 0 {
				b.metrics.DroppedByFilters++
			}
			b.mu.Unlock()
			return nil
		}
	}
	return b.Publish(event)
}

func (b *inMemoryBus) PublishBatch(events ...Event) error {
	var all error
	for _, e := range events {
		if err := b.Publish(e); err != nil {
			all = errors.Join(all, err)
		}
	}
	return all
}

func (b *inMemoryBus) Subscribe(eventType string, handler EventHandler) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	return b.subscribe(eventType, handler), nil
}

func (b *inMemoryBus) SubscribeAll(handler EventHandler) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	return b.subscribe(wildcard, handler), nil
}

func (b *inMemoryBus) subscribe(eventType string, handler EventHandler) *subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := &subscription{id: uuid.NewString(), eventType: eventType, handler: handler, active: true}
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[eventType]
		for i, other := range subs {
			if other == s {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
		s.active = false
	}
	b.handlers[eventType] = append(b.handlers[eventType], s)
	return s
}

func (b *inMemoryBus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

func (b *inMemoryBus) AddObserver(obs EventBusObserver) {
	b.mu.Lock()
	b.observers = append(b.observers, obs)
	b.mu.Unlock()
}

func (b *inMemoryBus) RemoveObserver(obs EventBusObserver) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, o := range b.observers {
		if o == obs {
			b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
			return
		}
	}
}

func (b *inMemoryBus) GetMetrics() EventBusMetrics {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.metrics
}

func (b *inMemoryBus) deliver(event Event) error {
	etype := event.Type()

	b.mu.RLock()
	typed := b.handlers[etype]
	all := b.handlers[wildcard]
	subs := make([]*subscription, 0, len(typed)+len(all))
	subs = append(subs, typed...)
	if etype != wildcard {
		subs = append(subs, all...)
	}
	observers := append([]EventBusObserver(nil), b.observers...)
	b.mu.RUnlock()

	for _, obs := range observers {
		obs.OnPublish(etype, event)
	}

	var joined error
	for _, s := range subs {
		if !s.active {
			continue
		}
		if err := s.handler(event); err != nil {
			joined = errors.Join(joined, err)
		}
	}

	if len(observers) > 0 {
		for _, obs := range observers {
			obs.OnDelivered(etype, len(subs), joined)
		}
		b.mu.Lock()
		b.metrics.Published++
		b.metrics.DeliveredHandlers += uint64(len(subs))
		if joined != nil {
			b.metrics.Errors++
		}
		var active uint64
		for _, list := range b.handlers {
			active += uint64(len(list))
		}
		b.metrics.SubscribersActive = active
		b.mu.Unlock()
	}
	return joined
}
