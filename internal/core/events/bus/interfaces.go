package bus

// EventBus is an in-process pub/sub bus for gameplay events.
//
// Delivery is synchronous in the publisher's goroutine and follows subscription
// order, so a simulation replayed from the same seed produces the same handler
// call sequence. Handler errors are joined and returned from Publish.
// All methods are safe for concurrent use.
type EventBus interface {
	// Publish delivers the event to every active subscriber of event.Type() and
	// to every wildcard subscriber.
	Publish(event Event) error
	// PublishBatch publishes events in order and joins their errors.
	PublishBatch(events ...Event) error
	// PublishWithFilters drops the event silently if any filter rejects it.
	PublishWithFilters(event Event, filters ...EventFilter) error

	// Subscribe registers a handler for one event type.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// SubscribeAll registers a handler that receives every event.
	SubscribeAll(handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Nil is ignored.
	Unsubscribe(Subscription) error

	// AddObserver registers an observer to receive delivery callbacks.
	AddObserver(obs EventBusObserver)
	// RemoveObserver unregisters a previously added observer.
	RemoveObserver(obs EventBusObserver)
	// GetMetrics returns a snapshot of the delivery counters. Counters are only
	// maintained while at least one observer is registered.
	GetMetrics() EventBusMetrics
}

// Event is an immutable message carried by the bus. At is the simulation
// time in seconds at which the event happened.
type Event interface {
	Type() string
	Source() string
	At() float64
	Data() any
}

type (
	// EventHandler is invoked per delivered event.
	EventHandler func(event Event) error
	// EventFilter decides whether an event should be delivered.
	EventFilter func(event Event) bool
)

// Subscription represents a registered handler.
type Subscription interface {
	ID() string
	// EventType is empty for wildcard subscriptions.
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}

// EventBusObserver is notified about deliveries. Observers should return quickly.
type EventBusObserver interface {
	OnPublish(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error)
}

type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	DroppedByFilters  uint64
	SubscribersActive uint64
}
