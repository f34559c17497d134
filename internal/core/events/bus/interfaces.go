package bus

import "time"

// Event is a transition notification published by a controller.
type Event struct {
	ID        string
	Type      string
	Source    string
	Timestamp time.Time
	Data      map[string]any
}

// Handler consumes events of a subscribed type.
type Handler func(Event)

// Subscription is a handle for an active subscription.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel()
}

// EventBus is a synchronous in-process pub/sub channel for controller
// transitions. Delivery happens inside Publish, in subscription order.
type EventBus interface {
	Publish(event Event) error
	Subscribe(eventType string, handler Handler) (Subscription, error)
}
