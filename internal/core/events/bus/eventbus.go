package bus

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewEvent creates an Event with a generated ID and the current timestamp.
func NewEvent(eventType, source string, data map[string]any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// subscription implements Subscription.
type subscription struct {
	id        string
	eventType string
	handler   Handler
	active    bool
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) IsActive() bool    { return s.active }
func (s *subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
	s.active = false
}

// inMemoryBus is a thread-safe EventBus implementation.
type inMemoryBus struct {
	mu sync.RWMutex
	// handlers: eventType -> subID -> subscription
	handlers map[string]map[string]*subscription
}

// New creates a new EventBus instance.
func New() EventBus {
	return &inMemoryBus{
		handlers: make(map[string]map[string]*subscription),
	}
}

func (b *inMemoryBus) Publish(event Event) error {
	if event.Type == "" {
		return errors.New("event type is required")
	}

	b.mu.RLock()
	subs := make([]*subscription, 0, len(b.handlers[event.Type]))
	for _, s := range b.handlers[event.Type] {
		if s.active {
			subs = append(subs, s)
		}
	}
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
	return nil
}

func (b *inMemoryBus) Subscribe(eventType string, handler Handler) (Subscription, error) {
	if eventType == "" {
		return nil, errors.New("event type is required")
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[string]*subscription)
	}

	id := uuid.NewString()
	s := &subscription{id: id, eventType: eventType, handler: handler, active: true}
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
	}
	b.handlers[eventType][id] = s

	return s, nil
}
