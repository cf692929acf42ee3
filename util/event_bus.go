// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

type subscription struct {
	eventType string
	handler   EventHandler
	queue     chan Event
	done      chan struct{}
}

// EventBus fans events out to subscribers. Each subscriber has its own queue
// and goroutine, so a handler sees events in publish order and a slow handler
// never blocks Publish.
type EventBus struct {
	subscribers map[string][]*subscription
	mu          sync.RWMutex
	errorChan   chan error
	queueSize   int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// NewEventBus creates a new EventBus
func NewEventBus(queueSize int) *EventBus {
	if queueSize <= 0 {
		queueSize = 100
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &EventBus{
		subscribers: make(map[string][]*subscription),
		errorChan:   make(chan error, 100),
		queueSize:   queueSize,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Subscribe adds a new subscriber for a specific event type and returns a
// function that removes it again.
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) (unsubscribe func()) {
	sub := &subscription{
		eventType: eventType,
		handler:   handler,
		queue:     make(chan Event, eb.queueSize),
		done:      make(chan struct{}),
	}

	eb.mu.Lock()
	eb.subscribers[eventType] = append(eb.subscribers[eventType], sub)
	eb.mu.Unlock()

	eb.wg.Add(1)
	go eb.run(sub)

	var once sync.Once
	return func() {
		once.Do(func() {
			eb.remove(sub)
			close(sub.done)
		})
	}
}

// Publish queues an event for all subscribers. An event is dropped for a
// subscriber whose queue is full.
func (eb *EventBus) Publish(eventType string, payload interface{}) {
	eb.mu.RLock()
	subs := append([]*subscription(nil), eb.subscribers[eventType]...)
	eb.mu.RUnlock()

	event := Event{Type: eventType, Payload: payload}
	for _, sub := range subs {
		select {
		case sub.queue <- event:
		default:
			logger.Warn("Subscriber queue full, dropping event", zap.String("eventType", eventType))
		}
	}
}

// Start begins processing handler errors until ctx is done, then closes the bus.
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

// Close stops all subscribers and waits for in-flight handlers to return.
func (eb *EventBus) Close() {
	eb.cancel()
	eb.wg.Wait()
}

func (eb *EventBus) run(sub *subscription) {
	defer eb.wg.Done()
	for {
		select {
		case event := <-sub.queue:
			if err := sub.handler(eb.ctx, event); err != nil {
				select {
				case eb.errorChan <- fmt.Errorf("event handler error: %w", err):
				default:
					// If error channel is full, log the error
					logger.Error("Error channel full, logging event handler error",
						zap.Error(err),
						zap.String("eventType", sub.eventType))
				}
			}
		case <-sub.done:
			return
		case <-eb.ctx.Done():
			return
		}
	}
}

func (eb *EventBus) remove(sub *subscription) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	handlers := eb.subscribers[sub.eventType]
	for i, h := range handlers {
		if h == sub {
			eb.subscribers[sub.eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// processErrors handles errors from event handlers
func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			eb.Close()
			return
		}
	}
}
