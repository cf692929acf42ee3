// audit/response_log.go
package audit

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

// EventLogChanged is published on the bus for every change to the log.
// Sinks see the changes in the order they were applied.
const EventLogChanged = "responselog.changed"

type ChangeOp string

const (
	OpAppend ChangeOp = "append"
	OpClear  ChangeOp = "clear"
)

// Change is the payload of EventLogChanged. Entry is unset for OpClear.
type Change struct {
	Op    ChangeOp
	Entry Entry
}

// Sink receives a copy of every recorded entry.
type Sink interface {
	Append(ctx context.Context, entry Entry) error
	Clear(ctx context.Context) error
}

type Option func(*ResponseLog)

func WithOrder(order Order) Option {
	return func(l *ResponseLog) { l.order = order }
}

// WithCapacity bounds the log; beyond n entries the oldest are dropped.
// Zero means unbounded.
func WithCapacity(n int) Option {
	return func(l *ResponseLog) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// WithEventBus publishes entries on bus instead of a bus owned by the log.
func WithEventBus(bus *util.EventBus) Option {
	return func(l *ResponseLog) { l.bus = bus }
}

func WithSink(sink Sink) Option {
	return func(l *ResponseLog) { l.sinks = append(l.sinks, sink) }
}

func WithClock(now func() time.Time) Option {
	return func(l *ResponseLog) { l.now = now }
}

// ResponseLog keeps the entries of all attempted operations. Entries are only
// ever appended by Record; the whole log can be cleared.
type ResponseLog struct {
	mu       sync.RWMutex
	entries  []Entry // oldest first
	order    Order
	capacity int

	now   func() time.Time
	bus   *util.EventBus
	owned bool
	sinks []Sink
	unsub []func()
}

func NewResponseLog(opts ...Option) *ResponseLog {
	l := &ResponseLog{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	if len(l.sinks) > 0 && l.bus == nil {
		l.bus = util.NewEventBus(0)
		l.owned = true
	}
	for _, sink := range l.sinks {
		l.subscribe(sink)
	}
	return l
}

func (l *ResponseLog) subscribe(sink Sink) {
	l.unsub = append(l.unsub, l.bus.Subscribe(EventLogChanged, func(ctx context.Context, e util.Event) error {
		change := e.Payload.(Change)
		if change.Op == OpClear {
			return sink.Clear(ctx)
		}
		return sink.Append(ctx, change.Entry)
	}))
}

// Record appends an entry stamped with the current time and returns it.
func (l *ResponseLog) Record(entryType EntryType, operation string, statusCode int, message string) Entry {
	entry := Entry{
		ID:         uuid.NewString(),
		Type:       entryType,
		Operation:  operation,
		Timestamp:  l.now().UTC().Truncate(time.Millisecond),
		StatusCode: statusCode,
		Message:    StripSideChannel(message),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if l.capacity > 0 && len(l.entries) > l.capacity {
		dropped := len(l.entries) - l.capacity
		l.entries = append([]Entry(nil), l.entries[dropped:]...)
	}
	l.publish(Change{Op: OpAppend, Entry: entry})
	l.mu.Unlock()

	logger.Debug("Response recorded",
		zap.String("operation", operation),
		zap.String("type", string(entryType)),
		zap.Int("status", statusCode))

	return entry
}

// Entries returns a copy of the log in the configured order.
func (l *ResponseLog) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	if l.order == OldestFirst {
		copy(out, l.entries)
		return out
	}
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

func (l *ResponseLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

func (l *ResponseLog) Order() Order { return l.order }

func (l *ResponseLog) Capacity() int { return l.capacity }

// Clear empties the log.
func (l *ResponseLog) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.publish(Change{Op: OpClear})
	l.mu.Unlock()
}

// publish must be called with mu held so sinks see changes in log order.
func (l *ResponseLog) publish(change Change) {
	if l.bus != nil {
		l.bus.Publish(EventLogChanged, change)
	}
}

// Restore replaces the log with previously persisted entries, oldest first,
// without mirroring them again.
func (l *ResponseLog) Restore(entries []Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.capacity > 0 && len(entries) > l.capacity {
		entries = entries[len(entries)-l.capacity:]
	}
	l.entries = append([]Entry(nil), entries...)
}

// Close detaches the sinks and stops a bus the log created itself.
func (l *ResponseLog) Close() {
	for _, unsubscribe := range l.unsub {
		unsubscribe()
	}
	l.unsub = nil
	if l.owned {
		l.bus.Close()
	}
}

// StripSideChannel removes top-level members whose key starts with "$" from
// a JSON object message. Any other message is returned unchanged.
func StripSideChannel(message string) string {
	trimmed := strings.TrimSpace(message)
	if !strings.HasPrefix(trimmed, "{") {
		return message
	}
	doc, err := model.Parse([]byte(trimmed))
	if err != nil || doc.Kind() != model.KindObject {
		return message
	}
	stripped := false
	for _, key := range doc.Keys() {
		if strings.HasPrefix(key, "$") {
			doc.Delete(key)
			stripped = true
		}
	}
	if !stripped {
		return message
	}
	return doc.String()
}
