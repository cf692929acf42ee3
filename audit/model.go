// audit/model.go
package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EntryType classifies a response log entry.
type EntryType string

const (
	EntrySuccess EntryType = "success"
	EntryError   EntryType = "error"
	EntryWarning EntryType = "warning"
)

// TimestampLayout is RFC 3339 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Entry is one attempted operation against the Things service.
type Entry struct {
	ID         string    `json:"id"`
	Type       EntryType `json:"type"`
	Operation  string    `json:"operation"`
	Timestamp  time.Time `json:"timestamp"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	return json.Marshal(struct {
		plain
		Timestamp string `json:"timestamp"`
	}{
		plain:     plain(e),
		Timestamp: e.Timestamp.UTC().Format(TimestampLayout),
	})
}

// Order decides whether Entries lists the latest entry first or last.
type Order int

const (
	NewestFirst Order = iota
	OldestFirst
)

func (o Order) String() string {
	if o == OldestFirst {
		return "oldest-first"
	}
	return "newest-first"
}

func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newest-first":
		return NewestFirst, nil
	case "oldest-first":
		return OldestFirst, nil
	}
	return NewestFirst, fmt.Errorf("unknown response log order %q", s)
}
