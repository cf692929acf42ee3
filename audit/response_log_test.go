package audit_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
	thingsmock "github.com/dev-mohitbeniwal/thingsconsole/test/mock"
)

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func TestResponseLog_ClearThenRecord(t *testing.T) {
	log := audit.NewResponseLog()
	for i := 0; i < 7; i++ {
		log.Record(audit.EntrySuccess, "getThing", 200, "ok")
	}
	require.Equal(t, 7, log.Len())

	log.Clear()
	assert.Equal(t, 0, log.Len())
	assert.Empty(t, log.Entries())

	log.Record(audit.EntryError, "deleteThing", 404, "Not Found")
	assert.Equal(t, 1, log.Len())
}

func TestResponseLog_Order(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	newest := audit.NewResponseLog(audit.WithClock(fixedClock(start)))
	oldest := audit.NewResponseLog(audit.WithOrder(audit.OldestFirst), audit.WithClock(fixedClock(start)))
	for _, op := range []string{"first", "second", "third"} {
		newest.Record(audit.EntrySuccess, op, 200, "")
		oldest.Record(audit.EntrySuccess, op, 200, "")
	}

	assert.Equal(t, []string{"third", "second", "first"}, operations(newest.Entries()))
	assert.Equal(t, []string{"first", "second", "third"}, operations(oldest.Entries()))
	assert.True(t, newest.Entries()[0].Timestamp.After(newest.Entries()[2].Timestamp))
}

func TestResponseLog_Capacity(t *testing.T) {
	log := audit.NewResponseLog(audit.WithCapacity(3), audit.WithOrder(audit.OldestFirst))
	for i := 1; i <= 5; i++ {
		log.Record(audit.EntrySuccess, fmt.Sprintf("op-%d", i), 200, "")
	}
	assert.Equal(t, 3, log.Len())
	assert.Equal(t, []string{"op-3", "op-4", "op-5"}, operations(log.Entries()))
}

func TestResponseLog_RecordFields(t *testing.T) {
	at := time.Date(2024, time.March, 1, 12, 0, 0, 123456789, time.FixedZone("CET", 3600))
	log := audit.NewResponseLog(audit.WithClock(func() time.Time { return at }))

	entry := log.Record(audit.EntryWarning, "putAttribute", 0, "putAttribute: path must not be empty")
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, audit.EntryWarning, entry.Type)
	assert.Equal(t, 0, entry.StatusCode)
	assert.Equal(t, time.UTC, entry.Timestamp.Location())

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2024-03-01T11:00:00.123Z", decoded["timestamp"])
	assert.Equal(t, "warning", decoded["type"])
	assert.Equal(t, "putAttribute", decoded["operation"])

	var back audit.Entry
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, entry.Timestamp.Equal(back.Timestamp))
}

func TestResponseLog_StripsSideChannel(t *testing.T) {
	log := audit.NewResponseLog()
	entry := log.Record(audit.EntrySuccess, "getThing", 200,
		`{"$status":200,"thingId":"t1","$promise":{},"$resolved":true,"attributes":{"$keep":1}}`)
	assert.Equal(t, `{"thingId":"t1","attributes":{"$keep":1}}`, entry.Message)

	assert.Equal(t, "Not Found", audit.StripSideChannel("Not Found"))
	assert.Equal(t, `["$status"]`, audit.StripSideChannel(`["$status"]`))
	assert.Equal(t, `{"a": 1}`, audit.StripSideChannel(`{"a": 1}`))
	assert.Equal(t, `{"$data"`, audit.StripSideChannel(`{"$data"`))
}

func TestResponseLog_ConcurrentRecord(t *testing.T) {
	log := audit.NewResponseLog()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				log.Record(audit.EntrySuccess, "getThing", 200, "")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1000, log.Len())
}

func TestResponseLog_Restore(t *testing.T) {
	log := audit.NewResponseLog(audit.WithCapacity(2), audit.WithOrder(audit.OldestFirst))
	log.Restore([]audit.Entry{{Operation: "a"}, {Operation: "b"}, {Operation: "c"}})
	assert.Equal(t, []string{"b", "c"}, operations(log.Entries()))
}

func TestResponseLog_MirrorsToSinks(t *testing.T) {
	sink := new(thingsmock.MockSink)
	appended := make(chan audit.Entry, 1)
	cleared := make(chan struct{}, 1)
	sink.On("Append", mock.Anything, mock.AnythingOfType("audit.Entry")).
		Run(func(args mock.Arguments) { appended <- args.Get(1).(audit.Entry) }).
		Return(nil)
	sink.On("Clear", mock.Anything).
		Run(func(mock.Arguments) { cleared <- struct{}{} }).
		Return(nil)

	log := audit.NewResponseLog(audit.WithSink(sink))
	defer log.Close()

	entry := log.Record(audit.EntrySuccess, "getThing", 200, "{}")
	select {
	case got := <-appended:
		assert.Equal(t, entry, got)
	case <-time.After(2 * time.Second):
		t.Fatal("entry was not mirrored")
	}

	log.Clear()
	select {
	case <-cleared:
	case <-time.After(2 * time.Second):
		t.Fatal("clear was not mirrored")
	}
	sink.AssertExpectations(t)
}

func TestParseOrder(t *testing.T) {
	order, err := audit.ParseOrder("oldest-first")
	require.NoError(t, err)
	assert.Equal(t, audit.OldestFirst, order)

	order, err = audit.ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, audit.NewestFirst, order)

	_, err = audit.ParseOrder("random")
	assert.Error(t, err)
}

func operations(entries []audit.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Operation
	}
	return out
}

type recordingSink struct {
	mu  sync.Mutex
	ids []string
}

func (s *recordingSink) Append(_ context.Context, entry audit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, entry.ID)
	return nil
}

func (s *recordingSink) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	return nil
}

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

func TestResponseLog_MirrorFollowsLogOrder(t *testing.T) {
	sink := &recordingSink{}
	log := audit.NewResponseLog(audit.WithSink(sink), audit.WithOrder(audit.OldestFirst))
	defer log.Close()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				log.Record(audit.EntrySuccess, "getThing", 200, "")
			}
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return len(sink.snapshot()) == 50 }, 2*time.Second, 5*time.Millisecond)
	want := make([]string, 0, 50)
	for _, e := range log.Entries() {
		want = append(want, e.ID)
	}
	assert.Equal(t, want, sink.snapshot())
}
