package audit_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
)

// esStub answers the index and search calls the repository makes.
type esStub struct {
	mu       sync.Mutex
	indexed  map[string]string
	searches []string
	paths    []string
}

func newESStub(t *testing.T) (*esStub, *httptest.Server) {
	stub := &esStub{indexed: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		stub.mu.Lock()
		defer stub.mu.Unlock()
		stub.paths = append(stub.paths, r.Method+" "+r.URL.Path)

		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "/_doc/"):
			id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
			stub.indexed[id] = string(body)
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"_id":"`+id+`","result":"created"}`)
		case strings.HasSuffix(r.URL.Path, "/_search"):
			stub.searches = append(stub.searches, string(body))
			hits := make([]string, 0, len(stub.indexed))
			for _, doc := range stub.indexed {
				hits = append(hits, `{"_source":`+doc+`}`)
			}
			io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[`+strings.Join(hits, ",")+`]}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":"not found"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return stub, srv
}

func TestElasticsearchRepository_AppendAndQuery(t *testing.T) {
	stub, srv := newESStub(t)
	repo, err := audit.NewElasticsearchRepository(srv.URL, "")
	require.NoError(t, err)
	ctx := context.Background()

	entry := entryAt("putAttribute", 5)
	entry.StatusCode = 201
	entry.Message = `{"value":21.5}`
	require.NoError(t, repo.Append(ctx, entry))

	stub.mu.Lock()
	require.Contains(t, stub.indexed, entry.ID)
	assert.Contains(t, stub.paths, "PUT /things-responses/_doc/"+entry.ID)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stub.indexed[entry.ID]), &doc))
	assert.Equal(t, "2024-03-01T12:00:05.000Z", doc["timestamp"])
	stub.mu.Unlock()

	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	entries, err := repo.QueryEntries(ctx, from, to, "putAttribute")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, 201, entries[0].StatusCode)
	assert.True(t, entry.Timestamp.Equal(entries[0].Timestamp))

	stub.mu.Lock()
	defer stub.mu.Unlock()
	require.Len(t, stub.searches, 1)
	assert.Contains(t, stub.searches[0], `"operation":"putAttribute"`)
	assert.Contains(t, stub.searches[0], `"gte":"2024-03-01T00:00:00.000Z"`)
}

func TestElasticsearchRepository_ClearKeepsHistory(t *testing.T) {
	stub, srv := newESStub(t)
	repo, err := audit.NewElasticsearchRepository(srv.URL, "console-history")
	require.NoError(t, err)

	require.NoError(t, repo.Append(context.Background(), entryAt("getThing", 1)))
	require.NoError(t, repo.Clear(context.Background()))

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Len(t, stub.indexed, 1)
	assert.Equal(t, []string{"PUT /console-history/_doc/id-1"}, stub.paths)
}

func TestElasticsearchRepository_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"type":"mapper_parsing_exception"}}`)
	}))
	defer srv.Close()
	repo, err := audit.NewElasticsearchRepository(srv.URL, "")
	require.NoError(t, err)

	assert.Error(t, repo.Append(context.Background(), entryAt("getThing", 1)))
	_, err = repo.QueryEntries(context.Background(), time.Unix(0, 0), time.Now(), "")
	assert.Error(t, err)
}

type fakeRepository struct {
	audit.Repository
	entries []audit.Entry
}

func (f *fakeRepository) QueryEntries(ctx context.Context, from, to time.Time, operation string) ([]audit.Entry, error) {
	return f.entries, nil
}

func TestService_History(t *testing.T) {
	svc := audit.NewService(&fakeRepository{entries: []audit.Entry{entryAt("getThing", 1)}})
	now := time.Now()

	entries, err := svc.History(context.Background(), now.Add(-time.Hour), now, "")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = svc.History(context.Background(), now, now.Add(-time.Hour), "")
	assert.ErrorIs(t, err, things_errors.ErrInvalidTimeRange)
}
