// Package fakethings serves an in-memory Things REST API for tests.
package fakethings

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
)

// Request is what the server saw of one call.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Query    url.Values
	Header   http.Header
	Body     string
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	things   map[string]model.Value
	requests []Request
	username string
	password string
	nextID   int
	failNext int
}

type Option func(*Server)

// WithBasicAuth makes the server answer 401 unless these credentials are sent.
func WithBasicAuth(username, password string) Option {
	return func(s *Server) {
		s.username = username
		s.password = password
	}
}

func New(opts ...Option) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{things: map[string]model.Value{}}
	for _, opt := range opts {
		opt(s)
	}

	engine := gin.New()
	engine.Any("/cr/1/*rest", s.handle)
	s.Server = httptest.NewServer(engine)
	return s
}

// Seed stores a thing as if it had been created earlier.
func (s *Server) Seed(thing model.Thing) {
	doc := model.MustParse(mustJSON(thing))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.things[thing.ThingID] = doc
}

// Thing returns the stored document of a thing.
func (s *Server) Thing(thingID string) (model.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.things[thingID]
	return doc, ok
}

// RequestCount is the number of calls received so far.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// FailNext answers the next call with status and an error body.
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = status
}

func (s *Server) handle(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, Request{
		Method:   c.Request.Method,
		Path:     c.Request.URL.EscapedPath(),
		RawQuery: c.Request.URL.RawQuery,
		Query:    c.Request.URL.Query(),
		Header:   c.Request.Header.Clone(),
		Body:     string(body),
	})

	if s.username != "" {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || user != s.username || pass != s.password {
			c.Header("WWW-Authenticate", `Basic realm="Things"`)
			writeError(c, http.StatusUnauthorized, "things:unauthorized", "missing or wrong credentials")
			return
		}
	}
	if s.failNext != 0 {
		status := s.failNext
		s.failNext = 0
		writeError(c, status, "things:injected", http.StatusText(status))
		return
	}

	segments, err := splitPath(strings.TrimPrefix(c.Request.URL.EscapedPath(), "/cr/1"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "things:path.invalid", err.Error())
		return
	}

	switch {
	case len(segments) == 2 && segments[0] == "search" && segments[1] == "things" && c.Request.Method == http.MethodGet:
		s.search(c)
	case len(segments) == 1 && segments[0] == "things":
		switch c.Request.Method {
		case http.MethodGet:
			s.list(c)
		case http.MethodPost:
			s.create(c, body)
		default:
			writeError(c, http.StatusMethodNotAllowed, "things:method.notallowed", c.Request.Method)
		}
	case len(segments) >= 2 && segments[0] == "things":
		keys, ok := resourceKeys(segments[2:])
		if !ok {
			writeError(c, http.StatusNotFound, "things:resource.notfound", c.Request.URL.Path)
			return
		}
		s.resource(c, segments[1], keys, body)
	default:
		writeError(c, http.StatusNotFound, "things:resource.notfound", c.Request.URL.Path)
	}
}

// resourceKeys maps the path below /things/{id} to keys in the thing document.
func resourceKeys(rest []string) ([]string, bool) {
	if len(rest) == 0 {
		return nil, true
	}
	switch rest[0] {
	case "attributes":
		return append([]string{"attributes"}, rest[1:]...), true
	case "acl":
		if len(rest) > 2 {
			return nil, false
		}
		return rest, true
	case "owner":
		return rest, len(rest) == 1
	case "features":
		switch {
		case len(rest) <= 2:
			return rest, true
		case rest[2] == "properties":
			return rest, true
		}
	}
	return nil, false
}

func (s *Server) resource(c *gin.Context, thingID string, keys []string, body []byte) {
	doc, exists := s.things[thingID]

	switch c.Request.Method {
	case http.MethodGet:
		if !exists {
			writeThingNotFound(c, thingID)
			return
		}
		v, ok := doc.Lookup(keys...)
		if !ok {
			writeError(c, http.StatusNotFound, "things:resource.notfound", strings.Join(keys, "/"))
			return
		}
		if len(keys) == 0 {
			v = project(v, c.Request.URL.Query())
		}
		writeJSON(c, http.StatusOK, v)

	case http.MethodPut:
		value, err := model.Parse(body)
		if err != nil {
			writeError(c, http.StatusBadRequest, "things:json.invalid", err.Error())
			return
		}
		if len(keys) == 0 {
			if value.Kind() != model.KindObject {
				writeError(c, http.StatusBadRequest, "things:thing.invalid", "thing must be an object")
				return
			}
			value.Set("thingId", model.String(thingID))
			s.things[thingID] = value
			if exists {
				c.Status(http.StatusNoContent)
				return
			}
			c.Header("Location", "/cr/1/things/"+url.PathEscape(thingID))
			writeJSON(c, http.StatusCreated, value)
			return
		}
		if !exists {
			writeThingNotFound(c, thingID)
			return
		}
		_, had := doc.Lookup(keys...)
		setPath(&doc, keys, value)
		s.things[thingID] = doc
		if had {
			c.Status(http.StatusNoContent)
			return
		}
		c.Header("Location", c.Request.URL.EscapedPath())
		writeJSON(c, http.StatusCreated, value)

	case http.MethodDelete:
		if !exists {
			writeThingNotFound(c, thingID)
			return
		}
		if len(keys) == 0 {
			delete(s.things, thingID)
			c.Status(http.StatusNoContent)
			return
		}
		if !deletePath(&doc, keys) {
			writeError(c, http.StatusNotFound, "things:resource.notfound", strings.Join(keys, "/"))
			return
		}
		s.things[thingID] = doc
		c.Status(http.StatusNoContent)

	default:
		writeError(c, http.StatusMethodNotAllowed, "things:method.notallowed", c.Request.Method)
	}
}

func (s *Server) list(c *gin.Context) {
	var ids []string
	if raw, ok := c.GetQuery("ids"); ok && raw != "" {
		ids = strings.Split(raw, ",")
	} else {
		ids = s.sortedIDs()
	}
	items := []model.Value{}
	for _, id := range ids {
		if doc, ok := s.things[id]; ok {
			items = append(items, project(doc, c.Request.URL.Query()))
		}
	}
	writeJSON(c, http.StatusOK, model.Array(items...))
}

func (s *Server) create(c *gin.Context, body []byte) {
	value, err := model.Parse(body)
	if err != nil || value.Kind() != model.KindObject {
		writeError(c, http.StatusBadRequest, "things:thing.invalid", "thing must be an object")
		return
	}
	thingID, _ := value.Get("thingId")
	id, _ := thingID.StringValue()
	if id == "" {
		s.nextID++
		id = fmt.Sprintf("fake:thing-%d", s.nextID)
		value.Set("thingId", model.String(id))
	}
	if _, exists := s.things[id]; exists {
		writeError(c, http.StatusConflict, "things:thing.conflict", fmt.Sprintf("thing %s already exists", id))
		return
	}
	s.things[id] = value
	c.Header("Location", "/cr/1/things/"+url.PathEscape(id))
	writeJSON(c, http.StatusCreated, value)
}

var limitOption = regexp.MustCompile(`^limit\((\d+),(\d+)\)$`)

func (s *Server) search(c *gin.Context) {
	offset, count := 0, 25
	if option := c.Query("option"); option != "" {
		m := limitOption.FindStringSubmatch(option)
		if m == nil {
			writeError(c, http.StatusBadRequest, "things:option.invalid", option)
			return
		}
		offset, _ = strconv.Atoi(m[1])
		count, _ = strconv.Atoi(m[2])
	}

	ids := s.sortedIDs()
	items := []model.Value{}
	for i := offset; i < len(ids) && i < offset+count; i++ {
		items = append(items, project(s.things[ids[i]], c.Request.URL.Query()))
	}
	result := model.Object(model.Member{Key: "items", Value: model.Array(items...)})
	if offset+count < len(ids) {
		result.Set("nextPageOffset", model.Int(int64(offset+count)))
	}
	writeJSON(c, http.StatusOK, result)
}

func (s *Server) sortedIDs() []string {
	ids := make([]string, 0, len(s.things))
	for id := range s.things {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// project applies the fields selection; fields= selects nothing.
func project(doc model.Value, query url.Values) model.Value {
	if _, ok := query["fields"]; !ok {
		return doc
	}
	out := model.Object()
	raw := query.Get("fields")
	if raw == "" {
		return out
	}
	for _, field := range strings.Split(raw, ",") {
		keys := strings.Split(strings.Trim(field, "/"), "/")
		if v, ok := doc.Lookup(keys...); ok {
			setPath(&out, keys, v)
		}
	}
	return out
}

func setPath(root *model.Value, keys []string, v model.Value) {
	if len(keys) == 1 {
		root.Set(keys[0], v)
		return
	}
	child, ok := root.Get(keys[0])
	if !ok || child.Kind() != model.KindObject {
		child = model.Object()
	}
	setPath(&child, keys[1:], v)
	root.Set(keys[0], child)
}

func deletePath(root *model.Value, keys []string) bool {
	if len(keys) == 1 {
		return root.Delete(keys[0])
	}
	child, ok := root.Get(keys[0])
	if !ok {
		return false
	}
	if !deletePath(&child, keys[1:]) {
		return false
	}
	root.Set(keys[0], child)
	return true
}

func splitPath(escaped string) ([]string, error) {
	parts := strings.Split(strings.Trim(escaped, "/"), "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		seg, err := url.PathUnescape(p)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	return out, nil
}

func writeThingNotFound(c *gin.Context, thingID string) {
	writeError(c, http.StatusNotFound, "things:thing.notfound",
		fmt.Sprintf("The Thing with ID '%s' could not be found or the requester had insufficient permissions to access it.", thingID))
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"status": status, "error": code, "message": message})
}

func writeJSON(c *gin.Context, status int, v model.Value) {
	c.Data(status, "application/json", []byte(v.String()))
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
