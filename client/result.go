package client

import (
	"encoding/json"
	"net/http"
)

// Outcome tells how an attempted operation ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeHTTPError
	OutcomeTransportError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHTTPError:
		return "http-error"
	case OutcomeTransportError:
		return "transport-error"
	}
	return "success"
}

// NoContent is the body type of operations that return nothing.
type NoContent struct{}

// Result is the uniform envelope of every operation. StatusCode is 0 when no
// response was received.
type Result[T any] struct {
	Operation  string
	Outcome    Outcome
	StatusCode int
	StatusText string
	Body       T
	Location   string
	Raw        []byte
}

// Created reports a 201: the PUT or POST made a new resource.
func (r *Result[T]) Created() bool {
	return r != nil && r.StatusCode == http.StatusCreated
}

// Updated reports a 200 or 204: the PUT replaced an existing resource.
func (r *Result[T]) Updated() bool {
	return r != nil && (r.StatusCode == http.StatusOK || r.StatusCode == http.StatusNoContent)
}

func (r *Result[T]) OK() bool {
	return r != nil && r.Outcome == OutcomeSuccess
}

// Envelope is the JSON form of a result served by the console.
type Envelope struct {
	Operation string          `json:"operation"`
	Status    int             `json:"status"`
	Body      json.RawMessage `json:"body,omitempty"`
	Location  string          `json:"location,omitempty"`
}

func (r *Result[T]) Envelope() Envelope {
	env := Envelope{Operation: r.Operation, Status: r.StatusCode, Location: r.Location}
	if len(r.Raw) > 0 && json.Valid(r.Raw) {
		env.Body = json.RawMessage(r.Raw)
	}
	return env
}
