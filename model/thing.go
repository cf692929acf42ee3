// model/thing.go
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Thing is the client-side projection of a digital twin. Things are fetched on
// demand and never cached; a fresh fetch replaces the previous projection.
type Thing struct {
	ThingID    string   `json:"thingId,omitempty"`
	ACL        ACL      `json:"acl,omitempty"`
	Owner      string   `json:"owner,omitempty"`
	Attributes *Value   `json:"attributes,omitempty"`
	Features   Features `json:"features,omitempty"`
}

// MarshalJSON keeps an empty acl or features map on the wire. A PUT replaces
// the whole thing, so dropping `"features": {}` would differ from sending it.
func (t Thing) MarshalJSON() ([]byte, error) {
	type wireThing struct {
		ThingID    string    `json:"thingId,omitempty"`
		ACL        *ACL      `json:"acl,omitempty"`
		Owner      string    `json:"owner,omitempty"`
		Attributes *Value    `json:"attributes,omitempty"`
		Features   *Features `json:"features,omitempty"`
	}
	w := wireThing{ThingID: t.ThingID, Owner: t.Owner, Attributes: t.Attributes}
	if t.ACL != nil {
		w.ACL = &t.ACL
	}
	if t.Features != nil {
		w.Features = &t.Features
	}
	return json.Marshal(w)
}

// Attribute returns the attribute stored under a top-level key.
func (t Thing) Attribute(key string) (Value, bool) {
	if t.Attributes == nil {
		return Value{}, false
	}
	return t.Attributes.Get(key)
}

// EmbeddedFeatures reads the reserved "features" sub-mapping that one API
// variant keeps inside the attributes instead of a top-level features field.
func (t Thing) EmbeddedFeatures() (Value, bool) {
	v, ok := t.Attribute("features")
	if !ok || v.Kind() != KindObject {
		return Value{}, false
	}
	return v, true
}

// Feature is a named sub-resource holding arbitrary properties.
type Feature struct {
	Properties *Value `json:"properties,omitempty"`
}

// Property looks up a property by a slash-separated pointer.
func (f Feature) Property(pointer string) (Value, bool) {
	if f.Properties == nil {
		return Value{}, false
	}
	pointer = strings.Trim(pointer, "/")
	if pointer == "" {
		return *f.Properties, true
	}
	return f.Properties.Lookup(strings.Split(pointer, "/")...)
}

type Features map[string]Feature

// Permissions is the fixed permission set of one ACL entry.
type Permissions struct {
	Read         bool `json:"READ"`
	Write        bool `json:"WRITE"`
	Administrate bool `json:"ADMINISTRATE"`
}

func AllPermissions() Permissions {
	return Permissions{Read: true, Write: true, Administrate: true}
}

func ReadOnly() Permissions {
	return Permissions{Read: true}
}

// ACL maps an authorization subject id to its permissions.
type ACL map[string]Permissions

// AuthorizationModel selects how a deployment expresses access control. A
// deployment supports exactly one of them.
type AuthorizationModel string

const (
	AuthorizationACL   AuthorizationModel = "acl"
	AuthorizationOwner AuthorizationModel = "owner"
)

func ParseAuthorizationModel(s string) (AuthorizationModel, error) {
	switch AuthorizationModel(strings.ToLower(strings.TrimSpace(s))) {
	case AuthorizationACL:
		return AuthorizationACL, nil
	case AuthorizationOwner:
		return AuthorizationOwner, nil
	}
	return "", fmt.Errorf("unknown authorization model %q", s)
}

// SearchResult is one page of the search endpoint.
type SearchResult struct {
	Items          []Thing `json:"items"`
	NextPageOffset *int    `json:"nextPageOffset,omitempty"`
}
