package client

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryOption adds query parameters to a read.
type QueryOption func(url.Values)

// WithFields selects the fields of the response. Calling it without fields
// sends an empty selection (`fields=`), which is not the same as leaving the
// option out: that returns every field.
func WithFields(fields ...string) QueryOption {
	return func(v url.Values) {
		v.Set("fields", strings.Join(fields, ","))
	}
}

// WithFilter passes a search filter expression, e.g. `exists(features/geolocation)`.
func WithFilter(filter string) QueryOption {
	return func(v url.Values) {
		if filter != "" {
			v.Set("filter", filter)
		}
	}
}

func withIDs(ids []string) QueryOption {
	return func(v url.Values) {
		v.Set("ids", strings.Join(ids, ","))
	}
}

func withLimit(offset, count int) QueryOption {
	return func(v url.Values) {
		v.Set("option", fmt.Sprintf("limit(%d,%d)", offset, count))
	}
}

func buildQuery(opts []QueryOption) url.Values {
	if len(opts) == 0 {
		return nil
	}
	v := url.Values{}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// queryLiterals undoes the escaping of characters the Things API expects
// verbatim, as in `option=limit(0,200)` and `fields=thingId,features/geolocation`.
var queryLiterals = strings.NewReplacer("%28", "(", "%29", ")", "%2C", ",", "%2F", "/")

func encodeQuery(v url.Values) string {
	return queryLiterals.Replace(v.Encode())
}
