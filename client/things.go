package client

import (
	"context"
	"fmt"
	"net/http"

	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

const (
	OpGetThing     = "getThing"
	OpListThings   = "listThings"
	OpSearchThings = "searchThings"
	OpCreateThing  = "createThing"
	OpReplaceThing = "replaceThing"
	OpDeleteThing  = "deleteThing"
)

func (c *Client) GetThing(ctx context.Context, thingID string, opts ...QueryOption) (*Result[model.Thing], error) {
	if err := c.requireIDs(OpGetThing, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[model.Thing](ctx, c, call{
		operation: OpGetThing,
		method:    http.MethodGet,
		template:  thingPath,
		params:    params{"thingId": thingID},
		query:     opts,
	})
}

// ListThings fetches the things with the given ids in one request. Without
// ids the ids parameter is left out and the service decides what to list.
func (c *Client) ListThings(ctx context.Context, thingIDs []string, opts ...QueryOption) (*Result[[]model.Thing], error) {
	if err := c.validator.RequireEach(OpListThings, "thingId", thingIDs); err != nil {
		return nil, c.reject(OpListThings, err)
	}
	query := append([]QueryOption{}, opts...)
	if len(thingIDs) > 0 {
		query = append(query, withIDs(thingIDs))
	}
	return send[[]model.Thing](ctx, c, call{
		operation: OpListThings,
		method:    http.MethodGet,
		template:  thingsPath,
		query:     query,
	})
}

// SearchThings returns one page of things, starting at offset.
func (c *Client) SearchThings(ctx context.Context, offset, count int, opts ...QueryOption) (*Result[model.SearchResult], error) {
	if err := c.validator.ValidatePage(OpSearchThings, offset, count); err != nil {
		return nil, c.reject(OpSearchThings, err)
	}
	return send[model.SearchResult](ctx, c, call{
		operation: OpSearchThings,
		method:    http.MethodGet,
		template:  searchPath,
		query:     append(append([]QueryOption{}, opts...), withLimit(offset, count)),
	})
}

// CreateThing posts a thing and lets the service choose the id; the new
// resource is reported in Result.Location.
func (c *Client) CreateThing(ctx context.Context, thing model.Thing) (*Result[model.Thing], error) {
	return send[model.Thing](ctx, c, call{
		operation: OpCreateThing,
		method:    http.MethodPost,
		template:  thingsPath,
		body:      thing,
	})
}

// ReplaceThing creates or fully replaces the thing under thingID. Use
// Result.Created to tell the two apart.
func (c *Client) ReplaceThing(ctx context.Context, thingID string, thing model.Thing) (*Result[model.Thing], error) {
	if err := c.requireIDs(OpReplaceThing, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	if thing.ThingID != "" && thing.ThingID != thingID {
		return nil, c.reject(OpReplaceThing, &things_errors.ValidationError{
			Operation: OpReplaceThing,
			Field:     "thingId",
			Err:       fmt.Errorf("body thingId %q does not match %q", thing.ThingID, thingID),
		})
	}
	return send[model.Thing](ctx, c, call{
		operation: OpReplaceThing,
		method:    http.MethodPut,
		template:  thingPath,
		params:    params{"thingId": thingID},
		body:      thing,
	})
}

func (c *Client) DeleteThing(ctx context.Context, thingID string) (*Result[NoContent], error) {
	if err := c.requireIDs(OpDeleteThing, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteThing,
		method:    http.MethodDelete,
		template:  thingPath,
		params:    params{"thingId": thingID},
	})
}
