package client

import (
	"context"
	"net/http"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

const (
	OpGetAttributes    = "getAttributes"
	OpPutAttributes    = "putAttributes"
	OpDeleteAttributes = "deleteAttributes"
	OpGetAttribute     = "getAttribute"
	OpPutAttribute     = "putAttribute"
	OpDeleteAttribute  = "deleteAttribute"
)

func (c *Client) GetAttributes(ctx context.Context, thingID string, opts ...QueryOption) (*Result[model.Value], error) {
	if err := c.requireIDs(OpGetAttributes, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[model.Value](ctx, c, call{
		operation: OpGetAttributes,
		method:    http.MethodGet,
		template:  attributesPath,
		params:    params{"thingId": thingID},
		query:     opts,
	})
}

func (c *Client) PutAttributes(ctx context.Context, thingID string, attributes model.Value) (*Result[model.Value], error) {
	if err := c.requireIDs(OpPutAttributes, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[model.Value](ctx, c, call{
		operation: OpPutAttributes,
		method:    http.MethodPut,
		template:  attributesPath,
		params:    params{"thingId": thingID},
		body:      attributes,
	})
}

func (c *Client) DeleteAttributes(ctx context.Context, thingID string) (*Result[NoContent], error) {
	if err := c.requireIDs(OpDeleteAttributes, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteAttributes,
		method:    http.MethodDelete,
		template:  attributesPath,
		params:    params{"thingId": thingID},
	})
}

// GetAttribute reads the attribute at a slash-separated path such as
// "location/latitude".
func (c *Client) GetAttribute(ctx context.Context, thingID, path string) (*Result[model.Value], error) {
	if err := c.requireIDs(OpGetAttribute, util.ID("thingId", thingID), util.ID("path", trimPointer(path))); err != nil {
		return nil, err
	}
	return send[model.Value](ctx, c, call{
		operation: OpGetAttribute,
		method:    http.MethodGet,
		template:  attributesPath,
		params:    params{"thingId": thingID, "path": path},
	})
}

// PutAttribute creates (201) or replaces (204) one attribute.
func (c *Client) PutAttribute(ctx context.Context, thingID, path string, value model.Value) (*Result[model.Value], error) {
	if err := c.requireIDs(OpPutAttribute, util.ID("thingId", thingID), util.ID("path", trimPointer(path))); err != nil {
		return nil, err
	}
	return send[model.Value](ctx, c, call{
		operation: OpPutAttribute,
		method:    http.MethodPut,
		template:  attributesPath,
		params:    params{"thingId": thingID, "path": path},
		body:      value,
	})
}

func (c *Client) DeleteAttribute(ctx context.Context, thingID, path string) (*Result[NoContent], error) {
	if err := c.requireIDs(OpDeleteAttribute, util.ID("thingId", thingID), util.ID("path", trimPointer(path))); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteAttribute,
		method:    http.MethodDelete,
		template:  attributesPath,
		params:    params{"thingId": thingID, "path": path},
	})
}
