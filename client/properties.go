package client

import (
	"context"
	"net/http"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

const (
	OpGetProperties    = "getProperties"
	OpPutProperties    = "putProperties"
	OpDeleteProperties = "deleteProperties"
	OpGetProperty      = "getProperty"
	OpPutProperty      = "putProperty"
	OpDeleteProperty   = "deleteProperty"
)

func (c *Client) GetProperties(ctx context.Context, thingID, featureID string, opts ...QueryOption) (*Result[model.Value], error) {
	if err := c.requireIDs(OpGetProperties, util.ID("thingId", thingID), util.ID("featureId", featureID)); err != nil {
		return nil, err
	}
	return send[model.Value](ctx, c, call{
		operation: OpGetProperties,
		method:    http.MethodGet,
		template:  propertiesPath,
		params:    params{"thingId": thingID, "featureId": featureID},
		query:     opts,
	})
}

func (c *Client) PutProperties(ctx context.Context, thingID, featureID string, properties model.Value) (*Result[model.Value], error) {
	if err := c.requireIDs(OpPutProperties, util.ID("thingId", thingID), util.ID("featureId", featureID)); err != nil {
		return nil, err
	}
	return send[model.Value](ctx, c, call{
		operation: OpPutProperties,
		method:    http.MethodPut,
		template:  propertiesPath,
		params:    params{"thingId": thingID, "featureId": featureID},
		body:      properties,
	})
}

func (c *Client) DeleteProperties(ctx context.Context, thingID, featureID string) (*Result[NoContent], error) {
	if err := c.requireIDs(OpDeleteProperties, util.ID("thingId", thingID), util.ID("featureId", featureID)); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteProperties,
		method:    http.MethodDelete,
		template:  propertiesPath,
		params:    params{"thingId": thingID, "featureId": featureID},
	})
}

// GetProperty reads one property by JSON pointer, e.g. "geoposition/latitude".
func (c *Client) GetProperty(ctx context.Context, thingID, featureID, pointer string) (*Result[model.Value], error) {
	if err := c.requireIDs(OpGetProperty,
		util.ID("thingId", thingID), util.ID("featureId", featureID), util.ID("pointer", trimPointer(pointer))); err != nil {
		return nil, err
	}
	return send[model.Value](ctx, c, call{
		operation: OpGetProperty,
		method:    http.MethodGet,
		template:  propertiesPath,
		params:    params{"thingId": thingID, "featureId": featureID, "pointer": pointer},
	})
}

// PutProperty creates (201) or replaces (204) the property at pointer.
func (c *Client) PutProperty(ctx context.Context, thingID, featureID, pointer string, value model.Value) (*Result[model.Value], error) {
	if err := c.requireIDs(OpPutProperty,
		util.ID("thingId", thingID), util.ID("featureId", featureID), util.ID("pointer", trimPointer(pointer))); err != nil {
		return nil, err
	}
	return send[model.Value](ctx, c, call{
		operation: OpPutProperty,
		method:    http.MethodPut,
		template:  propertiesPath,
		params:    params{"thingId": thingID, "featureId": featureID, "pointer": pointer},
		body:      value,
	})
}

func (c *Client) DeleteProperty(ctx context.Context, thingID, featureID, pointer string) (*Result[NoContent], error) {
	if err := c.requireIDs(OpDeleteProperty,
		util.ID("thingId", thingID), util.ID("featureId", featureID), util.ID("pointer", trimPointer(pointer))); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteProperty,
		method:    http.MethodDelete,
		template:  propertiesPath,
		params:    params{"thingId": thingID, "featureId": featureID, "pointer": pointer},
	})
}
