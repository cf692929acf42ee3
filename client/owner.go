package client

import (
	"context"
	"net/http"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

// Owner operations exist only on deployments using the owner authorization model.
const (
	OpGetOwner    = "getOwner"
	OpPutOwner    = "putOwner"
	OpDeleteOwner = "deleteOwner"
)

func (c *Client) GetOwner(ctx context.Context, thingID string) (*Result[string], error) {
	if err := c.requireModel(OpGetOwner, model.AuthorizationOwner); err != nil {
		return nil, err
	}
	if err := c.requireIDs(OpGetOwner, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[string](ctx, c, call{
		operation: OpGetOwner,
		method:    http.MethodGet,
		template:  ownerPath,
		params:    params{"thingId": thingID},
	})
}

func (c *Client) PutOwner(ctx context.Context, thingID, owner string) (*Result[string], error) {
	if err := c.requireModel(OpPutOwner, model.AuthorizationOwner); err != nil {
		return nil, err
	}
	if err := c.requireIDs(OpPutOwner, util.ID("thingId", thingID), util.ID("owner", owner)); err != nil {
		return nil, err
	}
	return send[string](ctx, c, call{
		operation: OpPutOwner,
		method:    http.MethodPut,
		template:  ownerPath,
		params:    params{"thingId": thingID},
		body:      owner,
	})
}

func (c *Client) DeleteOwner(ctx context.Context, thingID string) (*Result[NoContent], error) {
	if err := c.requireModel(OpDeleteOwner, model.AuthorizationOwner); err != nil {
		return nil, err
	}
	if err := c.requireIDs(OpDeleteOwner, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteOwner,
		method:    http.MethodDelete,
		template:  ownerPath,
		params:    params{"thingId": thingID},
	})
}
