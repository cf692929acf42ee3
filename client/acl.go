package client

import (
	"context"
	"net/http"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

// ACL operations exist only on deployments using the acl authorization model.
const (
	OpGetACL         = "getAcl"
	OpPutACL         = "putAcl"
	OpGetACLEntry    = "getAclEntry"
	OpPutACLEntry    = "putAclEntry"
	OpDeleteACLEntry = "deleteAclEntry"
)

func (c *Client) GetACL(ctx context.Context, thingID string) (*Result[model.ACL], error) {
	if err := c.requireModel(OpGetACL, model.AuthorizationACL); err != nil {
		return nil, err
	}
	if err := c.requireIDs(OpGetACL, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[model.ACL](ctx, c, call{
		operation: OpGetACL,
		method:    http.MethodGet,
		template:  aclPath,
		params:    params{"thingId": thingID},
	})
}

// PutACL replaces the whole access control list.
func (c *Client) PutACL(ctx context.Context, thingID string, acl model.ACL) (*Result[model.ACL], error) {
	if err := c.requireModel(OpPutACL, model.AuthorizationACL); err != nil {
		return nil, err
	}
	if err := c.requireIDs(OpPutACL, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	if acl == nil {
		acl = model.ACL{}
	}
	return send[model.ACL](ctx, c, call{
		operation: OpPutACL,
		method:    http.MethodPut,
		template:  aclPath,
		params:    params{"thingId": thingID},
		body:      acl,
	})
}

func (c *Client) GetACLEntry(ctx context.Context, thingID, subject string) (*Result[model.Permissions], error) {
	if err := c.requireModel(OpGetACLEntry, model.AuthorizationACL); err != nil {
		return nil, err
	}
	if err := c.requireIDs(OpGetACLEntry, util.ID("thingId", thingID), util.ID("subject", subject)); err != nil {
		return nil, err
	}
	return send[model.Permissions](ctx, c, call{
		operation: OpGetACLEntry,
		method:    http.MethodGet,
		template:  aclPath,
		params:    params{"thingId": thingID, "subject": subject},
	})
}

// PutACLEntry grants a subject the given permissions; 201 when the subject
// had no entry before.
func (c *Client) PutACLEntry(ctx context.Context, thingID, subject string, permissions model.Permissions) (*Result[model.Permissions], error) {
	if err := c.requireModel(OpPutACLEntry, model.AuthorizationACL); err != nil {
		return nil, err
	}
	if err := c.requireIDs(OpPutACLEntry, util.ID("thingId", thingID), util.ID("subject", subject)); err != nil {
		return nil, err
	}
	return send[model.Permissions](ctx, c, call{
		operation: OpPutACLEntry,
		method:    http.MethodPut,
		template:  aclPath,
		params:    params{"thingId": thingID, "subject": subject},
		body:      permissions,
	})
}

func (c *Client) DeleteACLEntry(ctx context.Context, thingID, subject string) (*Result[NoContent], error) {
	if err := c.requireModel(OpDeleteACLEntry, model.AuthorizationACL); err != nil {
		return nil, err
	}
	if err := c.requireIDs(OpDeleteACLEntry, util.ID("thingId", thingID), util.ID("subject", subject)); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteACLEntry,
		method:    http.MethodDelete,
		template:  aclPath,
		params:    params{"thingId": thingID, "subject": subject},
	})
}
