package client

import (
	"context"
	"net/http"

	"github.com/dev-mohitbeniwal/thingsconsole/model"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

const (
	OpGetFeatures    = "getFeatures"
	OpPutFeatures    = "putFeatures"
	OpDeleteFeatures = "deleteFeatures"
	OpGetFeature     = "getFeature"
	OpPutFeature     = "putFeature"
	OpDeleteFeature  = "deleteFeature"
)

func (c *Client) GetFeatures(ctx context.Context, thingID string, opts ...QueryOption) (*Result[model.Features], error) {
	if err := c.requireIDs(OpGetFeatures, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[model.Features](ctx, c, call{
		operation: OpGetFeatures,
		method:    http.MethodGet,
		template:  featuresPath,
		params:    params{"thingId": thingID},
		query:     opts,
	})
}

func (c *Client) PutFeatures(ctx context.Context, thingID string, features model.Features) (*Result[model.Features], error) {
	if err := c.requireIDs(OpPutFeatures, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	if features == nil {
		features = model.Features{}
	}
	return send[model.Features](ctx, c, call{
		operation: OpPutFeatures,
		method:    http.MethodPut,
		template:  featuresPath,
		params:    params{"thingId": thingID},
		body:      features,
	})
}

func (c *Client) DeleteFeatures(ctx context.Context, thingID string) (*Result[NoContent], error) {
	if err := c.requireIDs(OpDeleteFeatures, util.ID("thingId", thingID)); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteFeatures,
		method:    http.MethodDelete,
		template:  featuresPath,
		params:    params{"thingId": thingID},
	})
}

func (c *Client) GetFeature(ctx context.Context, thingID, featureID string, opts ...QueryOption) (*Result[model.Feature], error) {
	if err := c.requireIDs(OpGetFeature, util.ID("thingId", thingID), util.ID("featureId", featureID)); err != nil {
		return nil, err
	}
	return send[model.Feature](ctx, c, call{
		operation: OpGetFeature,
		method:    http.MethodGet,
		template:  featuresPath,
		params:    params{"thingId": thingID, "featureId": featureID},
		query:     opts,
	})
}

func (c *Client) PutFeature(ctx context.Context, thingID, featureID string, feature model.Feature) (*Result[model.Feature], error) {
	if err := c.requireIDs(OpPutFeature, util.ID("thingId", thingID), util.ID("featureId", featureID)); err != nil {
		return nil, err
	}
	return send[model.Feature](ctx, c, call{
		operation: OpPutFeature,
		method:    http.MethodPut,
		template:  featuresPath,
		params:    params{"thingId": thingID, "featureId": featureID},
		body:      feature,
	})
}

func (c *Client) DeleteFeature(ctx context.Context, thingID, featureID string) (*Result[NoContent], error) {
	if err := c.requireIDs(OpDeleteFeature, util.ID("thingId", thingID), util.ID("featureId", featureID)); err != nil {
		return nil, err
	}
	return send[NoContent](ctx, c, call{
		operation: OpDeleteFeature,
		method:    http.MethodDelete,
		template:  featuresPath,
		params:    params{"thingId": thingID, "featureId": featureID},
	})
}
