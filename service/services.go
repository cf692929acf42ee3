// service/services.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
	"github.com/dev-mohitbeniwal/thingsconsole/client"
	"github.com/dev-mohitbeniwal/thingsconsole/config"
	"github.com/dev-mohitbeniwal/thingsconsole/db"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
)

// IThingService covers things and their attributes.
type IThingService interface {
	GetThing(ctx context.Context, thingID string, opts ...client.QueryOption) (*client.Result[model.Thing], error)
	ListThings(ctx context.Context, thingIDs []string, opts ...client.QueryOption) (*client.Result[[]model.Thing], error)
	SearchThings(ctx context.Context, offset, count int, opts ...client.QueryOption) (*client.Result[model.SearchResult], error)
	CreateThing(ctx context.Context, thing model.Thing) (*client.Result[model.Thing], error)
	ReplaceThing(ctx context.Context, thingID string, thing model.Thing) (*client.Result[model.Thing], error)
	DeleteThing(ctx context.Context, thingID string) (*client.Result[client.NoContent], error)

	GetAttributes(ctx context.Context, thingID string, opts ...client.QueryOption) (*client.Result[model.Value], error)
	PutAttributes(ctx context.Context, thingID string, attributes model.Value) (*client.Result[model.Value], error)
	DeleteAttributes(ctx context.Context, thingID string) (*client.Result[client.NoContent], error)
	GetAttribute(ctx context.Context, thingID, path string) (*client.Result[model.Value], error)
	PutAttribute(ctx context.Context, thingID, path string, value model.Value) (*client.Result[model.Value], error)
	DeleteAttribute(ctx context.Context, thingID, path string) (*client.Result[client.NoContent], error)
}

// IFeatureService covers features and their properties.
type IFeatureService interface {
	GetFeatures(ctx context.Context, thingID string, opts ...client.QueryOption) (*client.Result[model.Features], error)
	PutFeatures(ctx context.Context, thingID string, features model.Features) (*client.Result[model.Features], error)
	DeleteFeatures(ctx context.Context, thingID string) (*client.Result[client.NoContent], error)
	GetFeature(ctx context.Context, thingID, featureID string, opts ...client.QueryOption) (*client.Result[model.Feature], error)
	PutFeature(ctx context.Context, thingID, featureID string, feature model.Feature) (*client.Result[model.Feature], error)
	DeleteFeature(ctx context.Context, thingID, featureID string) (*client.Result[client.NoContent], error)

	GetProperties(ctx context.Context, thingID, featureID string, opts ...client.QueryOption) (*client.Result[model.Value], error)
	PutProperties(ctx context.Context, thingID, featureID string, properties model.Value) (*client.Result[model.Value], error)
	DeleteProperties(ctx context.Context, thingID, featureID string) (*client.Result[client.NoContent], error)
	GetProperty(ctx context.Context, thingID, featureID, pointer string) (*client.Result[model.Value], error)
	PutProperty(ctx context.Context, thingID, featureID, pointer string, value model.Value) (*client.Result[model.Value], error)
	DeleteProperty(ctx context.Context, thingID, featureID, pointer string) (*client.Result[client.NoContent], error)
}

// IAccessService covers both authorization models; a deployment answers
// only one half of it.
type IAccessService interface {
	AuthorizationModel() model.AuthorizationModel

	GetACL(ctx context.Context, thingID string) (*client.Result[model.ACL], error)
	PutACL(ctx context.Context, thingID string, acl model.ACL) (*client.Result[model.ACL], error)
	GetACLEntry(ctx context.Context, thingID, subject string) (*client.Result[model.Permissions], error)
	PutACLEntry(ctx context.Context, thingID, subject string, permissions model.Permissions) (*client.Result[model.Permissions], error)
	DeleteACLEntry(ctx context.Context, thingID, subject string) (*client.Result[client.NoContent], error)

	GetOwner(ctx context.Context, thingID string) (*client.Result[string], error)
	PutOwner(ctx context.Context, thingID, owner string) (*client.Result[string], error)
	DeleteOwner(ctx context.Context, thingID string) (*client.Result[client.NoContent], error)
}

var (
	_ IThingService   = (*client.Client)(nil)
	_ IFeatureService = (*client.Client)(nil)
	_ IAccessService  = (*client.Client)(nil)
	_ ITrackerService = (*Tracker)(nil)
	_ IInventory      = (*Poller)(nil)
)

type Services struct {
	Things      IThingService
	Features    IFeatureService
	Access      IAccessService
	Inventory   IInventory
	Tracker     ITrackerService
	ResponseLog *audit.ResponseLog
	History     audit.Service
}

// InitializeServices builds the Things client on top of the response log and
// the services using it. locker may be nil when Redis is not configured.
func InitializeServices(
	cfg *config.Configuration,
	responseLog *audit.ResponseLog,
	history audit.Service,
	locker db.Locker,
) (*Services, error) {
	authzModel, err := model.ParseAuthorizationModel(cfg.Things.AuthorizationModel)
	if err != nil {
		return nil, err
	}

	thingsClient, err := client.New(client.Config{
		BaseURL:            cfg.Things.BaseURL,
		Credentials:        client.Credentials{Username: cfg.Things.Username, Password: cfg.Things.Password},
		APIToken:           cfg.Things.APIToken,
		AuthorizationModel: authzModel,
		Recorder:           responseLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create things client: %w", err)
	}

	var fields []string
	if cfg.Poll.SearchFields != "" {
		fields = strings.Split(cfg.Poll.SearchFields, ",")
	}

	return &Services{
		Things:      thingsClient,
		Features:    thingsClient,
		Access:      thingsClient,
		Inventory:   NewInventoryPoller(thingsClient, cfg.Poll.PageSize, fields, cfg.Poll.Interval),
		Tracker:     NewTracker(thingsClient, locker, cfg.Tracker.Throttle),
		ResponseLog: responseLog,
		History:     history,
	}, nil
}
