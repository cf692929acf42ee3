package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/thingsconsole/client"
	"github.com/dev-mohitbeniwal/thingsconsole/db"
	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
	"github.com/dev-mohitbeniwal/thingsconsole/model"
)

const (
	trackerThingPrefix     = "track.my.phone:device-of-"
	geolocationDefinition  = "org.eclipse.vorto.Geolocation:1.0.0"
	registrationLockExpiry = 10 * time.Second
)

// TrackerClient is the part of the client the phone tracker needs.
type TrackerClient interface {
	GetThing(ctx context.Context, thingID string, opts ...client.QueryOption) (*client.Result[model.Thing], error)
	ReplaceThing(ctx context.Context, thingID string, thing model.Thing) (*client.Result[model.Thing], error)
	PutProperty(ctx context.Context, thingID, featureID, pointer string, value model.Value) (*client.Result[model.Value], error)
	PutProperties(ctx context.Context, thingID, featureID string, properties model.Value) (*client.Result[model.Value], error)
	GetACL(ctx context.Context, thingID string) (*client.Result[model.ACL], error)
	PutACLEntry(ctx context.Context, thingID, subject string, permissions model.Permissions) (*client.Result[model.Permissions], error)
	DeleteACLEntry(ctx context.Context, thingID, subject string) (*client.Result[client.NoContent], error)
}

type ITrackerService interface {
	Register(ctx context.Context, user string) (*Registration, error)
	ThingID() string
	UpdateGeolocation(ctx context.Context, geo Geolocation) (bool, error)
	UpdateOrientation(ctx context.Context, o Orientation) (bool, error)
	Report(ctx context.Context, report Report) error
	GrantRead(ctx context.Context, subject string) error
	Revoke(ctx context.Context, subject string) error
	Permissions(ctx context.Context) (model.ACL, error)
}

type Geolocation struct {
	Position model.Geoposition `json:"position"`
	Accuracy *float64          `json:"accuracy,omitempty"`
}

type Orientation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Report carries whichever readings a device has at hand.
type Report struct {
	Geolocation *Geolocation `json:"geolocation,omitempty"`
	Orientation *Orientation `json:"orientation,omitempty"`
}

type Registration struct {
	Thing   model.Thing `json:"thing"`
	Created bool        `json:"created"`
}

// Tracker turns one user's phone into a thing and pushes its readings.
// Readings arriving within the throttle window of the previous push are
// skipped.
type Tracker struct {
	client   TrackerClient
	locker   db.Locker
	throttle time.Duration
	now      func() time.Time

	mu              sync.Mutex
	thingID         string
	lastGeolocation time.Time
	lastOrientation time.Time
}

func NewTracker(c TrackerClient, locker db.Locker, throttle time.Duration) *Tracker {
	return &Tracker{client: c, locker: locker, throttle: throttle, now: time.Now}
}

// TrackerThingID is the id of the thing tracking user's phone.
func TrackerThingID(user string) string {
	return trackerThingPrefix + user
}

// Register fetches the user's device thing and creates it when the service
// reports it missing.
func (t *Tracker) Register(ctx context.Context, user string) (*Registration, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, &things_errors.ValidationError{Operation: "registerTracker", Field: "user"}
	}
	thingID := TrackerThingID(user)

	if t.locker != nil {
		unlock, err := t.locker.Lock(ctx, "tracker:"+thingID, registrationLockExpiry)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("Failed to release tracker lock", zap.String("thingId", thingID), zap.Error(err))
			}
		}()
	}

	reg := &Registration{}
	existing, err := t.client.GetThing(ctx, thingID)
	switch {
	case err == nil:
		reg.Thing = existing.Body
	case errors.Is(err, things_errors.ErrNotFound):
		created, err := t.client.ReplaceThing(ctx, thingID, newDeviceThing())
		if err != nil {
			return nil, fmt.Errorf("failed to create tracker thing: %w", err)
		}
		reg.Thing = created.Body
		reg.Created = created.Created()
		logger.Info("Tracker thing created", zap.String("thingId", thingID))
	default:
		return nil, err
	}
	if reg.Thing.ThingID == "" {
		reg.Thing.ThingID = thingID
	}

	t.mu.Lock()
	t.thingID = thingID
	t.lastGeolocation = time.Time{}
	t.lastOrientation = time.Time{}
	t.mu.Unlock()
	return reg, nil
}

func newDeviceThing() model.Thing {
	geolocation := model.Object(
		model.Member{Key: "_definition", Value: model.String(geolocationDefinition)},
		model.Member{Key: model.PropertyGeoposition, Value: model.Object(
			model.Member{Key: "latitude", Value: model.Null()},
			model.Member{Key: "longitude", Value: model.Null()},
		)},
		model.Member{Key: model.PropertyAccuracy, Value: model.Null()},
	)
	orientation := model.Object(
		model.Member{Key: "x", Value: model.Null()},
		model.Member{Key: "y", Value: model.Null()},
		model.Member{Key: "z", Value: model.Null()},
	)
	return model.Thing{Features: model.Features{
		model.FeatureGeolocation: {Properties: &geolocation},
		model.FeatureOrientation: {Properties: &orientation},
	}}
}

func (t *Tracker) ThingID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.thingID
}

// admit reports whether a push may go out now and marks it as sent.
func (t *Tracker) admit(last *time.Time) (string, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.thingID == "" {
		return "", false, things_errors.ErrTrackerNotRegistered
	}
	now := t.now()
	if !last.IsZero() && now.Sub(*last) < t.throttle {
		return t.thingID, false, nil
	}
	*last = now
	return t.thingID, true, nil
}

// UpdateGeolocation pushes a position; false means it was throttled.
func (t *Tracker) UpdateGeolocation(ctx context.Context, geo Geolocation) (bool, error) {
	thingID, ok, err := t.admit(&t.lastGeolocation)
	if err != nil || !ok {
		return false, err
	}
	position := model.Object(
		model.Member{Key: "latitude", Value: model.Number(geo.Position.Latitude)},
		model.Member{Key: "longitude", Value: model.Number(geo.Position.Longitude)},
	)
	if _, err := t.client.PutProperty(ctx, thingID, model.FeatureGeolocation, model.PropertyGeoposition, position); err != nil {
		return false, err
	}
	if geo.Accuracy != nil {
		if _, err := t.client.PutProperty(ctx, thingID, model.FeatureGeolocation, model.PropertyAccuracy, model.Number(*geo.Accuracy)); err != nil {
			return false, err
		}
	}
	return true, nil
}

// UpdateOrientation replaces the orientation properties; false means it was
// throttled.
func (t *Tracker) UpdateOrientation(ctx context.Context, o Orientation) (bool, error) {
	thingID, ok, err := t.admit(&t.lastOrientation)
	if err != nil || !ok {
		return false, err
	}
	properties := model.Object(
		model.Member{Key: "x", Value: model.Number(o.X)},
		model.Member{Key: "y", Value: model.Number(o.Y)},
		model.Member{Key: "z", Value: model.Number(o.Z)},
	)
	if _, err := t.client.PutProperties(ctx, thingID, model.FeatureOrientation, properties); err != nil {
		return false, err
	}
	return true, nil
}

// Report pushes the geolocation and orientation of a report concurrently.
func (t *Tracker) Report(ctx context.Context, report Report) error {
	g, ctx := errgroup.WithContext(ctx)
	if report.Geolocation != nil {
		geo := *report.Geolocation
		g.Go(func() error {
			_, err := t.UpdateGeolocation(ctx, geo)
			return err
		})
	}
	if report.Orientation != nil {
		o := *report.Orientation
		g.Go(func() error {
			_, err := t.UpdateOrientation(ctx, o)
			return err
		})
	}
	return g.Wait()
}

// GrantRead lets subject read the device thing and nothing more.
func (t *Tracker) GrantRead(ctx context.Context, subject string) error {
	thingID := t.ThingID()
	if thingID == "" {
		return things_errors.ErrTrackerNotRegistered
	}
	if _, err := t.client.PutACLEntry(ctx, thingID, subject, model.ReadOnly()); err != nil {
		return err
	}
	logger.Info("Permissions granted", zap.String("thingId", thingID), zap.String("subject", subject))
	return nil
}

func (t *Tracker) Revoke(ctx context.Context, subject string) error {
	thingID := t.ThingID()
	if thingID == "" {
		return things_errors.ErrTrackerNotRegistered
	}
	if _, err := t.client.DeleteACLEntry(ctx, thingID, subject); err != nil {
		return err
	}
	logger.Info("Permissions revoked", zap.String("thingId", thingID), zap.String("subject", subject))
	return nil
}

func (t *Tracker) Permissions(ctx context.Context) (model.ACL, error) {
	thingID := t.ThingID()
	if thingID == "" {
		return nil, things_errors.ErrTrackerNotRegistered
	}
	result, err := t.client.GetACL(ctx, thingID)
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}
