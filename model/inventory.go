package model

// Feature and property names used by the tracked-device inventory.
const (
	FeatureGeolocation = "geolocation"
	FeatureOrientation = "orientation"
	FeatureXDKSensors  = "xdk-sensors"

	PropertyGeoposition = "geoposition"
	PropertyAccuracy    = "accuracy"
	PropertyHeading     = "z"
	PropertyLight       = "light"
)

type Geoposition struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InventoryItem is what the inventory list and map need from a thing.
type InventoryItem struct {
	ThingID  string       `json:"thingId"`
	Position *Geoposition `json:"position,omitempty"`
	Heading  *float64     `json:"heading,omitempty"`
	Light    *float64     `json:"light,omitempty"`
}

// Geoposition returns the geolocation feature's position when both
// coordinates are numbers.
func (t Thing) Geoposition() (Geoposition, bool) {
	pos, ok := t.featureProperty(FeatureGeolocation, PropertyGeoposition)
	if !ok {
		return Geoposition{}, false
	}
	lat, latOK := mustNumber(pos.Get("latitude"))
	lon, lonOK := mustNumber(pos.Get("longitude"))
	if !latOK || !lonOK {
		return Geoposition{}, false
	}
	return Geoposition{Latitude: lat, Longitude: lon}, true
}

// Heading is the orientation feature's z angle in degrees.
func (t Thing) Heading() (float64, bool) {
	return mustNumber(t.featureProperty(FeatureOrientation, PropertyHeading))
}

func (t Thing) Light() (float64, bool) {
	return mustNumber(t.featureProperty(FeatureXDKSensors, PropertyLight))
}

func (t Thing) InventoryItem() InventoryItem {
	item := InventoryItem{ThingID: t.ThingID}
	if pos, ok := t.Geoposition(); ok {
		item.Position = &pos
		if h, ok := t.Heading(); ok {
			item.Heading = &h
		}
		if l, ok := t.Light(); ok {
			item.Light = &l
		}
	}
	return item
}

func (t Thing) featureProperty(featureID, pointer string) (Value, bool) {
	f, ok := t.Features[featureID]
	if !ok {
		return Value{}, false
	}
	return f.Property(pointer)
}

func mustNumber(v Value, ok bool) (float64, bool) {
	if !ok {
		return 0, false
	}
	return v.Float64()
}
