package events

import (
	"time"

	"github.com/fieldops/farm-admin/internal/store"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffAdded     EventType = "staff_added"
	EventStaffUpdated   EventType = "staff_updated"
	EventStaffRemoved   EventType = "staff_removed"
	EventVehicleAdded   EventType = "vehicle_added"
	EventVehicleUpdated EventType = "vehicle_updated"
	EventVehicleRemoved EventType = "vehicle_removed"
	EventFieldAdded     EventType = "field_added"
	EventFieldUpdated   EventType = "field_updated"
	EventFieldRemoved   EventType = "field_removed"
)

var eventTypeByIntent = map[store.IntentType]EventType{
	store.IntentAddStaff:      EventStaffAdded,
	store.IntentUpdateStaff:   EventStaffUpdated,
	store.IntentRemoveStaff:   EventStaffRemoved,
	store.IntentAddVehicle:    EventVehicleAdded,
	store.IntentUpdateVehicle: EventVehicleUpdated,
	store.IntentRemoveVehicle: EventVehicleRemoved,
	store.IntentAddField:      EventFieldAdded,
	store.IntentUpdateField:   EventFieldUpdated,
	store.IntentRemoveField:   EventFieldRemoved,
}

// Event represents a change applied to the entity store.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CollectionSizes payload reports the size of every collection after the
// change.
type CollectionSizes struct {
	Staff    int `json:"staff"`
	Vehicles int `json:"vehicles"`
	Fields   int `json:"fields"`
}
