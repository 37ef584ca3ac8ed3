package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fieldops/farm-admin/internal/store"
)

// StoreSubscriber is the part of store.Store the bridge relies on.
type StoreSubscriber interface {
	Subscribe(listener store.Listener) (unsubscribe func())
}

// BridgeStore republishes every applied store intent as an Event on the
// dispatcher. The returned function detaches the bridge.
func BridgeStore(s StoreSubscriber, dispatcher Dispatcher) (detach func()) {
	return s.Subscribe(func(state store.State, intent store.Intent) {
		eventType, ok := eventTypeByIntent[intent.Type()]
		if !ok {
			return
		}
		_ = dispatcher.Publish(context.Background(), Event{
			ID:        uuid.NewString(),
			Type:      eventType,
			EntityID:  intent.TargetID(),
			Timestamp: time.Now().UTC(),
			Payload: CollectionSizes{
				Staff:    len(state.Staff),
				Vehicles: len(state.Vehicle),
				Fields:   len(state.Field),
			},
		})
	})
}
