package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fieldops/farm-admin/internal/events"
)

// NotificationService reports store changes to the log and, when a sink is
// configured, to external subscribers.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	sink       events.EventHandler
}

// NewNotificationService creates the service. sink may be nil.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, sink events.EventHandler) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		sink:       sink,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, t := range []events.EventType{events.EventStaffAdded, events.EventStaffUpdated, events.EventStaffRemoved} {
		n.dispatcher.Subscribe(t, n.handleStaffChanged)
	}
	for _, t := range []events.EventType{events.EventVehicleAdded, events.EventVehicleUpdated, events.EventVehicleRemoved} {
		n.dispatcher.Subscribe(t, n.handleVehicleChanged)
	}
	for _, t := range []events.EventType{events.EventFieldAdded, events.EventFieldUpdated, events.EventFieldRemoved} {
		n.dispatcher.Subscribe(t, n.handleFieldChanged)
	}
	if n.sink != nil {
		n.dispatcher.SubscribeAll(n.sink)
	}
}

func (n *NotificationService) handleStaffChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("StaffChanged", zap.String("event_type", string(event.Type)), zap.String("staff_id", event.EntityID))
	return nil
}

func (n *NotificationService) handleVehicleChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("VehicleChanged", zap.String("event_type", string(event.Type)), zap.String("code", event.EntityID))
	return nil
}

func (n *NotificationService) handleFieldChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("FieldChanged", zap.String("event_type", string(event.Type)), zap.String("field_code", event.EntityID), zap.Any("payload", event.Payload))
	return nil
}
