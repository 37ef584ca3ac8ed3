package worker

import (
	"go.uber.org/zap"

	"github.com/fieldops/farm-admin/internal/events"
	"github.com/fieldops/farm-admin/internal/service"
)

// StartNotificationWorker registers the notification handlers and forwards
// every applied store intent to them through an EventQueue of queueSize
// events, so slow handlers such as the Redis sink never hold up Dispatch.
// stop detaches from the store and drains the queue.
func StartNotificationWorker(
	s events.StoreSubscriber,
	dispatcher events.Dispatcher,
	notificationService *service.NotificationService,
	queueSize int,
	logger *zap.Logger,
) (stop func()) {
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
	queue := NewEventQueue(dispatcher, queueSize, logger)
	detach := events.BridgeStore(s, queue)
	return func() {
		detach()
		queue.Stop()
	}
}
