package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fieldops/farm-admin/internal/domain"
	"github.com/fieldops/farm-admin/internal/events"
	"github.com/fieldops/farm-admin/internal/service"
	"github.com/fieldops/farm-admin/internal/store"
)

func TestStartNotificationWorker_ForwardsStoreChanges(t *testing.T) {
	st, err := store.New(store.State{})
	require.NoError(t, err)
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())

	var mu sync.Mutex
	var forwarded []events.Event
	sink := func(_ context.Context, e events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		forwarded = append(forwarded, e)
		return nil
	}
	stop := StartNotificationWorker(st, dispatcher, service.NewNotificationService(dispatcher, zap.NewNop(), sink), 8, zap.NewNop())

	_, err = st.Dispatch(store.AddStaff{Staff: domain.Staff{StaffID: "ST-1"}})
	require.NoError(t, err)
	_, err = st.Dispatch(store.RemoveStaff{StaffID: "ST-1"})
	require.NoError(t, err)

	stop()
	_, err = st.Dispatch(store.AddStaff{Staff: domain.Staff{StaffID: "ST-2"}})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, forwarded, 2)
	assert.Equal(t, events.EventStaffAdded, forwarded[0].Type)
	assert.Equal(t, events.EventStaffRemoved, forwarded[1].Type)
}

func TestStartNotificationWorker_HungSinkDoesNotBlockDispatch(t *testing.T) {
	st, err := store.New(store.State{})
	require.NoError(t, err)
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())

	release := make(chan struct{})
	var delivered atomic.Int32
	sink := func(_ context.Context, _ events.Event) error {
		<-release
		delivered.Add(1)
		return nil
	}
	stop := StartNotificationWorker(st, dispatcher, service.NewNotificationService(dispatcher, zap.NewNop(), sink), 8, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		for _, id := range []string{"ST-1", "ST-2", "ST-3"} {
			if _, err := st.Dispatch(store.AddStaff{Staff: domain.Staff{StaffID: id}}); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch waited on event delivery")
	}
	assert.Len(t, st.GetState().Staff, 3)

	close(release)
	stop()
	assert.Equal(t, int32(3), delivered.Load())
}

func TestEventQueue_DropsWhenFullAndRejectsAfterStop(t *testing.T) {
	inner := events.NewInMemoryDispatcher(nil)
	release := make(chan struct{})
	inner.SubscribeAll(func(context.Context, events.Event) error {
		<-release
		return nil
	})
	q := NewEventQueue(inner, 1, nil)

	var full int
	for i := 0; i < 3; i++ {
		if err := q.Publish(context.Background(), events.Event{Type: events.EventFieldAdded}); err != nil {
			assert.ErrorIs(t, err, ErrQueueFull)
			full++
		}
	}
	assert.GreaterOrEqual(t, full, 1)

	close(release)
	q.Stop()
	q.Stop()
	assert.ErrorIs(t, q.Publish(context.Background(), events.Event{}), ErrQueueClosed)
}
