// Package store holds the farm entity state tree and applies mutation intents
// to it.
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/fieldops/farm-admin/internal/observability"
	apperrors "github.com/fieldops/farm-admin/pkg/util"
)

// Listener receives the new state tree after every successful mutation along
// with the intent that produced it.
type Listener func(state State, intent Intent)

type subscription struct {
	id       int
	listener Listener
}

// Store owns the staff, vehicle and field collections. Intents are applied
// one at a time; readers get immutable snapshots.
type Store struct {
	// dispatchMu serializes the apply-and-notify cycle.
	dispatchMu sync.Mutex

	mu          sync.RWMutex
	state       State
	subscribers []subscription
	nextSubID   int

	logger  *zap.Logger
	metrics *observability.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records every dispatched intent.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(s *Store) { s.metrics = metrics }
}

// New builds a store holding initial. Identifiers in initial must be unique
// per collection; embedded staff copies are taken as given.
func New(initial State, opts ...Option) (*Store, error) {
	s := &Store{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	var (
		state State
		err   error
	)
	for _, rec := range initial.Staff {
		if state.Staff, err = staffSlice.Add(state.Staff, rec); err != nil {
			return nil, err
		}
	}
	for _, rec := range initial.Vehicle {
		if state.Vehicle, err = vehicleSlice.Add(state.Vehicle, rec); err != nil {
			return nil, err
		}
	}
	for _, rec := range initial.Field {
		if state.Field, err = fieldSlice.Add(state.Field, rec); err != nil {
			return nil, err
		}
	}
	s.state = state
	return s, nil
}

// GetState returns the current state tree.
func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clipped()
}

// Dispatch applies a single intent. On failure the state is left untouched
// and no subscriber is notified.
func (s *Store) Dispatch(intent Intent) (State, error) {
	if intent == nil {
		return s.GetState(), apperrors.NewValidationError("intent required", nil)
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.RLock()
	current := s.state
	s.mu.RUnlock()

	next, err := intent.apply(current)
	s.metrics.RecordMutation(string(intent.Type()), err)
	if err != nil {
		s.logger.Debug("intent rejected",
			zap.String("intent", string(intent.Type())),
			zap.String("target", intent.TargetID()),
			zap.Error(err))
		return current.clipped(), err
	}

	s.mu.Lock()
	s.state = next
	subs := append([]subscription(nil), s.subscribers...)
	s.mu.Unlock()

	s.logger.Debug("intent applied",
		zap.String("intent", string(intent.Type())),
		zap.String("target", intent.TargetID()),
		zap.Int("staff", len(next.Staff)),
		zap.Int("vehicles", len(next.Vehicle)),
		zap.Int("fields", len(next.Field)))

	snapshot := next.clipped()
	for _, sub := range subs {
		sub.listener(snapshot, intent)
	}
	return snapshot, nil
}

// Subscribe registers a listener invoked synchronously, in registration order,
// after every successful Dispatch. Listeners must not call Dispatch. The
// returned function removes the listener.
func (s *Store) Subscribe(listener Listener) (unsubscribe func()) {
	if listener == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscription{id: id, listener: listener})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}
