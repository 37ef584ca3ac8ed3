package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher is satisfied by *redis.Client.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink forwards events as JSON to a Redis pub/sub channel.
type RedisSink struct {
	client  Publisher
	channel string
	timeout time.Duration
}

// NewRedisSink builds a sink writing to channel. Each publish is bounded by
// timeout; zero leaves the caller's context as is.
func NewRedisSink(client Publisher, channel string, timeout time.Duration) *RedisSink {
	return &RedisSink{client: client, channel: channel, timeout: timeout}
}

// Handle is an EventHandler publishing the event.
func (s *RedisSink) Handle(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := s.client.Publish(ctx, s.channel, body).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.Type, s.channel, err)
	}
	return nil
}
