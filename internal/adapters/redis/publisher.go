package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/b3270/pkg/domain"
	"github.com/aretw0/b3270/pkg/events"
	backend "github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel used when none is configured.
const DefaultChannel = "b3270:events"

// Publisher is an events.Sink that PUBLISHes every event line on a Redis
// channel. Optionally it also keeps the most recent lines in a list so a
// late subscriber can catch up.
type Publisher struct {
	client  *backend.Client
	channel string
	history int64
	ttl     time.Duration
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithChannel sets the pub/sub channel.
func WithChannel(channel string) Option {
	return func(p *Publisher) {
		if channel != "" {
			p.channel = channel
		}
	}
}

// WithHistory keeps the last n event lines in the list "<channel>:history".
func WithHistory(n int) Option {
	return func(p *Publisher) {
		p.history = int64(n)
	}
}

// WithTTL sets the expiration of the history list. It is refreshed on
// every event.
func WithTTL(ttl time.Duration) Option {
	return func(p *Publisher) {
		p.ttl = ttl
	}
}

// New creates a publisher connected to address.
func New(address, password string, db int, opts ...Option) *Publisher {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a publisher from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Publisher {
	p := &Publisher{
		client:  client,
		channel: DefaultChannel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Channel returns the pub/sub channel.
func (p *Publisher) Channel() string {
	return p.channel
}

func (p *Publisher) historyKey() string {
	return p.channel + ":history"
}

// Ping checks that the server is reachable.
func (p *Publisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

// Emit publishes the formatted event line.
func (p *Publisher) Emit(ctx context.Context, ev domain.Event) error {
	line := events.Format(ev)

	if p.history <= 0 {
		if err := p.client.Publish(ctx, p.channel, line).Err(); err != nil {
			return fmt.Errorf("failed to publish event: %w", err)
		}
		return nil
	}

	pipe := p.client.TxPipeline()
	pipe.Publish(ctx, p.channel, line)
	pipe.RPush(ctx, p.historyKey(), line)
	pipe.LTrim(ctx, p.historyKey(), -p.history, -1)
	if p.ttl > 0 {
		pipe.Expire(ctx, p.historyKey(), p.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// History returns the kept event lines, oldest first.
func (p *Publisher) History(ctx context.Context) ([]string, error) {
	lines, err := p.client.LRange(ctx, p.historyKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read event history: %w", err)
	}
	return lines, nil
}

// Close closes the redis client.
func (p *Publisher) Close() error {
	return p.client.Close()
}
