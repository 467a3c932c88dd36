package events

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"auction-engine/utils"

	"github.com/redis/go-redis/v9"
	"github.com/smallnest/chanx"
	"github.com/vmihailenco/msgpack/v5"
)

type redisOptions struct {
	bufferSize int
	encodeFunc func(Event) (map[string]any, error)
}

// RedisOption customises a RedisPublisher
type RedisOption func(*redisOptions)

// WithBufferSize sets the initial capacity of the outgoing buffer
func WithBufferSize(size int) RedisOption {
	return func(o *redisOptions) {
		o.bufferSize = size
	}
}

// WithEncodeFunc replaces the stream message encoder
func WithEncodeFunc(fn func(Event) (map[string]any, error)) RedisOption {
	return func(o *redisOptions) {
		o.encodeFunc = fn
	}
}

// RedisPublisher appends events to a Redis stream from a background goroutine,
// so a slow or unavailable Redis never delays a bid
type RedisPublisher struct {
	client     *redis.Client
	stream     string
	options    redisOptions
	mu         sync.RWMutex
	upstream   *chanx.UnboundedChan[map[string]any]
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	closed     bool
}

var _ Publisher = (*RedisPublisher)(nil)

// NewRedisPublisher creates a publisher for stream. Call Start before publishing.
func NewRedisPublisher(client *redis.Client, stream string, opts ...RedisOption) (*RedisPublisher, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if stream == "" {
		return nil, errors.New("stream cannot be empty")
	}

	options := redisOptions{
		bufferSize: 100,
		encodeFunc: EncodeMessage,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &RedisPublisher{
		client:  client,
		stream:  stream,
		options: options,
		closed:  true,
	}, nil
}

// Start launches the writer goroutine. Calling Start on a running publisher is a no-op.
func (p *RedisPublisher) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.upstream = chanx.NewUnboundedChan[map[string]any](ctx, p.options.bufferSize)
	p.cancelFunc = cancel
	p.closed = false
	utils.Info("starting event stream publisher", map[string]any{"stream": p.stream})

	out := p.upstream.Out
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-out:
				if !ok {
					return
				}
				id, err := p.client.XAdd(ctx, &redis.XAddArgs{
					Stream: p.stream,
					Values: message,
				}).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return
					}
					utils.Error("publish event failed", map[string]any{"stream": p.stream, "error": err.Error()})
					continue
				}
				utils.Debug("event published", map[string]any{"stream": p.stream, "message_id": id})
			}
		}
	}()
}

// Publish encodes ev and queues it for the stream
func (p *RedisPublisher) Publish(ev Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	message, err := p.options.encodeFunc(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	p.upstream.In <- message
	return nil
}

// Close stops the writer goroutine. Events still buffered are dropped.
func (p *RedisPublisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cancelFunc()
	p.mu.Unlock()

	p.wg.Wait()
	utils.Info("event stream publisher closed", map[string]any{"stream": p.stream})
}

// EncodeMessage packs ev as msgpack and wraps it base64-encoded under the "data" field
func EncodeMessage(ev Event) (map[string]any, error) {
	bytes, err := msgpack.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("msgpack marshal error: %w", err)
	}
	return map[string]any{
		"data": base64.StdEncoding.EncodeToString(bytes),
	}, nil
}

// DecodeMessage reverses EncodeMessage for stream consumers
func DecodeMessage(message map[string]any) (Event, error) {
	var ev Event

	dataStr, ok := message["data"].(string)
	if !ok {
		return ev, errors.New("data field not found or invalid type")
	}
	bytes, err := base64.StdEncoding.DecodeString(dataStr)
	if err != nil {
		return ev, fmt.Errorf("base64 decode error: %w", err)
	}
	if err := msgpack.Unmarshal(bytes, &ev); err != nil {
		return ev, fmt.Errorf("msgpack unmarshal error: %w", err)
	}
	return ev, nil
}
