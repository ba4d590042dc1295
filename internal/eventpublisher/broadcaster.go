package eventpublisher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-shop-sync/internal/eventpublisher/common"
)

const (
	writeTimeout        = time.Second
	maxMissedDeliveries = 3
)

// Broadcaster fans every published event out to all subscribed channels.
// A subscriber that misses maxMisses deliveries in a row is unsubscribed and its channel closed.
type Broadcaster[T any] struct {
	registry  *common.Registry[T]
	timeout   time.Duration
	maxMisses int
	inflight  sync.WaitGroup
}

var _ Publisher[int] = (*Broadcaster[int])(nil)

func NewBroadcaster[T any]() *Broadcaster[T] {
	return NewBroadcasterWithTimeout[T](writeTimeout, maxMissedDeliveries)
}

func NewBroadcasterWithTimeout[T any](timeout time.Duration, maxMisses int) *Broadcaster[T] {
	return &Broadcaster[T]{
		registry:  common.NewRegistry[T](),
		timeout:   timeout,
		maxMisses: maxMisses,
	}
}

func (b *Broadcaster[T]) Subscribe(subscriber chan<- T) {
	b.registry.Add(subscriber)
}

func (b *Broadcaster[T]) Unsubscribe(subscriber chan<- T) {
	b.registry.Remove(subscriber)
}

// Publish delivers e to every subscriber without blocking the caller.
func (b *Broadcaster[T]) Publish(ctx context.Context, e T) {
	for _, subscriber := range b.registry.Snapshot() {
		b.inflight.Add(1)
		go func(subscriber chan<- T) {
			defer b.inflight.Done()
			b.deliver(ctx, subscriber, e)
		}(subscriber)
	}
}

func (b *Broadcaster[T]) deliver(ctx context.Context, subscriber chan<- T, e T) {
	err := common.Deliver(ctx, subscriber, e, b.timeout)
	switch {
	case err == nil:
		b.registry.Hit(subscriber)
	case errors.Is(err, common.ErrSubscriberGone):
		b.registry.Forget(subscriber)
	case b.registry.Miss(subscriber) >= b.maxMisses:
		b.registry.Remove(subscriber)
	}
}

// Close waits for pending deliveries and closes every subscriber channel.
func (b *Broadcaster[T]) Close() {
	b.inflight.Wait()
	b.registry.RemoveAll()
}
