package common

import (
	"context"
	"errors"
	"time"
)

var (
	ErrDeliveryTimeout = errors.New("delivery timed out")
	ErrSubscriberGone  = errors.New("subscriber channel is closed")
)

// Deliver writes e to subscriber, giving up after timeout or when ctx is done.
func Deliver[T any](ctx context.Context, subscriber chan<- T, e T, timeout time.Duration) (err error) {
	defer func() {
		// subscriber may be closed by a concurrent Remove.
		if recover() != nil {
			err = ErrSubscriberGone
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case subscriber <- e:
		return nil
	case <-ctx.Done():
		return ErrDeliveryTimeout
	}
}
