package eventpublisher

import "context"

type Publisher[T any] interface {
	Subscribe(chan<- T)
	Unsubscribe(chan<- T)
	Publish(ctx context.Context, e T)
	Close()
}
