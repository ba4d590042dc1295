package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Failure describes a recoverable error of a background operation.
type Failure struct {
	Op        Op
	ProductId string
	Err       error
	At        time.Time
}

func (e *Engine) fail(op Op, productId string, err error) {
	if e.ctx.Err() != nil {
		log.Debug().Err(err).Str("op", string(op)).Msg("engine: dropping failure after shutdown")
		return
	}

	log.Error().Err(err).Str("op", string(op)).Str("product", productId).Msg("engine: operation failed")
	e.failures.Publish(context.Background(), Failure{
		Op:        op,
		ProductId: productId,
		Err:       err,
		At:        e.now(),
	})
}
