package engine

import (
	"context"

	"go-shop-sync/internal/model"

	"github.com/rs/zerolog/log"
)

// CompletePurchase records the current basket in the history and returns immediately.
// The bought interactions and the remote basket clear run in the background; once the
// clear is confirmed the basket is reloaded from the backend.
//
// If the clear fails the history has already advanced while the basket keeps its items
// until the user retries.
func (e *Engine) CompletePurchase() bool {
	basket := e.store.Basket.Get()
	if len(basket) == 0 {
		return false
	}

	record := model.PurchaseHistory{
		PurchaseId:   e.newId(),
		PurchaseDate: e.now(),
		Items:        basket.Clone(),
	}
	if !e.commit(func() { e.store.PrependPurchase(record) }) {
		return false
	}

	productIds := make([]string, 0, len(record.Items))
	for _, p := range record.Items.Products() {
		productIds = append(productIds, p.Id)
	}

	e.spawn(func(ctx context.Context) {
		if err := e.services.Interactions.LogBulkBought(ctx, productIds); err != nil {
			e.fail(OpLogInteraction, "", err)
		}
	})
	e.spawn(e.clearRemoteBasket)

	return true
}

func (e *Engine) clearRemoteBasket(ctx context.Context) {
	resp, err := e.services.Basket.DeleteAllFromBasket(ctx, e.cnf.UserId)
	if err != nil {
		e.fail(OpCompletePurchase, "", err)
		return
	}

	if resp.Message != nil {
		log.Debug().Str("message", *resp.Message).Msg("engine: remote basket cleared")
	}

	e.loadBasket(ctx)
	e.afterBasketChange()
}
