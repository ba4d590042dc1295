package engine

import (
	"context"
	"strconv"

	ierr "go-shop-sync/internal/errors"
	"go-shop-sync/internal/model"

	"github.com/rs/zerolog/log"
)

// AddToBasket asks the backend to add one unit of product and, once confirmed,
// adds quantity units locally.
func (e *Engine) AddToBasket(product model.Product, quantity int) {
	e.spawn(func(ctx context.Context) {
		e.addToBasket(ctx, product, quantity)
	})
}

// DecreaseQuantity lowers the quantity locally while more than quantity units remain.
// Otherwise the product is deleted remotely and removed once confirmed.
func (e *Engine) DecreaseQuantity(productId string, quantity int) {
	e.spawn(func(ctx context.Context) {
		e.decreaseQuantity(ctx, productId, quantity)
	})
}

func (e *Engine) RemoveFromBasket(productId string) {
	e.spawn(func(ctx context.Context) {
		e.removeFromBasket(ctx, productId)
	})
}

// SetQuantity edits the local quantity without a remote call. A quantity <= 0 removes the item.
// It reports whether the basket changed.
func (e *Engine) SetQuantity(productId string, quantity int) bool {
	if !e.store.IsInBasket(productId) {
		return false
	}

	if !e.commit(func() {
		e.store.Basket.Update(func(b model.Basket) model.Basket {
			return b.WithQuantity(productId, quantity)
		})
	}) {
		return false
	}

	e.afterBasketChange()
	return true
}

// LoadBasket replaces the local basket with the remote one.
func (e *Engine) LoadBasket() {
	e.spawn(func(ctx context.Context) {
		e.loadBasket(ctx)
	})
}

func (e *Engine) addToBasket(ctx context.Context, product model.Product, quantity int) bool {
	if quantity < 1 {
		e.fail(OpAddToBasket, product.Id, ierr.ErrInvalidQuantity)
		return false
	}

	no, err := product.ProductNo()
	if err != nil {
		e.fail(OpAddToBasket, product.Id, err)
		return false
	}

	if err := e.services.Basket.AddToBasket(ctx, no); err != nil {
		e.fail(OpAddToBasket, product.Id, err)
		return false
	}

	if !e.commit(func() {
		e.store.Basket.Update(func(b model.Basket) model.Basket {
			return b.WithAdded(product, quantity)
		})
	}) {
		return false
	}

	e.afterBasketChange()
	e.RefreshProductDetail(product.Id)
	return true
}

func (e *Engine) decreaseQuantity(ctx context.Context, productId string, quantity int) bool {
	if quantity < 1 {
		e.fail(OpDecreaseQuantity, productId, ierr.ErrInvalidQuantity)
		return false
	}

	item, ok := e.store.Basket.Get().Find(productId)
	if !ok {
		log.Debug().Str("product", productId).Msg("engine: decrease on a product that is not in the basket")
		return false
	}

	if item.Quantity > quantity {
		if !e.commit(func() {
			e.store.Basket.Update(func(b model.Basket) model.Basket {
				current, ok := b.Find(productId)
				if !ok || current.Quantity <= quantity {
					return b
				}
				return b.WithQuantity(productId, current.Quantity-quantity)
			})
		}) {
			return false
		}

		e.afterBasketChange()
		return true
	}

	if !e.deleteRemote(ctx, OpDecreaseQuantity, productId) {
		return false
	}
	e.afterBasketChange()
	return true
}

func (e *Engine) removeFromBasket(ctx context.Context, productId string) bool {
	if !e.deleteRemote(ctx, OpRemoveFromBasket, productId) {
		return false
	}
	e.afterBasketChange()
	return true
}

// deleteRemote deletes every unit of productId remotely and then locally.
func (e *Engine) deleteRemote(ctx context.Context, op Op, productId string) bool {
	no, err := model.ProductNo(productId)
	if err != nil {
		e.fail(op, productId, err)
		return false
	}

	if err := e.services.Basket.DeleteFromBasket(ctx, no); err != nil {
		e.fail(op, productId, err)
		return false
	}

	return e.commit(func() {
		e.store.Basket.Update(func(b model.Basket) model.Basket {
			return b.Without(productId)
		})
	})
}

// loadBasket aggregates the one-row-per-unit remote basket into quantities,
// in order of first appearance. Rows for products missing from the catalog are dropped.
func (e *Engine) loadBasket(ctx context.Context) bool {
	rows, err := e.services.Basket.BasketItems(ctx)
	if err != nil {
		e.fail(OpLoadBasket, "", err)
		return false
	}

	if e.catalog.Empty() {
		e.fail(OpLoadBasket, "", ierr.ErrEmptyCatalog)
		return false
	}

	order := []int{}
	counts := map[int]int{}
	for _, row := range rows {
		if _, seen := counts[row.ProductNo]; !seen {
			order = append(order, row.ProductNo)
		}
		counts[row.ProductNo]++
	}

	basket := make(model.Basket, 0, len(order))
	for _, no := range order {
		product, ok := e.catalog.ProductByNo(no)
		if !ok {
			log.Warn().Str("product", strconv.Itoa(no)).Msg("engine: dropping basket row for unknown product")
			continue
		}
		basket = append(basket, model.BasketItem{Product: product, Quantity: counts[no]})
	}

	return e.commit(func() {
		e.store.Basket.Set(basket)
	})
}

func (e *Engine) afterBasketChange() {
	e.RefreshBasketSimilar()
	e.RefreshForYou()
}
