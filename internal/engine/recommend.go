package engine

import (
	"context"

	"go-shop-sync/internal/api"
	"go-shop-sync/internal/model"
	"go-shop-sync/internal/state"

	"github.com/rs/zerolog/log"
)

// RefreshForYou fetches the collaborative slice keyed by the user's overall affinity.
func (e *Engine) RefreshForYou() {
	e.spawn(e.refreshForYou)
}

// RefreshBasketSimilar fetches the slice keyed by the current basket contents.
func (e *Engine) RefreshBasketSimilar() {
	e.spawn(e.refreshBasketSimilar)
}

// RefreshProductDetail fetches the slice for the viewed product. An empty id clears it.
func (e *Engine) RefreshProductDetail(productId string) {
	if productId == "" {
		e.commit(func() { e.store.ProductDetail.Set([]model.Product{}) })
		return
	}
	e.spawn(func(ctx context.Context) {
		e.refreshProductDetail(ctx, productId)
	})
}

// OpenProduct is called when a product page is shown.
func (e *Engine) OpenProduct(productId string) {
	e.RefreshProductDetail(productId)
}

// TrackProductClick logs the click, remembers the product and refreshes the
// product-detail and for-you slices.
func (e *Engine) TrackProductClick(productId string) {
	e.spawn(func(ctx context.Context) {
		if _, ok := e.catalog.ProductById(productId); ok {
			e.logInteraction(productId, api.InteractionClick)
		}
		e.RefreshProductDetail(productId)
		e.commit(func() { e.store.RecordClick(productId) })
		e.RefreshForYou()
	})
}

func (e *Engine) refreshForYou(ctx context.Context) {
	if e.forYouInflight.Add(1) == 1 {
		e.commit(func() { e.store.ForYouLoading.Set(true) })
	}
	defer func() {
		if e.forYouInflight.Add(-1) == 0 {
			e.commit(func() { e.store.ForYouLoading.Set(false) })
		}
	}()

	ids, err := e.services.Recommendations.CollaborativeRecommendations(ctx, e.cnf.UserId, e.cnf.ForYouTopK)
	e.publishSlice(OpRefreshForYou, "", e.store.ForYou, ids, err)
}

func (e *Engine) refreshBasketSimilar(ctx context.Context) {
	ids, err := e.services.Recommendations.BasketSimilarityRecommendations(ctx, e.cnf.UserId, e.cnf.BasketTopK)
	e.publishSlice(OpRefreshBasketSimilar, "", e.store.BasketSimilar, ids, err)
}

func (e *Engine) refreshProductDetail(ctx context.Context, productId string) {
	no, err := model.ProductNo(productId)
	if err != nil {
		e.publishSlice(OpRefreshProductDetail, productId, e.store.ProductDetail, nil, err)
		return
	}

	ids, err := e.services.Recommendations.ContentBasedRecommendations(ctx, no, e.cnf.ProductDetailTopK)
	e.publishSlice(OpRefreshProductDetail, productId, e.store.ProductDetail, ids, err)
}

// publishSlice resolves ids against the catalog, keeping their order, and replaces the slice.
// A failed fetch empties the slice.
func (e *Engine) publishSlice(op Op, productId string, slice *state.Cell[[]model.Product], ids []int, err error) {
	if err != nil {
		e.fail(op, productId, err)
		e.commit(func() { slice.Set([]model.Product{}) })
		return
	}

	products := e.catalog.ResolveProductNos(ids)
	if dropped := len(ids) - len(products); dropped > 0 {
		log.Warn().Str("op", string(op)).Int("dropped", dropped).Msg("engine: recommendations reference unknown products")
	}

	e.commit(func() { slice.Set(products) })
}
