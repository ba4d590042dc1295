package engine

import (
	"context"
	"strconv"

	"go-shop-sync/internal/api"
	ierr "go-shop-sync/internal/errors"
	"go-shop-sync/internal/model"

	"github.com/rs/zerolog/log"
)

// ToggleFavorite removes a favorite after the backend confirms the delete, or adds one
// locally right away and records it only through a "favorites" interaction.
// The add side is never confirmed by the backend; a failed interaction log leaves a
// local favorite the backend does not know about.
func (e *Engine) ToggleFavorite(productId string) {
	e.spawn(func(ctx context.Context) {
		e.toggleFavorite(ctx, productId)
		e.RefreshForYou()
	})
}

// LoadFavorites replaces the local favorites with the remote ones.
func (e *Engine) LoadFavorites() {
	e.spawn(func(ctx context.Context) {
		e.loadFavorites(ctx)
	})
}

func (e *Engine) toggleFavorite(ctx context.Context, productId string) bool {
	if e.store.IsFavorite(productId) {
		no, err := model.ProductNo(productId)
		if err != nil {
			e.fail(OpToggleFavorite, productId, err)
			return false
		}

		if _, err := e.services.Favorites.DeleteFavorite(ctx, no); err != nil {
			e.fail(OpToggleFavorite, productId, err)
			return false
		}

		return e.commit(func() {
			e.store.Favorites.Update(func(s model.FavoriteSet) model.FavoriteSet {
				return s.Without(productId)
			})
		})
	}

	if _, ok := e.catalog.ProductById(productId); !ok {
		log.Warn().Str("product", productId).Msg("engine: favorite toggle for unknown product")
		e.fail(OpToggleFavorite, productId, ierr.ErrUnknownProduct)
		return false
	}

	if !e.commit(func() {
		e.store.Favorites.Update(func(s model.FavoriteSet) model.FavoriteSet {
			return s.With(productId)
		})
	}) {
		return false
	}

	e.logInteraction(productId, api.InteractionFavorites)
	return true
}

func (e *Engine) loadFavorites(ctx context.Context) bool {
	items, err := e.services.Favorites.FavoriteItems(ctx)
	if err != nil {
		e.fail(OpLoadFavorites, "", err)
		return false
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, strconv.Itoa(item.ProductNo))
	}

	return e.commit(func() {
		e.store.Favorites.Set(model.NewFavoriteSet(ids...))
	})
}

// logInteraction ships one interaction event in the background. Failures are only reported.
func (e *Engine) logInteraction(productId string, kind api.InteractionType) {
	e.spawn(func(ctx context.Context) {
		if _, err := e.services.Interactions.LogInteraction(ctx, productId, kind); err != nil {
			e.fail(OpLogInteraction, productId, err)
		}
	})
}
