package mockbackend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go-shop-sync/internal/api"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func (b *Backend) handleInteraction(w http.ResponseWriter, r *http.Request) {
	var req api.InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	no, err := strconv.Atoi(req.ProductNo)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "product_no must be numeric")
		return
	}
	weight, ok := interactionWeights[req.InteractionType]
	if !ok {
		writeDetail(w, http.StatusUnprocessableEntity, fmt.Sprintf("unknown interaction type %q", req.InteractionType))
		return
	}

	b.mu.Lock()
	score := b.recordLocked(no, string(req.InteractionType), weight)
	if req.InteractionType == api.InteractionFavorites {
		b.addFavoriteLocked(no)
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, api.InteractionResponse{
		Message:          "interaction recorded",
		UserId:           b.userId,
		ProductNo:        no,
		InteractionType:  req.InteractionType,
		CalculatedWeight: weight,
		DecayedScore:     score,
	})
}

func (b *Backend) handleBulkInteraction(w http.ResponseWriter, r *http.Request) {
	var req api.BulkInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	nos := make([]int, 0, len(req.ProductNos))
	for _, id := range req.ProductNos {
		no, err := strconv.Atoi(id)
		if err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "product_no must be numeric")
			return
		}
		nos = append(nos, no)
	}

	b.mu.Lock()
	for _, no := range nos {
		b.recordLocked(no, string(api.InteractionBought), interactionWeights[api.InteractionBought])
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, api.BulkInteractionResponse{Message: "interactions recorded", UserId: b.userId, Count: len(nos)})
}

func (b *Backend) handleBasketAdd(w http.ResponseWriter, r *http.Request) {
	var req api.AddToBasketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	b.mu.Lock()
	b.basket = append(b.basket, req.ProductNo)
	b.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (b *Backend) handleBasketDelete(w http.ResponseWriter, r *http.Request) {
	no, ok := productNoParam(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	kept := make([]int, 0, len(b.basket))
	for _, row := range b.basket {
		if row != no {
			kept = append(kept, row)
		}
	}
	removed := len(kept) != len(b.basket)
	b.basket = kept
	b.mu.Unlock()

	if !removed {
		writeDetail(w, http.StatusNotFound, "product not in basket")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (b *Backend) handleBasketDeleteAll(w http.ResponseWriter, r *http.Request) {
	userId := chi.URLParam(r, "user_id")
	if userId != b.userId {
		writeDetail(w, http.StatusNotFound, "unknown user")
		return
	}

	b.mu.Lock()
	count := len(b.basket)
	b.basket = nil
	b.mu.Unlock()

	message := fmt.Sprintf("%d items removed from basket", count)
	writeJSON(w, http.StatusOK, api.DeleteAllBasketResponse{Message: &message})
}

func (b *Backend) handleBasketItems(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	rows := make([]api.BasketProduct, 0, len(b.basket))
	for _, no := range b.basket {
		rows = append(rows, api.BasketProduct{ProductNo: no})
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, rows)
}

func (b *Backend) handleFavoriteItems(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	items := make([]api.FavoriteItem, 0, len(b.favorites))
	for _, no := range b.favorites {
		items = append(items, api.FavoriteItem{ProductNo: no})
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, items)
}

func (b *Backend) handleFavoriteDelete(w http.ResponseWriter, r *http.Request) {
	no, ok := productNoParam(w, r)
	if !ok {
		return
	}

	b.mu.Lock()
	index := -1
	for i, f := range b.favorites {
		if f == no {
			index = i
			break
		}
	}
	if index != -1 {
		b.favorites = append(b.favorites[:index:index], b.favorites[index+1:]...)
	}
	b.mu.Unlock()

	if index == -1 {
		writeDetail(w, http.StatusNotFound, "product not in favorites")
		return
	}
	writeJSON(w, http.StatusOK, api.FavoriteActionResponse{Message: "favorite removed", UserId: b.userId, ProductNo: no})
}

func (b *Backend) handleCollaborative(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "user_id") != b.userId {
		writeDetail(w, http.StatusNotFound, "unknown user")
		return
	}

	b.mu.Lock()
	ids := b.topScoredLocked(topKParam(r))
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, api.RecommendationResponse{Recommendations: ids})
}

func (b *Backend) handleBasketSimilarity(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "user_id") != b.userId {
		writeDetail(w, http.StatusNotFound, "unknown user")
		return
	}

	b.mu.Lock()
	inBasket := map[int]struct{}{}
	basketCategories := map[string]struct{}{}
	for _, no := range b.basket {
		inBasket[no] = struct{}{}
	}
	b.mu.Unlock()

	for _, p := range b.products {
		if _, ok := inBasket[p.no]; ok {
			basketCategories[p.categoryId] = struct{}{}
		}
	}

	// same-category products first, then the rest of the catalog
	ids := []int{}
	rest := []int{}
	for _, p := range b.products {
		if _, ok := inBasket[p.no]; ok {
			continue
		}
		if _, ok := basketCategories[p.categoryId]; ok {
			ids = append(ids, p.no)
		} else {
			rest = append(rest, p.no)
		}
	}

	writeJSON(w, http.StatusOK, api.RecommendationResponse{Recommendations: truncate(append(ids, rest...), topKParam(r))})
}

func (b *Backend) handleContentBased(w http.ResponseWriter, r *http.Request) {
	no, ok := productNoParam(w, r)
	if !ok {
		return
	}

	categoryId := ""
	for _, p := range b.products {
		if p.no == no {
			categoryId = p.categoryId
			break
		}
	}
	if categoryId == "" {
		writeDetail(w, http.StatusNotFound, "unknown product")
		return
	}

	ids := []int{}
	rest := []int{}
	for _, p := range b.products {
		switch {
		case p.no == no:
		case p.categoryId == categoryId:
			ids = append(ids, p.no)
		default:
			rest = append(rest, p.no)
		}
	}

	writeJSON(w, http.StatusOK, api.RecommendationResponse{Recommendations: truncate(append(ids, rest...), topKParam(r))})
}

func productNoParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	no, err := strconv.Atoi(chi.URLParam(r, "product_no"))
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "product_no must be numeric")
		return 0, false
	}
	return no, true
}

func topKParam(r *http.Request) int {
	k, err := strconv.Atoi(r.URL.Query().Get("top_k"))
	if err != nil || k <= 0 {
		return defaultTopK
	}
	return k
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("mock backend: failed to write response")
	}
}
