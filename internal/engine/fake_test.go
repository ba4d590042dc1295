package engine_test

import (
	"context"
	"errors"
	"sync"

	"go-shop-sync/internal/api"
)

var errBackend = errors.New("backend unavailable")

// fakeBackend implements every remote service with in-memory state and per-call errors.
type fakeBackend struct {
	mu sync.Mutex

	basket    []int
	favorites []int
	recs      map[string][]int

	errs map[string]error

	// block, when set, holds AddToBasket until the context is done.
	block   bool
	blocked chan struct{}

	interactions []api.InteractionRequest
	bulk         [][]string
	calls        map[string]int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		recs:    map[string][]int{},
		errs:    map[string]error{},
		calls:   map[string]int{},
		blocked: make(chan struct{}, 1),
	}
}

func (f *fakeBackend) failOn(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method] = err
}

func (f *fakeBackend) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeBackend) loggedInteractions() []api.InteractionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.InteractionRequest(nil), f.interactions...)
}

func (f *fakeBackend) bulkBought() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.bulk...)
}

func (f *fakeBackend) enter(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	return f.errs[method]
}

func (f *fakeBackend) AddToBasket(ctx context.Context, productNo int) error {
	f.mu.Lock()
	block := f.block
	f.mu.Unlock()

	if block {
		f.blocked <- struct{}{}
		<-ctx.Done()
	}

	if err := f.enter("AddToBasket"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.basket = append(f.basket, productNo)
	return nil
}

func (f *fakeBackend) DeleteFromBasket(_ context.Context, productNo int) error {
	if err := f.enter("DeleteFromBasket"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.basket[:0]
	for _, no := range f.basket {
		if no != productNo {
			kept = append(kept, no)
		}
	}
	f.basket = kept
	return nil
}

func (f *fakeBackend) DeleteAllFromBasket(_ context.Context, _ string) (api.DeleteAllBasketResponse, error) {
	if err := f.enter("DeleteAllFromBasket"); err != nil {
		return api.DeleteAllBasketResponse{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.basket = nil
	msg := "cleared"
	return api.DeleteAllBasketResponse{Message: &msg}, nil
}

func (f *fakeBackend) BasketItems(_ context.Context) ([]api.BasketProduct, error) {
	if err := f.enter("BasketItems"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]api.BasketProduct, 0, len(f.basket))
	for _, no := range f.basket {
		items = append(items, api.BasketProduct{ProductNo: no})
	}
	return items, nil
}

func (f *fakeBackend) FavoriteItems(_ context.Context) ([]api.FavoriteItem, error) {
	if err := f.enter("FavoriteItems"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]api.FavoriteItem, 0, len(f.favorites))
	for _, no := range f.favorites {
		items = append(items, api.FavoriteItem{ProductNo: no})
	}
	return items, nil
}

func (f *fakeBackend) DeleteFavorite(_ context.Context, productNo int) (api.FavoriteActionResponse, error) {
	if err := f.enter("DeleteFavorite"); err != nil {
		return api.FavoriteActionResponse{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.favorites[:0]
	for _, no := range f.favorites {
		if no != productNo {
			kept = append(kept, no)
		}
	}
	f.favorites = kept
	return api.FavoriteActionResponse{Message: "removed", ProductNo: productNo}, nil
}

func (f *fakeBackend) CollaborativeRecommendations(_ context.Context, _ string, _ int) ([]int, error) {
	return f.recommend("Collaborative")
}

func (f *fakeBackend) BasketSimilarityRecommendations(_ context.Context, _ string, _ int) ([]int, error) {
	return f.recommend("BasketSimilarity")
}

func (f *fakeBackend) ContentBasedRecommendations(_ context.Context, _ int, _ int) ([]int, error) {
	return f.recommend("ContentBased")
}

func (f *fakeBackend) recommend(method string) ([]int, error) {
	if err := f.enter(method); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.recs[method]...), nil
}

func (f *fakeBackend) LogInteraction(_ context.Context, productId string, kind api.InteractionType) (api.InteractionResponse, error) {
	if err := f.enter("LogInteraction"); err != nil {
		return api.InteractionResponse{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interactions = append(f.interactions, api.InteractionRequest{ProductNo: productId, InteractionType: kind})
	return api.InteractionResponse{InteractionType: kind}, nil
}

func (f *fakeBackend) LogBulkBought(_ context.Context, productIds []string) error {
	if err := f.enter("LogBulkBought"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulk = append(f.bulk, append([]string(nil), productIds...))
	return nil
}

var (
	_ api.BasketService         = (*fakeBackend)(nil)
	_ api.FavoritesService      = (*fakeBackend)(nil)
	_ api.RecommendationService = (*fakeBackend)(nil)
	_ api.InteractionLogger     = (*fakeBackend)(nil)
)
