// Package mockbackend is an in-memory stand-in for the shopping backend,
// used for local development and integration tests.
package mockbackend

import (
	"net/http"
	"sort"
	"strconv"
	"sync"

	"go-shop-sync/internal/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type product struct {
	no         int
	categoryId string
}

type Backend struct {
	userId   string
	products []product

	mu           sync.Mutex
	basket       []int
	favorites    []int
	scores       map[int]float64
	interactions []Interaction
	failures     map[string]int
}

// Interaction is one logged event as received by the backend.
type Interaction struct {
	ProductNo int
	Type      string
}

func New(snapshot *catalog.Snapshot, userId string) *Backend {
	b := &Backend{
		userId:   userId,
		scores:   map[int]float64{},
		failures: map[string]int{},
	}
	for _, p := range snapshot.Products() {
		if no, err := strconv.Atoi(p.Id); err == nil {
			b.products = append(b.products, product{no: no, categoryId: p.CategoryId})
		}
	}
	return b
}

func (b *Backend) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post(RouteInteractions, b.failable(RouteInteractions, b.handleInteraction))
	r.Post(RouteBulkInteractions, b.failable(RouteBulkInteractions, b.handleBulkInteraction))

	r.Post(RouteBasketAdd, b.failable(RouteBasketAdd, b.handleBasketAdd))
	r.Delete(RouteBasketDelete, b.failable(RouteBasketDelete, b.handleBasketDelete))
	r.Delete(RouteBasketDeleteAll, b.failable(RouteBasketDeleteAll, b.handleBasketDeleteAll))
	r.Get(RouteBasketItems, b.failable(RouteBasketItems, b.handleBasketItems))

	r.Get(RouteFavoriteItems, b.failable(RouteFavoriteItems, b.handleFavoriteItems))
	r.Delete(RouteFavoriteDelete, b.failable(RouteFavoriteDelete, b.handleFavoriteDelete))

	r.Get(RouteCollaborative, b.failable(RouteCollaborative, b.handleCollaborative))
	r.Get(RouteBasketSimilarity, b.failable(RouteBasketSimilarity, b.handleBasketSimilarity))
	r.Get(RouteContentBased, b.failable(RouteContentBased, b.handleContentBased))

	return r
}

// FailRoute makes every request to route answer with status until ClearFailures.
func (b *Backend) FailRoute(route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = status
}

func (b *Backend) ClearFailures() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = map[string]int{}
}

func (b *Backend) SeedBasket(productNos ...int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.basket = append(b.basket, productNos...)
}

func (b *Backend) SeedFavorites(productNos ...int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, no := range productNos {
		b.addFavoriteLocked(no)
	}
}

func (b *Backend) BasketRows() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]int(nil), b.basket...)
}

func (b *Backend) Favorites() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]int(nil), b.favorites...)
}

func (b *Backend) Interactions() []Interaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Interaction(nil), b.interactions...)
}

func (b *Backend) failable(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		status, fail := b.failures[route]
		b.mu.Unlock()

		if fail {
			writeJSON(w, status, map[string]string{"detail": http.StatusText(status)})
			return
		}
		next(w, r)
	}
}

func (b *Backend) addFavoriteLocked(no int) {
	for _, f := range b.favorites {
		if f == no {
			return
		}
	}
	b.favorites = append(b.favorites, no)
}

func (b *Backend) recordLocked(no int, kind string, weight float64) float64 {
	b.interactions = append(b.interactions, Interaction{ProductNo: no, Type: kind})
	b.scores[no] += weight
	return b.scores[no]
}

// topScoredLocked returns product numbers by descending score, ties by product number.
func (b *Backend) topScoredLocked(k int) []int {
	nos := make([]int, 0, len(b.scores))
	for no := range b.scores {
		nos = append(nos, no)
	}
	sort.Slice(nos, func(i, j int) bool {
		if b.scores[nos[i]] != b.scores[nos[j]] {
			return b.scores[nos[i]] > b.scores[nos[j]]
		}
		return nos[i] < nos[j]
	})
	return truncate(nos, k)
}

func truncate(nos []int, k int) []int {
	if k >= 0 && len(nos) > k {
		return nos[:k]
	}
	return nos
}
