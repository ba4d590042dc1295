package store

import (
	"go-shop-sync/internal/catalog"
	"go-shop-sync/internal/model"
	"go-shop-sync/internal/query"
	"go-shop-sync/internal/state"
)

// MaxClickedProducts bounds the recently clicked product list.
const MaxClickedProducts = 20

type viewInput struct {
	filter query.SearchFilterState
	tab    string
}

// Store is the single owner of mutable application state.
// Each field is an independently observable cell, replaced as a whole on every write.
type Store struct {
	catalog *catalog.Snapshot

	Filter      *state.Cell[query.SearchFilterState]
	SelectedTab *state.Cell[string]
	View        *state.Cell[[]query.DisplayItem]

	Basket          *state.Cell[model.Basket]
	Favorites       *state.Cell[model.FavoriteSet]
	History         *state.Cell[[]model.PurchaseHistory]
	ClickedProducts *state.Cell[[]string]

	ForYou        *state.Cell[[]model.Product]
	BasketSimilar *state.Cell[[]model.Product]
	ProductDetail *state.Cell[[]model.Product]
	ForYouLoading *state.Cell[bool]

	view *state.Memo[viewInput, []query.DisplayItem]
}

func New(snapshot *catalog.Snapshot) *Store {
	s := &Store{
		catalog:         snapshot,
		Filter:          state.NewCell(query.NoFilter()),
		SelectedTab:     state.NewCell(""),
		View:            state.NewCell([]query.DisplayItem{}),
		Basket:          state.NewCell(model.Basket{}),
		Favorites:       state.NewCell(model.NewFavoriteSet()),
		History:         state.NewCell([]model.PurchaseHistory{}),
		ClickedProducts: state.NewCell([]string{}),
		ForYou:          state.NewCell([]model.Product{}),
		BasketSimilar:   state.NewCell([]model.Product{}),
		ProductDetail:   state.NewCell([]model.Product{}),
		ForYouLoading:   state.NewCell(false),
	}

	products := snapshot.Products()
	categories := snapshot.Categories()
	s.view = state.NewMemo(func(in viewInput) []query.DisplayItem {
		return query.DeriveView(in.filter, products, categories, in.tab)
	})

	s.Filter.Subscribe(func(query.SearchFilterState) { s.refreshView() })
	s.SelectedTab.Subscribe(func(string) { s.refreshView() })
	s.refreshView()

	return s
}

func (s *Store) Catalog() *catalog.Snapshot {
	return s.catalog
}

func (s *Store) refreshView() {
	items, recomputed := s.view.Get(viewInput{filter: s.Filter.Get(), tab: s.SelectedTab.Get()})
	if recomputed {
		s.View.Set(items)
	}
}

func (s *Store) ProductById(id string) (model.Product, bool) {
	return s.catalog.ProductById(id)
}

func (s *Store) CategoryById(id string) (model.Category, bool) {
	return s.catalog.CategoryById(id)
}

func (s *Store) IsFavorite(productId string) bool {
	return s.Favorites.Get().Has(productId)
}

func (s *Store) IsInBasket(productId string) bool {
	return s.Basket.Get().Contains(productId)
}

func (s *Store) PurchaseById(id string) (model.PurchaseHistory, bool) {
	for _, p := range s.History.Get() {
		if p.PurchaseId == id {
			return p, true
		}
	}
	return model.PurchaseHistory{}, false
}

// FavoriteProducts resolves the favorite ids against the catalog, dropping unknown ids.
func (s *Store) FavoriteProducts() []model.Product {
	products := []model.Product{}
	for _, id := range s.Favorites.Get().Ids() {
		if p, ok := s.catalog.ProductById(id); ok {
			products = append(products, p)
		}
	}
	return products
}

// PrependPurchase adds a record in front of the history, most recent first.
func (s *Store) PrependPurchase(p model.PurchaseHistory) {
	s.History.Update(func(history []model.PurchaseHistory) []model.PurchaseHistory {
		next := make([]model.PurchaseHistory, 0, len(history)+1)
		next = append(next, p)
		return append(next, history...)
	})
}

// RecordClick appends productId to the clicked list unless it is already there,
// keeping only the last MaxClickedProducts ids.
func (s *Store) RecordClick(productId string) {
	s.ClickedProducts.Update(func(clicked []string) []string {
		for _, id := range clicked {
			if id == productId {
				return clicked
			}
		}
		next := append(append([]string(nil), clicked...), productId)
		if len(next) > MaxClickedProducts {
			next = next[len(next)-MaxClickedProducts:]
		}
		return next
	})
}
