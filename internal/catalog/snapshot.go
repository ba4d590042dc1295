package catalog

import (
	"strconv"

	"go-shop-sync/internal/model"

	"golang.org/x/text/cases"
)

// Snapshot is the read-only product catalog. It is built once and shared freely.
type Snapshot struct {
	products   []model.Product
	categories []model.Category

	productById    map[string]int
	productByNo    map[int]int
	categoryById   map[string]int
	categoryByName map[string]int
}

func New(products []model.Product, categories []model.Category) *Snapshot {
	s := &Snapshot{
		products:       make([]model.Product, len(products)),
		categories:     make([]model.Category, len(categories)),
		productById:    make(map[string]int, len(products)),
		productByNo:    make(map[int]int, len(products)),
		categoryById:   make(map[string]int, len(categories)),
		categoryByName: make(map[string]int, len(categories)),
	}
	copy(s.products, products)
	copy(s.categories, categories)

	fold := cases.Fold()
	for i, p := range s.products {
		if _, dup := s.productById[p.Id]; dup {
			continue
		}
		s.productById[p.Id] = i
		if n, err := strconv.Atoi(p.Id); err == nil {
			s.productByNo[n] = i
		}
	}
	for i, c := range s.categories {
		if _, dup := s.categoryById[c.Id]; !dup {
			s.categoryById[c.Id] = i
		}
		key := fold.String(c.Name)
		if _, dup := s.categoryByName[key]; !dup {
			s.categoryByName[key] = i
		}
	}
	return s
}

// Products returns the catalog products in load order.
func (s *Snapshot) Products() []model.Product {
	return append([]model.Product(nil), s.products...)
}

// Categories returns the catalog categories in load order.
func (s *Snapshot) Categories() []model.Category {
	return append([]model.Category(nil), s.categories...)
}

func (s *Snapshot) Empty() bool {
	return len(s.products) == 0
}

func (s *Snapshot) ProductById(id string) (model.Product, bool) {
	i, ok := s.productById[id]
	if !ok {
		return model.Product{}, false
	}
	return s.products[i], true
}

// ProductByNo resolves the numeric id used by the backend.
func (s *Snapshot) ProductByNo(no int) (model.Product, bool) {
	i, ok := s.productByNo[no]
	if !ok {
		return model.Product{}, false
	}
	return s.products[i], true
}

// ResolveProductNos maps backend ids to products, dropping unknown ids and keeping input order.
func (s *Snapshot) ResolveProductNos(nos []int) []model.Product {
	products := make([]model.Product, 0, len(nos))
	for _, no := range nos {
		if p, ok := s.ProductByNo(no); ok {
			products = append(products, p)
		}
	}
	return products
}

func (s *Snapshot) CategoryById(id string) (model.Category, bool) {
	i, ok := s.categoryById[id]
	if !ok {
		return model.Category{}, false
	}
	return s.categories[i], true
}

// CategoryByName matches a category name case-insensitively.
func (s *Snapshot) CategoryByName(name string) (model.Category, bool) {
	i, ok := s.categoryByName[cases.Fold().String(name)]
	if !ok {
		return model.Category{}, false
	}
	return s.categories[i], true
}
