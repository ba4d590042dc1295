package model

import "sort"

// FavoriteSet is a set of product ids. It is replaced, never mutated, once published.
type FavoriteSet map[string]struct{}

func NewFavoriteSet(productIds ...string) FavoriteSet {
	s := make(FavoriteSet, len(productIds))
	for _, id := range productIds {
		s[id] = struct{}{}
	}
	return s
}

func (s FavoriteSet) Has(productId string) bool {
	_, ok := s[productId]
	return ok
}

func (s FavoriteSet) With(productId string) FavoriteSet {
	next := s.clone()
	next[productId] = struct{}{}
	return next
}

func (s FavoriteSet) Without(productId string) FavoriteSet {
	next := s.clone()
	delete(next, productId)
	return next
}

// Ids returns the members sorted, for stable output.
func (s FavoriteSet) Ids() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s FavoriteSet) clone() FavoriteSet {
	next := make(FavoriteSet, len(s)+1)
	for id := range s {
		next[id] = struct{}{}
	}
	return next
}
