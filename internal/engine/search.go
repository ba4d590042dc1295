package engine

import (
	"strings"

	"go-shop-sync/internal/query"
)

// Search filters by category when the input names one and by free text otherwise.
// Blank input clears the filter.
func (e *Engine) Search(queryOrCategoryName string) {
	text := strings.TrimSpace(queryOrCategoryName)

	if category, ok := e.catalog.CategoryByName(text); ok {
		e.commit(func() {
			e.store.Filter.Set(query.CategoryFilter(category.Id))
			e.store.SelectedTab.Set(category.Id)
		})
		return
	}

	if text == "" {
		e.ClearSearch()
		return
	}

	e.commit(func() { e.store.Filter.Set(query.TextFilter(text)) })
}

// FilterByCategoryTab selects a category tab. An empty id clears the filter.
func (e *Engine) FilterByCategoryTab(categoryId string) {
	if categoryId == "" {
		e.ClearSearch()
		return
	}

	e.commit(func() {
		e.store.SelectedTab.Set(categoryId)
		e.store.Filter.Set(query.CategoryFilter(categoryId))
	})
}

func (e *Engine) ClearSearch() {
	e.commit(func() {
		e.store.Filter.Set(query.NoFilter())
		e.store.SelectedTab.Set("")
	})
}

func (e *Engine) View() []query.DisplayItem {
	return e.store.View.Get()
}
