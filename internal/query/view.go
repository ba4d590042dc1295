package query

import (
	"strings"

	"go-shop-sync/internal/model"

	"golang.org/x/text/cases"
)

// PreviewSize is the number of products shown per category outside a detail view.
const PreviewSize = 4

// DeriveView turns the active filter and the catalog into the ordered listing.
//
// A non-blank filter value equal to a known category id always selects that category;
// any other non-blank value is a case-insensitive match on product or category name.
// Both are detail views and list every match. Without a filter each category is capped
// at PreviewSize products and the list starts with a CategorySelector.
func DeriveView(filter SearchFilterState, products []model.Product, categories []model.Category, selectedTabCategoryId string) []DisplayItem {
	categoryById := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		if _, ok := categoryById[c.Id]; !ok {
			categoryById[c.Id] = c
		}
	}

	detailView := filter.Active()
	productsToShow := products
	categoriesToShow := categories

	if detailView {
		if category, ok := categoryById[filter.Value]; ok {
			productsToShow = filterProducts(products, func(p model.Product) bool {
				return p.CategoryId == category.Id
			})
			categoriesToShow = []model.Category{category}
		} else {
			fold := cases.Fold()
			needle := fold.String(filter.Value)
			productsToShow = filterProducts(products, func(p model.Product) bool {
				if strings.Contains(fold.String(p.Name), needle) {
					return true
				}
				c, ok := categoryById[p.CategoryId]
				return ok && strings.Contains(fold.String(c.Name), needle)
			})
			categoriesToShow = touchedCategories(categories, productsToShow)
		}
	}

	byCategory := make(map[string][]model.Product, len(categoriesToShow))
	for _, p := range productsToShow {
		byCategory[p.CategoryId] = append(byCategory[p.CategoryId], p)
	}

	items := []DisplayItem{}
	for _, category := range categoriesToShow {
		inCategory := byCategory[category.Id]
		if len(inCategory) == 0 {
			continue
		}

		items = append(items, CategoryHeader{
			Category: category,
			ShowAll:  detailView || len(inCategory) <= PreviewSize,
		})

		if !detailView && len(inCategory) > PreviewSize {
			inCategory = inCategory[:PreviewSize]
		}
		for _, p := range inCategory {
			items = append(items, ProductItem{Product: p})
		}
	}

	if !detailView && len(categories) > 0 {
		selector := CategorySelector{
			Categories:         append([]model.Category(nil), categories...),
			SelectedCategoryId: selectedTabCategoryId,
		}
		items = append([]DisplayItem{selector}, items...)
	}

	return items
}

func filterProducts(products []model.Product, keep func(model.Product) bool) []model.Product {
	out := []model.Product{}
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// touchedCategories keeps catalog order.
func touchedCategories(categories []model.Category, products []model.Product) []model.Category {
	ids := make(map[string]struct{}, len(products))
	for _, p := range products {
		ids[p.CategoryId] = struct{}{}
	}

	out := []model.Category{}
	for _, c := range categories {
		if _, ok := ids[c.Id]; ok {
			out = append(out, c)
		}
	}
	return out
}
