package query

import "go-shop-sync/internal/model"

// DisplayItem is one row of the derived product listing.
type DisplayItem interface {
	displayItem()
}

// CategorySelector carries the full category list for the tab strip.
// SelectedCategoryId is for highlighting only.
type CategorySelector struct {
	Categories         []model.Category
	SelectedCategoryId string
}

type CategoryHeader struct {
	Category model.Category
	ShowAll  bool
}

type ProductItem struct {
	Product model.Product
}

func (CategorySelector) displayItem() {}
func (CategoryHeader) displayItem()   {}
func (ProductItem) displayItem()      {}
