package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go-shop-sync/internal/model"
	"go-shop-sync/internal/query"
)

type productRow struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	CategoryId  string   `json:"category_id"`
	Ingredients []string `json:"ingredients,omitempty"`
}

func newProductRow(p model.Product) productRow {
	return productRow{Id: p.Id, Name: p.Name, CategoryId: p.CategoryId, Ingredients: p.Ingredients}
}

func newProductRows(products []model.Product) []productRow {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, newProductRow(p))
	}
	return rows
}

type productList struct {
	Title    string       `json:"title"`
	Products []productRow `json:"products"`
}

func (l productList) writeText(w io.Writer) {
	fmt.Fprintf(w, "%s (%d)\n", l.Title, len(l.Products))
	for _, p := range l.Products {
		fmt.Fprintf(w, "  [%s] %s\n", p.Id, p.Name)
	}
}

type listingRow struct {
	Kind       string      `json:"kind"`
	Categories []string    `json:"categories,omitempty"`
	Selected   string      `json:"selected,omitempty"`
	Category   string      `json:"category,omitempty"`
	ShowAll    bool        `json:"show_all,omitempty"`
	Product    *productRow `json:"product,omitempty"`
}

type listing struct {
	Filter string       `json:"filter"`
	Items  []listingRow `json:"items"`
}

func newListing(filter query.SearchFilterState, items []query.DisplayItem) listing {
	out := listing{Filter: filter.Mode.String(), Items: make([]listingRow, 0, len(items))}
	for _, item := range items {
		switch it := item.(type) {
		case query.CategorySelector:
			names := make([]string, 0, len(it.Categories))
			for _, c := range it.Categories {
				names = append(names, c.Name)
			}
			out.Items = append(out.Items, listingRow{Kind: "selector", Categories: names, Selected: it.SelectedCategoryId})
		case query.CategoryHeader:
			out.Items = append(out.Items, listingRow{Kind: "header", Category: it.Category.Name, ShowAll: it.ShowAll})
		case query.ProductItem:
			row := newProductRow(it.Product)
			out.Items = append(out.Items, listingRow{Kind: "product", Product: &row})
		}
	}
	return out
}

func (l listing) writeText(w io.Writer) {
	if len(l.Items) == 0 {
		fmt.Fprintln(w, "no products match")
		return
	}
	for _, row := range l.Items {
		switch row.Kind {
		case "selector":
			fmt.Fprintf(w, "categories: %s\n", strings.Join(row.Categories, " | "))
		case "header":
			more := ""
			if !row.ShowAll {
				more = " (more)"
			}
			fmt.Fprintf(w, "\n== %s%s\n", row.Category, more)
		case "product":
			fmt.Fprintf(w, "  [%s] %s\n", row.Product.Id, row.Product.Name)
		}
	}
}

type basketRow struct {
	Product  productRow `json:"product"`
	Quantity int        `json:"quantity"`
}

type basketView struct {
	Items []basketRow `json:"items"`
	Units int         `json:"units"`
}

func newBasketView(b model.Basket) basketView {
	view := basketView{Items: make([]basketRow, 0, len(b)), Units: b.Units()}
	for _, item := range b {
		view.Items = append(view.Items, basketRow{Product: newProductRow(item.Product), Quantity: item.Quantity})
	}
	return view
}

func (v basketView) writeText(w io.Writer) {
	if len(v.Items) == 0 {
		fmt.Fprintln(w, "basket is empty")
		return
	}
	for _, item := range v.Items {
		fmt.Fprintf(w, "%3d x [%s] %s\n", item.Quantity, item.Product.Id, item.Product.Name)
	}
	fmt.Fprintf(w, "%d units\n", v.Units)
}

type purchaseView struct {
	PurchaseId   string     `json:"purchase_id"`
	PurchaseDate time.Time  `json:"purchase_date"`
	Items        basketView `json:"items"`
	Basket       basketView `json:"basket"`
}

func newPurchaseView(p model.PurchaseHistory, basket model.Basket) purchaseView {
	return purchaseView{
		PurchaseId:   p.PurchaseId,
		PurchaseDate: p.PurchaseDate,
		Items:        newBasketView(p.Items),
		Basket:       newBasketView(basket),
	}
}

func (v purchaseView) writeText(w io.Writer) {
	fmt.Fprintf(w, "purchase %s at %s\n", v.PurchaseId, v.PurchaseDate.Format(time.RFC3339))
	v.Items.writeText(w)
	if len(v.Basket.Items) > 0 {
		fmt.Fprintln(w, "basket not cleared by the backend:")
		v.Basket.writeText(w)
	}
}

type recommendationsView struct {
	ForYou        []productRow `json:"for_you"`
	BasketSimilar []productRow `json:"basket_similar"`
	ProductDetail []productRow `json:"product_detail,omitempty"`
}

func (v recommendationsView) writeText(w io.Writer) {
	productList{Title: "for you", Products: v.ForYou}.writeText(w)
	productList{Title: "similar to your basket", Products: v.BasketSimilar}.writeText(w)
	if v.ProductDetail != nil {
		productList{Title: "similar to this product", Products: v.ProductDetail}.writeText(w)
	}
}

type favoriteView struct {
	Product  productRow `json:"product"`
	Favorite bool       `json:"favorite"`
}

func (v favoriteView) writeText(w io.Writer) {
	state := "removed from"
	if v.Favorite {
		state = "added to"
	}
	fmt.Fprintf(w, "[%s] %s %s favorites\n", v.Product.Id, v.Product.Name, state)
}
