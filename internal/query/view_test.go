package query

import (
	"fmt"
	"strings"
	"testing"

	"go-shop-sync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fruit = model.Category{Id: "cat1", Name: "Fruit"}
	dairy = model.Category{Id: "cat2", Name: "Dairy"}
)

func sixFruitsAndMilk() []model.Product {
	products := []model.Product{}
	for i := 1; i <= 6; i++ {
		products = append(products, model.Product{Id: fmt.Sprint(i), Name: fmt.Sprintf("Fruit %d", i), CategoryId: fruit.Id})
	}
	return append(products,
		model.Product{Id: "7", Name: "Milk", CategoryId: dairy.Id},
		model.Product{Id: "8", Name: "Dragon fruit yoghurt", CategoryId: dairy.Id},
	)
}

func productsOf(items []DisplayItem) []model.Product {
	out := []model.Product{}
	for _, item := range items {
		if p, ok := item.(ProductItem); ok {
			out = append(out, p.Product)
		}
	}
	return out
}

func headersOf(items []DisplayItem) []CategoryHeader {
	out := []CategoryHeader{}
	for _, item := range items {
		if h, ok := item.(CategoryHeader); ok {
			out = append(out, h)
		}
	}
	return out
}

func TestDeriveViewWithoutFilterCapsEachCategory(t *testing.T) {
	items := DeriveView(NoFilter(), sixFruitsAndMilk(), []model.Category{fruit, dairy}, "cat2")

	require.NotEmpty(t, items)
	selector, ok := items[0].(CategorySelector)
	require.True(t, ok, "first item should be the category selector")
	assert.Equal(t, "cat2", selector.SelectedCategoryId)
	assert.Len(t, selector.Categories, 2)

	header, ok := items[1].(CategoryHeader)
	require.True(t, ok)
	assert.Equal(t, fruit, header.Category)
	assert.False(t, header.ShowAll)

	for i := 2; i < 6; i++ {
		p, ok := items[i].(ProductItem)
		require.True(t, ok)
		assert.Equal(t, fruit.Id, p.Product.CategoryId)
	}

	dairyHeader, ok := items[6].(CategoryHeader)
	require.True(t, ok)
	assert.Equal(t, dairy, dairyHeader.Category)
	assert.True(t, dairyHeader.ShowAll)
	assert.Len(t, items, 9)
}

func TestDeriveViewCategoryFilter(t *testing.T) {
	items := DeriveView(CategoryFilter(fruit.Id), sixFruitsAndMilk(), []model.Category{fruit, dairy}, fruit.Id)

	_, isSelector := items[0].(CategorySelector)
	assert.False(t, isSelector, "detail view has no selector")

	headers := headersOf(items)
	require.Len(t, headers, 1)
	assert.True(t, headers[0].ShowAll)

	products := productsOf(items)
	assert.Len(t, products, 6)
	for _, p := range products {
		assert.Equal(t, fruit.Id, p.CategoryId)
	}
}

func TestDeriveViewTextFilterMatchesNameOrCategory(t *testing.T) {
	items := DeriveView(TextFilter("FRUIT"), sixFruitsAndMilk(), []model.Category{fruit, dairy}, "")

	products := productsOf(items)
	assert.Len(t, products, 7)
	for _, p := range products {
		category := fruit
		if p.CategoryId == dairy.Id {
			category = dairy
		}
		assert.True(t,
			strings.Contains(strings.ToLower(p.Name), "fruit") || strings.Contains(strings.ToLower(category.Name), "fruit"),
			"product %s should match", p.Name)
	}

	headers := headersOf(items)
	require.Len(t, headers, 2)
	assert.Equal(t, fruit, headers[0].Category)
	assert.Equal(t, dairy, headers[1].Category)
	assert.True(t, headers[0].ShowAll)
}

func TestDeriveViewTextEqualToCategoryIdIsCategoryFilter(t *testing.T) {
	items := DeriveView(TextFilter("cat2"), sixFruitsAndMilk(), []model.Category{fruit, dairy}, "")

	products := productsOf(items)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, dairy.Id, p.CategoryId)
	}
}

func TestDeriveViewUnknownCategoryIdFallsBackToText(t *testing.T) {
	items := DeriveView(CategoryFilter("milk"), sixFruitsAndMilk(), []model.Category{fruit, dairy}, "")

	products := productsOf(items)
	require.Len(t, products, 1)
	assert.Equal(t, "7", products[0].Id)
}

func TestDeriveViewBlankValueIsNoFilter(t *testing.T) {
	items := DeriveView(TextFilter("   "), sixFruitsAndMilk(), []model.Category{fruit, dairy}, "")

	_, isSelector := items[0].(CategorySelector)
	assert.True(t, isSelector)
}

func TestDeriveViewNoMatches(t *testing.T) {
	items := DeriveView(TextFilter("caviar"), sixFruitsAndMilk(), []model.Category{fruit, dairy}, "")
	assert.Empty(t, items)
}

func TestDeriveViewEmptyCatalog(t *testing.T) {
	assert.Empty(t, DeriveView(NoFilter(), nil, nil, ""))
}

func TestDeriveViewDropsProductsWithUnknownCategory(t *testing.T) {
	products := []model.Product{{Id: "1", Name: "Orphan", CategoryId: "gone"}, {Id: "2", Name: "Milk", CategoryId: dairy.Id}}

	items := DeriveView(NoFilter(), products, []model.Category{dairy}, "")
	assert.Equal(t, []model.Product{products[1]}, productsOf(items))
}
