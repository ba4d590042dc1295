package model

import (
	"strconv"

	ierr "go-shop-sync/internal/errors"
)

type Product struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	CategoryId  string   `json:"categoryId"`
	Ingredients []string `json:"ingredients,omitempty"`
	Price       *float64 `json:"price,omitempty"` // display only, never computed
}

type Category struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// ProductNo is the numeric identifier the backend uses for a product.
func (p Product) ProductNo() (int, error) {
	return ProductNo(p.Id)
}

func ProductNo(productId string) (int, error) {
	n, err := strconv.Atoi(productId)
	if err != nil {
		return 0, ierr.ErrInvalidProductNo
	}
	return n, nil
}
