package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) AddToBasket(ctx context.Context, productNo int) error {
	if err := c.do(ctx, http.MethodPost, basketAddPath, nil, AddToBasketRequest{ProductNo: productNo}, nil); err != nil {
		return fmt.Errorf("add to basket: %w, product_no: %d", err, productNo)
	}
	return nil
}

func (c *Client) DeleteFromBasket(ctx context.Context, productNo int) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf(basketDeletePath, productNo), nil, nil, nil); err != nil {
		return fmt.Errorf("delete from basket: %w, product_no: %d", err, productNo)
	}
	return nil
}

func (c *Client) DeleteAllFromBasket(ctx context.Context, userId string) (DeleteAllBasketResponse, error) {
	resp := DeleteAllBasketResponse{}
	path := fmt.Sprintf(basketDeleteAllPath, url.PathEscape(userId))
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &resp); err != nil {
		return resp, fmt.Errorf("delete all from basket: %w, user_id: %s", err, userId)
	}
	return resp, nil
}

func (c *Client) BasketItems(ctx context.Context) ([]BasketProduct, error) {
	items := []BasketProduct{}
	if err := c.do(ctx, http.MethodGet, basketItemsPath, nil, nil, &items); err != nil {
		return nil, fmt.Errorf("basket items: %w", err)
	}
	return items, nil
}
