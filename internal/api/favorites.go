package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) FavoriteItems(ctx context.Context) ([]FavoriteItem, error) {
	items := []FavoriteItem{}
	if err := c.do(ctx, http.MethodGet, favoriteItemsPath, nil, nil, &items); err != nil {
		return nil, fmt.Errorf("favorite items: %w", err)
	}
	return items, nil
}

func (c *Client) DeleteFavorite(ctx context.Context, productNo int) (FavoriteActionResponse, error) {
	resp := FavoriteActionResponse{}
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf(favoriteDeletePath, productNo), nil, nil, &resp); err != nil {
		return resp, fmt.Errorf("delete favorite: %w, product_no: %d", err, productNo)
	}
	return resp, nil
}
