package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) CollaborativeRecommendations(ctx context.Context, userId string, k int) ([]int, error) {
	ids, err := c.recommendations(ctx, fmt.Sprintf(collaborativePath, url.PathEscape(userId)), k)
	if err != nil {
		return nil, fmt.Errorf("collaborative recommendations: %w, user_id: %s", err, userId)
	}
	return ids, nil
}

func (c *Client) BasketSimilarityRecommendations(ctx context.Context, userId string, k int) ([]int, error) {
	ids, err := c.recommendations(ctx, fmt.Sprintf(basketSimilarityPath, url.PathEscape(userId)), k)
	if err != nil {
		return nil, fmt.Errorf("basket similarity recommendations: %w, user_id: %s", err, userId)
	}
	return ids, nil
}

func (c *Client) ContentBasedRecommendations(ctx context.Context, productNo int, k int) ([]int, error) {
	ids, err := c.recommendations(ctx, fmt.Sprintf(contentBasedPath, productNo), k)
	if err != nil {
		return nil, fmt.Errorf("content based recommendations: %w, product_no: %d", err, productNo)
	}
	return ids, nil
}

func (c *Client) recommendations(ctx context.Context, path string, k int) ([]int, error) {
	resp := RecommendationResponse{}
	if err := c.do(ctx, http.MethodGet, path, topK(k), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Recommendations == nil {
		return []int{}, nil
	}
	return resp.Recommendations, nil
}
