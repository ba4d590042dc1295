package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) LogInteraction(ctx context.Context, productId string, kind InteractionType) (InteractionResponse, error) {
	resp := InteractionResponse{}
	req := InteractionRequest{ProductNo: productId, InteractionType: kind}
	if err := c.do(ctx, http.MethodPost, interactionsPath, nil, req, &resp); err != nil {
		return resp, fmt.Errorf("log interaction: %w, product_no: %s, type: %s", err, productId, kind)
	}
	return resp, nil
}

func (c *Client) LogBulkBought(ctx context.Context, productIds []string) error {
	if len(productIds) == 0 {
		return nil
	}

	req := BulkInteractionRequest{ProductNos: productIds, InteractionType: InteractionBought}
	if err := c.do(ctx, http.MethodPost, bulkInteractionsPath, nil, req, &BulkInteractionResponse{}); err != nil {
		return fmt.Errorf("log bulk bought: %w, count: %d", err, len(productIds))
	}
	return nil
}
