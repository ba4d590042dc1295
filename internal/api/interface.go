package api

import "context"

type BasketService interface {
	AddToBasket(ctx context.Context, productNo int) error
	DeleteFromBasket(ctx context.Context, productNo int) error
	DeleteAllFromBasket(ctx context.Context, userId string) (DeleteAllBasketResponse, error)
	BasketItems(ctx context.Context) ([]BasketProduct, error)
}

type FavoritesService interface {
	FavoriteItems(ctx context.Context) ([]FavoriteItem, error)
	DeleteFavorite(ctx context.Context, productNo int) (FavoriteActionResponse, error)
}

type RecommendationService interface {
	CollaborativeRecommendations(ctx context.Context, userId string, topK int) ([]int, error)
	BasketSimilarityRecommendations(ctx context.Context, userId string, topK int) ([]int, error)
	ContentBasedRecommendations(ctx context.Context, productNo int, topK int) ([]int, error)
}

type InteractionLogger interface {
	LogInteraction(ctx context.Context, productId string, kind InteractionType) (InteractionResponse, error)
	LogBulkBought(ctx context.Context, productIds []string) error
}
