package mockbackend

import "go-shop-sync/internal/api"

// Interaction weights feeding the collaborative scores.
var interactionWeights = map[api.InteractionType]float64{
	api.InteractionClick:     1,
	api.InteractionScan:      2,
	api.InteractionFavorites: 3,
	api.InteractionBought:    5,
}

const (
	RouteInteractions     = "/interactions/"
	RouteBulkInteractions = "/interactions/bulk/"
	RouteBasketAdd        = "/basket/add"
	RouteBasketDelete     = "/basket/delete/{product_no}"
	RouteBasketDeleteAll  = "/basket/delete-all/{user_id}"
	RouteBasketItems      = "/basket/items/"
	RouteFavoriteItems    = "/favorites/items/"
	RouteFavoriteDelete   = "/favorites/delete/{product_no}"
	RouteCollaborative    = "/recommend/collaborative/{user_id}"
	RouteBasketSimilarity = "/recommend/basket-similarity/{user_id}"
	RouteContentBased     = "/recommend/content-based/{product_no}"

	defaultTopK = 10
)
