package engine

type Op string

const (
	OpAddToBasket          Op = "add-to-basket"
	OpDecreaseQuantity     Op = "decrease-quantity"
	OpRemoveFromBasket     Op = "remove-from-basket"
	OpLoadBasket           Op = "load-basket"
	OpLoadFavorites        Op = "load-favorites"
	OpToggleFavorite       Op = "toggle-favorite"
	OpRefreshForYou        Op = "refresh-for-you"
	OpRefreshBasketSimilar Op = "refresh-basket-similar"
	OpRefreshProductDetail Op = "refresh-product-detail"
	OpCompletePurchase     Op = "complete-purchase"
	OpLogInteraction       Op = "log-interaction"
)
