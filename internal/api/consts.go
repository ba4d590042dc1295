package api

const (
	interactionsPath     string = "interactions/"
	bulkInteractionsPath string = "interactions/bulk/"
	basketAddPath        string = "basket/add"
	basketDeletePath     string = "basket/delete/%d"
	basketDeleteAllPath  string = "basket/delete-all/%s"
	basketItemsPath      string = "basket/items/"
	favoriteItemsPath    string = "favorites/items/"
	favoriteDeletePath   string = "favorites/delete/%d"
	collaborativePath    string = "recommend/collaborative/%s"
	basketSimilarityPath string = "recommend/basket-similarity/%s"
	contentBasedPath     string = "recommend/content-based/%d"
	topKParam            string = "top_k"
	maxErrorBodySize     int64  = 512
	contentTypeHeader    string = "Content-Type"
	jsonContentType      string = "application/json"
)
