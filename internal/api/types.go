package api

type InteractionType string

const (
	InteractionFavorites InteractionType = "favorites"
	InteractionBought    InteractionType = "bought"
	InteractionScan      InteractionType = "scan"
	InteractionClick     InteractionType = "click"
)

type AddToBasketRequest struct {
	ProductNo int `json:"product_no"`
}

// BasketProduct is one physical unit in the remote basket.
type BasketProduct struct {
	ProductNo int `json:"product_no"`
}

type DeleteAllBasketResponse struct {
	Message *string `json:"message,omitempty"`
	Detail  *string `json:"detail,omitempty"`
}

type FavoriteItem struct {
	ProductNo int `json:"product_no"`
}

type FavoriteActionResponse struct {
	Message   string `json:"message"`
	UserId    string `json:"user_id"`
	ProductNo int    `json:"product_no"`
}

type RecommendationResponse struct {
	Recommendations []int `json:"recommendations"`
}

type InteractionRequest struct {
	ProductNo       string          `json:"product_no"`
	InteractionType InteractionType `json:"interaction_type"`
}

type InteractionResponse struct {
	Message          string          `json:"message"`
	UserId           string          `json:"user_id"`
	ProductNo        int             `json:"product_no"`
	InteractionType  InteractionType `json:"interaction_type"`
	CalculatedWeight float64         `json:"calculated_weight"`
	DecayedScore     float64         `json:"decayed_score"`
}

type BulkInteractionRequest struct {
	ProductNos      []string        `json:"product_nos"`
	InteractionType InteractionType `json:"interaction_type"`
}

type BulkInteractionResponse struct {
	Message string `json:"message"`
	UserId  string `json:"user_id"`
	Count   int    `json:"count"`
}
