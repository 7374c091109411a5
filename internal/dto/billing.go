package dto

type CheckoutItemDTO struct {
	PriceID  string `json:"priceId" example:"price_10_credits"`
	Quantity int64  `json:"quantity" example:"1"`
}

type CheckoutRequestDTO struct {
	Items []CheckoutItemDTO `json:"items"`
}

type CheckoutResponseDTO struct {
	URL string `json:"url"`
}
