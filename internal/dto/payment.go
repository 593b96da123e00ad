package dto

type PaymentIntentRequestDTO struct {
	Amount float64 `json:"amount" example:"50"`
}

type PaymentIntentResponseDTO struct {
	ClientSecret string `json:"clientSecret"`
}
