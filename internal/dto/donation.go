package dto

import "time"

type CampaignRequestDTO struct {
	Name             string    `json:"name" validate:"required"`
	ImageURL         string    `json:"image"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	MaxAmount        float64   `json:"maxDonationAmount" example:"500"`
	LastDate         time.Time `json:"lastDate"`
}

type CampaignResponseDTO struct {
	ID               int       `json:"id" example:"1"`
	Name             string    `json:"name"`
	OwnerEmail       string    `json:"email"`
	ImageURL         string    `json:"image"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	MaxAmount        float64   `json:"maxDonationAmount" example:"500"`
	RaisedAmount     float64   `json:"getDonationAmount" example:"75"`
	LastDate         time.Time `json:"lastDate"`
	Paused           bool      `json:"pause"`
	Closed           bool      `json:"isClose"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CampaignStatusRequestDTO struct {
	Paused bool `json:"pause"`
}

// ContributeRequestDTO carries the amount as a string because the clients
// submit free-form input. It is parsed and validated server side.
type ContributeRequestDTO struct {
	CampaignID int    `json:"petId" validate:"required"`
	Amount     string `json:"donationAmount" example:"50"`
	DonorName  string `json:"donorName"`
}

type DonationResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	CampaignID int       `json:"petId" example:"3"`
	DonorEmail string    `json:"donorEmail"`
	DonorName  string    `json:"donorName"`
	Amount     float64   `json:"donationAmount" example:"50"`
	Refunded   bool      `json:"refund"`
	CreatedAt  time.Time `json:"createdAt"`
}
