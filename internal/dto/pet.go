package dto

import "time"

type PetRequestDTO struct {
	Name             string `json:"name" validate:"required"`
	Age              int    `json:"age"`
	Category         string `json:"category"`
	Location         string `json:"location"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	ImageURL         string `json:"image"`
}

type PetResponseDTO struct {
	ID               int       `json:"id" example:"1"`
	Name             string    `json:"name" example:"Bella"`
	Age              int       `json:"age" example:"3"`
	OwnerEmail       string    `json:"ownerEmail"`
	Category         string    `json:"category" example:"dog"`
	Location         string    `json:"location" example:"Austin"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	ImageURL         string    `json:"image"`
	Adopted          bool      `json:"adopted"`
	CreatedAt        time.Time `json:"createdAt"`
}
