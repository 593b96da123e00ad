package dto

import "time"

type AdoptionRequestDTO struct {
	PetID            int    `json:"petId" validate:"required"`
	PetName          string `json:"petName"`
	PetImage         string `json:"petImage"`
	PetLocation      string `json:"petLocation"`
	OwnerEmail       string `json:"ownerEmail"`
	RequesterName    string `json:"requesterName"`
	RequesterPhone   string `json:"requesterPhone"`
	RequesterAddress string `json:"requesterAddress"`
}

// CreateAdoptionResponseDTO reports the duplicate-submission case with
// isExist instead of an error status.
type CreateAdoptionResponseDTO struct {
	IsExist bool `json:"isExist"`
	ID      int  `json:"id,omitempty"`
}

type AdoptionResponseDTO struct {
	ID               int       `json:"id" example:"1"`
	PetID            int       `json:"petId" example:"7"`
	PetName          string    `json:"petName"`
	PetImage         string    `json:"petImage"`
	PetLocation      string    `json:"petLocation"`
	OwnerEmail       string    `json:"ownerEmail"`
	RequesterName    string    `json:"requesterName"`
	RequesterEmail   string    `json:"requesterEmail"`
	RequesterPhone   string    `json:"requesterPhone"`
	RequesterAddress string    `json:"requesterAddress"`
	Accepted         bool      `json:"accepted"`
	CreatedAt        time.Time `json:"createdAt"`
}
