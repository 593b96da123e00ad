package domain

import "time"

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"
)

type User struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	PhotoURL  string    `db:"photo_url"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Pet struct {
	ID               int       `db:"id"`
	Name             string    `db:"name"`
	Age              int       `db:"age"`
	OwnerEmail       string    `db:"owner_email"`
	Category         string    `db:"category"`
	Location         string    `db:"location"`
	ShortDescription string    `db:"short_description"`
	LongDescription  string    `db:"long_description"`
	ImageURL         string    `db:"image_url"`
	Adopted          bool      `db:"adopted"`
	CreatedAt        time.Time `db:"created_at"`
}

type AdoptionRequest struct {
	ID               int       `db:"id"`
	PetID            int       `db:"pet_id"`
	PetName          string    `db:"pet_name"`
	PetImage         string    `db:"pet_image"`
	PetLocation      string    `db:"pet_location"`
	OwnerEmail       string    `db:"owner_email"`
	RequesterName    string    `db:"requester_name"`
	RequesterEmail   string    `db:"requester_email"`
	RequesterPhone   string    `db:"requester_phone"`
	RequesterAddress string    `db:"requester_address"`
	Accepted         bool      `db:"accepted"`
	CreatedAt        time.Time `db:"created_at"`
}

type Campaign struct {
	ID               int       `db:"id"`
	Name             string    `db:"name"`
	OwnerEmail       string    `db:"owner_email"`
	ImageURL         string    `db:"image_url"`
	ShortDescription string    `db:"short_description"`
	LongDescription  string    `db:"long_description"`
	MaxAmount        float64   `db:"max_amount"`
	RaisedAmount     float64   `db:"raised_amount"`
	LastDate         time.Time `db:"last_date"`
	Paused           bool      `db:"paused"`
	Closed           bool      `db:"closed"`
	CreatedAt        time.Time `db:"created_at"`
}

type Donation struct {
	ID         int       `db:"id"`
	CampaignID int       `db:"campaign_id"`
	DonorEmail string    `db:"donor_email"`
	DonorName  string    `db:"donor_name"`
	Amount     float64   `db:"amount"`
	Refunded   bool      `db:"refunded"`
	CreatedAt  time.Time `db:"created_at"`
}
