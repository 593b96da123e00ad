package dto

// MatchedResponseDTO reports how many documents an update or delete touched.
// A zero count on a missing id is a valid outcome, not an error.
type MatchedResponseDTO struct {
	Matched int64 `json:"matched" example:"1"`
}
