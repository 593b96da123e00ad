package dto

type IssueTokenRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

type IssueTokenResponseDTO struct {
	Token string `json:"token"`
}

type CreateUserRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

type CreateUserResponseDTO struct {
	Message  string `json:"message"`
	Inserted bool   `json:"inserted"`
}

type UserResponseDTO struct {
	Email    string `json:"email" example:"jane@example.com"`
	Name     string `json:"name" example:"Jane"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role" example:"user"`
}

type AdminCheckResponseDTO struct {
	Admin bool `json:"admin"`
}
