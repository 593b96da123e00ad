package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/dto"
	"github.com/pawhub/pawhub/pkg/auth"
	"github.com/pawhub/pawhub/pkg/utils"
)

type Service interface {
	EnsureUser(ctx context.Context, email, name, photoURL string) (bool, error)
	GenerateToken(email string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	MakeAdmin(ctx context.Context, email string) (int64, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// IssueToken godoc
//
//	@Summary		Issue a bearer token
//	@Description	Create the user record on first login and return a signed JWT for the email
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.IssueTokenRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.IssueTokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/jwt [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueTokenRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, err := h.authService.EnsureUser(r.Context(), req.Email, req.Name, req.PhotoURL); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(req.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	})
	utils.RespondWithJSON(w, http.StatusOK, dto.IssueTokenResponseDTO{
		Token: token,
	})
}

// CreateUser godoc
//
//	@Summary		Register a user
//	@Description	Create a user record; a duplicate email is a no-op, not an error
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"User payload"
//	@Success		200		{object}	dto.CreateUserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users [post]
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	inserted, err := h.authService.EnsureUser(r.Context(), req.Email, req.Name, req.PhotoURL)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	message := "User successfully registered"
	if !inserted {
		message = "User already exists"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateUserResponseDTO{
		Message:  message,
		Inserted: inserted,
	})
}

// ListUsers godoc
//
//	@Summary		List all users
//	@Description	Admin-only listing of every user record
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, len(users))
	for i, user := range users {
		response[i] = dto.UserResponseDTO{
			Email:    user.Email,
			Name:     user.Name,
			PhotoURL: user.PhotoURL,
			Role:     user.Role,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MakeAdmin godoc
//
//	@Summary		Elevate a user to admin
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			email	path		string	true	"User email"
//	@Success		200		{object}	dto.MatchedResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/admin/{email} [patch]
func (h *AuthHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	matched, err := h.authService.MakeAdmin(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

// CheckAdmin reports whether the authenticated caller holds the admin role.
// The path email must match the token identity.
//
//	@Summary	Check the caller's admin flag
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		email	path		string	true	"User email"
//	@Success	200		{object}	dto.AdminCheckResponseDTO
//	@Failure	401		{object}	utils.Response	"User not authorized"
//	@Failure	403		{object}	utils.Response	"Email does not match token"
//	@Router		/users/admin/{email} [get]
func (h *AuthHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	caller := r.Context().Value(auth.EmailKey).(string)
	if email != caller {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}
	admin, err := h.authService.IsAdmin(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminCheckResponseDTO{Admin: admin})
}
