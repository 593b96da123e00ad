package adoptions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/dto"
	"github.com/pawhub/pawhub/internal/service/adoptionservice"
	"github.com/pawhub/pawhub/pkg/auth"
	"github.com/pawhub/pawhub/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, requesterEmail string, req *domain.AdoptionRequest) (*domain.AdoptionRequest, bool, error)
	ListByRequester(ctx context.Context, email string) ([]domain.AdoptionRequest, error)
	ListByOwner(ctx context.Context, email string) ([]domain.AdoptionRequest, error)
	Accept(ctx context.Context, id int) (int64, error)
	Withdraw(ctx context.Context, id int) (int64, error)
}

type AdoptionHandler struct {
	adoptionService Service
}

func New(adoptionService Service) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionService: adoptionService,
	}
}

func requestResponse(req *domain.AdoptionRequest) dto.AdoptionResponseDTO {
	return dto.AdoptionResponseDTO{
		ID:               req.ID,
		PetID:            req.PetID,
		PetName:          req.PetName,
		PetImage:         req.PetImage,
		PetLocation:      req.PetLocation,
		OwnerEmail:       req.OwnerEmail,
		RequesterName:    req.RequesterName,
		RequesterEmail:   req.RequesterEmail,
		RequesterPhone:   req.RequesterPhone,
		RequesterAddress: req.RequesterAddress,
		Accepted:         req.Accepted,
		CreatedAt:        req.CreatedAt,
	}
}

// Submit godoc
//
//	@Summary		Submit an adoption request
//	@Description	A duplicate submission for the same pet reports isExist and inserts nothing
//	@Tags			Adoptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdoptionRequestDTO	true	"Adoption request payload"
//	@Success		200		{object}	dto.CreateAdoptionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Pet not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/adopt-request [post]
func (h *AdoptionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var req dto.AdoptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	request := &domain.AdoptionRequest{
		PetID:            req.PetID,
		RequesterName:    req.RequesterName,
		RequesterPhone:   req.RequesterPhone,
		RequesterAddress: req.RequesterAddress,
	}
	created, isExist, err := h.adoptionService.Submit(r.Context(), email, request)
	if err != nil {
		switch {
		case errors.Is(err, adoptionservice.ErrPetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if isExist {
		utils.RespondWithJSON(w, http.StatusOK, dto.CreateAdoptionResponseDTO{IsExist: true})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateAdoptionResponseDTO{IsExist: false, ID: created.ID})
}

// List godoc
//
//	@Summary		List adoption requests
//	@Description	Requests filed by the caller; with owner=true, requests against the caller's pets
//	@Tags			Adoptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			owner	query		bool	false	"List requests for pets owned by the caller"
//	@Success		200		{array}		dto.AdoptionResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/adopt-request [get]
func (h *AdoptionHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var requests []domain.AdoptionRequest
	var err error
	if owner, _ := strconv.ParseBool(r.URL.Query().Get("owner")); owner {
		requests, err = h.adoptionService.ListByOwner(r.Context(), email)
	} else {
		requests, err = h.adoptionService.ListByRequester(r.Context(), email)
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AdoptionResponseDTO, len(requests))
	for i := range requests {
		response[i] = requestResponse(&requests[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Accept godoc
//
//	@Summary		Accept an adoption request
//	@Description	Marks the request accepted and the pet adopted in one transaction
//	@Tags			Adoptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request id"
//	@Success		200	{object}	dto.MatchedResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/accept-adopt-req/{id} [put]
func (h *AdoptionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	matched, err := h.adoptionService.Accept(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

// Withdraw godoc
//
//	@Summary	Withdraw an adoption request
//	@Tags		Adoptions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Request id"
//	@Success	200	{object}	dto.MatchedResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/adopt-request/{id} [delete]
func (h *AdoptionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}
	matched, err := h.adoptionService.Withdraw(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}
