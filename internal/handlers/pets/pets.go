package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/dto"
	petrepo "github.com/pawhub/pawhub/internal/repo/pet-repo"
	"github.com/pawhub/pawhub/internal/service/petservice"
	"github.com/pawhub/pawhub/pkg/auth"
	"github.com/pawhub/pawhub/pkg/utils"
)

type Service interface {
	AddPet(ctx context.Context, ownerEmail string, pet *domain.Pet) (*domain.Pet, error)
	GetPet(ctx context.Context, id int) (*domain.Pet, error)
	ListPets(ctx context.Context, filter petrepo.Filter) ([]domain.Pet, error)
	UpdatePet(ctx context.Context, id int, actor string, pet *domain.Pet) (int64, error)
	SetAdopted(ctx context.Context, id int, actor string, adopted bool) (int64, error)
	DeletePet(ctx context.Context, id int, actor string) (int64, error)
}

type PetHandler struct {
	petService Service
}

func New(petService Service) *PetHandler {
	return &PetHandler{
		petService: petService,
	}
}

func petResponse(pet *domain.Pet) dto.PetResponseDTO {
	return dto.PetResponseDTO{
		ID:               pet.ID,
		Name:             pet.Name,
		Age:              pet.Age,
		OwnerEmail:       pet.OwnerEmail,
		Category:         pet.Category,
		Location:         pet.Location,
		ShortDescription: pet.ShortDescription,
		LongDescription:  pet.LongDescription,
		ImageURL:         pet.ImageURL,
		Adopted:          pet.Adopted,
		CreatedAt:        pet.CreatedAt,
	}
}

// AddPet godoc
//
//	@Summary		Add a new pet
//	@Tags			Pets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PetRequestDTO	true	"Pet payload"
//	@Success		200		{object}	dto.PetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/pets [post]
func (h *PetHandler) AddPet(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var req dto.PetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	pet := &domain.Pet{
		Name:             req.Name,
		Age:              req.Age,
		Category:         req.Category,
		Location:         req.Location,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		ImageURL:         req.ImageURL,
	}
	created, err := h.petService.AddPet(r.Context(), email, pet)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, petResponse(created))
}

// ListPets godoc
//
//	@Summary		List pets
//	@Description	Pets filterable by category, location, owner and adopted flag
//	@Tags			Pets
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Param			location	query		string	false	"Location filter"
//	@Param			owner		query		string	false	"Owner email filter"
//	@Param			adopted		query		bool	false	"Adopted flag filter"
//	@Success		200			{array}		dto.PetResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/pets [get]
func (h *PetHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	filter := petrepo.Filter{
		Category:   r.URL.Query().Get("category"),
		Location:   r.URL.Query().Get("location"),
		OwnerEmail: r.URL.Query().Get("owner"),
	}
	if raw := r.URL.Query().Get("adopted"); raw != "" {
		adopted, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid adopted filter")
			return
		}
		filter.Adopted = &adopted
	}

	pets, err := h.petService.ListPets(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PetResponseDTO, len(pets))
	for i := range pets {
		response[i] = petResponse(&pets[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPet returns the pet or a JSON null when the id matches nothing.
//
//	@Summary	Get a single pet
//	@Tags		Pets
//	@Produce	json
//	@Param		id	path		int	true	"Pet id"
//	@Success	200	{object}	dto.PetResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Router		/pets/{id} [get]
func (h *PetHandler) GetPet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pet id")
		return
	}
	pet, err := h.petService.GetPet(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if pet == nil {
		utils.RespondWithJSON(w, http.StatusOK, (*dto.PetResponseDTO)(nil))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, petResponse(pet))
}

// UpdatePet godoc
//
//	@Summary		Update a pet
//	@Description	Owner or admin edit; a missing id reports matched zero instead of failing
//	@Tags			Pets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Pet id"
//	@Param			request	body		dto.PetRequestDTO	true	"Pet payload"
//	@Success		200		{object}	dto.MatchedResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/pets/{id} [put]
func (h *PetHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pet id")
		return
	}
	var req dto.PetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	pet := &domain.Pet{
		Name:             req.Name,
		Age:              req.Age,
		Category:         req.Category,
		Location:         req.Location,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		ImageURL:         req.ImageURL,
	}
	matched, err := h.petService.UpdatePet(r.Context(), id, email, pet)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

// ToggleAdopted godoc
//
//	@Summary	Toggle the adopted flag
//	@Tags		Pets
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Pet id"
//	@Success	200	{object}	dto.MatchedResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Router		/pets/adopt/{id} [patch]
func (h *PetHandler) ToggleAdopted(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pet id")
		return
	}
	var req struct {
		Adopted bool `json:"adopted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	matched, err := h.petService.SetAdopted(r.Context(), id, email, req.Adopted)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

// DeletePet godoc
//
//	@Summary	Delete a pet
//	@Tags		Pets
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Pet id"
//	@Success	200	{object}	dto.MatchedResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Router		/pets/{id} [delete]
func (h *PetHandler) DeletePet(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pet id")
		return
	}
	matched, err := h.petService.DeletePet(r.Context(), id, email)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

func (h *PetHandler) respondMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, petservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
