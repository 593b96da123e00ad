package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/dto"
	"github.com/pawhub/pawhub/internal/service/donationservice"
	"github.com/pawhub/pawhub/pkg/auth"
	"github.com/pawhub/pawhub/pkg/utils"
)

type Service interface {
	CreateCampaign(ctx context.Context, ownerEmail string, campaign *domain.Campaign) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id int) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ListCampaignsByOwner(ctx context.Context, email string) ([]domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int, actor string, campaign *domain.Campaign) (int64, error)
	SetPaused(ctx context.Context, id int, actor string, paused bool) (int64, error)
	DeleteCampaign(ctx context.Context, id int, actor string) (int64, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

func campaignResponse(c *domain.Campaign) dto.CampaignResponseDTO {
	return dto.CampaignResponseDTO{
		ID:               c.ID,
		Name:             c.Name,
		OwnerEmail:       c.OwnerEmail,
		ImageURL:         c.ImageURL,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		MaxAmount:        c.MaxAmount,
		RaisedAmount:     c.RaisedAmount,
		LastDate:         c.LastDate,
		Paused:           c.Paused,
		Closed:           c.Closed,
		CreatedAt:        c.CreatedAt,
	}
}

func campaignFromRequest(req *dto.CampaignRequestDTO) *domain.Campaign {
	return &domain.Campaign{
		Name:             req.Name,
		ImageURL:         req.ImageURL,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		MaxAmount:        req.MaxAmount,
		LastDate:         req.LastDate,
	}
}

// CreateCampaign godoc
//
//	@Summary		Create a donation campaign
//	@Tags			Donations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CampaignRequestDTO	true	"Campaign payload"
//	@Success		200		{object}	dto.CampaignResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/create-donation-campaign [post]
func (h *DonationHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var req dto.CampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.donationService.CreateCampaign(r.Context(), email, campaignFromRequest(&req))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, campaignResponse(created))
}

// ListCampaigns godoc
//
//	@Summary		List donation campaigns
//	@Description	All campaigns, or only those owned by the given email
//	@Tags			Donations
//	@Produce		json
//	@Param			email	query		string	false	"Owner email filter"
//	@Success		200		{array}		dto.CampaignResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/donations [get]
func (h *DonationHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	var campaigns []domain.Campaign
	var err error
	if email := r.URL.Query().Get("email"); email != "" {
		campaigns, err = h.donationService.ListCampaignsByOwner(r.Context(), email)
	} else {
		campaigns, err = h.donationService.ListCampaigns(r.Context())
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CampaignResponseDTO, len(campaigns))
	for i := range campaigns {
		response[i] = campaignResponse(&campaigns[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCampaign returns the campaign or a JSON null when the id matches
// nothing.
//
//	@Summary	Get a single campaign
//	@Tags		Donations
//	@Produce	json
//	@Param		id	path		int	true	"Campaign id"
//	@Success	200	{object}	dto.CampaignResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Router		/donations/{id} [get]
func (h *DonationHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	campaign, err := h.donationService.GetCampaign(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if campaign == nil {
		utils.RespondWithJSON(w, http.StatusOK, (*dto.CampaignResponseDTO)(nil))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, campaignResponse(campaign))
}

// UpdateCampaign godoc
//
//	@Summary		Update a campaign
//	@Description	Owner or admin edit; a missing id reports matched zero instead of failing
//	@Tags			Donations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Campaign id"
//	@Param			request	body		dto.CampaignRequestDTO	true	"Campaign payload"
//	@Success		200		{object}	dto.MatchedResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/update-donation/{id} [put]
func (h *DonationHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	var req dto.CampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	matched, err := h.donationService.UpdateCampaign(r.Context(), id, email, campaignFromRequest(&req))
	if err != nil {
		h.respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

// SetStatus godoc
//
//	@Summary		Pause or resume a campaign
//	@Tags			Donations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Campaign id"
//	@Param			request	body		dto.CampaignStatusRequestDTO	true	"Status payload"
//	@Success		200		{object}	dto.MatchedResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/donation-status/{id} [put]
func (h *DonationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	var req dto.CampaignStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	matched, err := h.donationService.SetPaused(r.Context(), id, email, req.Paused)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

// DeleteCampaign godoc
//
//	@Summary	Delete a campaign
//	@Tags		Donations
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Campaign id"
//	@Success	200	{object}	dto.MatchedResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Router		/donations/{id} [delete]
func (h *DonationHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	matched, err := h.donationService.DeleteCampaign(r.Context(), id, email)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

func (h *DonationHandler) respondMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, donationservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
