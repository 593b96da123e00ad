package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/dto"
	"github.com/pawhub/pawhub/internal/gateway"
	"github.com/pawhub/pawhub/internal/service/donationservice"
	"github.com/pawhub/pawhub/pkg/auth"
	"github.com/pawhub/pawhub/pkg/utils"
)

type Service interface {
	Contribute(ctx context.Context, donorEmail, donorName string, campaignID int, rawAmount string) (*domain.Donation, error)
	Refund(ctx context.Context, id int, actor string) (int64, error)
	DonationsByDonor(ctx context.Context, email string) ([]domain.Donation, error)
}

type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amount float64) (string, error)
}

type PaymentHandler struct {
	donationService Service
	gateway         Gateway
}

func New(donationService Service, gateway Gateway) *PaymentHandler {
	return &PaymentHandler{
		donationService: donationService,
		gateway:         gateway,
	}
}

func donationResponse(d *domain.Donation) dto.DonationResponseDTO {
	return dto.DonationResponseDTO{
		ID:         d.ID,
		CampaignID: d.CampaignID,
		DonorEmail: d.DonorEmail,
		DonorName:  d.DonorName,
		Amount:     d.Amount,
		Refunded:   d.Refunded,
		CreatedAt:  d.CreatedAt,
	}
}

// Contribute godoc
//
//	@Summary		Record a donation
//	@Description	Appends a ledger entry and advances the campaign total in one transaction
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ContributeRequestDTO	true	"Contribution payload"
//	@Success		200		{object}	dto.DonationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request or amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Failure		409		{object}	utils.Response	"Campaign closed, paused or funded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/payments [post]
func (h *PaymentHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	var req dto.ContributeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	donation, err := h.donationService.Contribute(r.Context(), email, req.DonorName, req.CampaignID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, donationservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrCampaignClosed),
			errors.Is(err, donationservice.ErrCampaignPaused),
			errors.Is(err, donationservice.ErrCampaignFunded):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, donationResponse(donation))
}

// Refund godoc
//
//	@Summary		Refund a donation
//	@Description	Marks the ledger entry refunded and reverses the campaign total
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Donation id"
//	@Success		200	{object}	dto.MatchedResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the donor"
//	@Failure		404	{object}	utils.Response	"Donation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/payments/refund/{id} [patch]
func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid donation id")
		return
	}
	matched, err := h.donationService.Refund(r.Context(), id, email)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrDonationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, donationservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MatchedResponseDTO{Matched: matched})
}

// MyDonations godoc
//
//	@Summary	List the caller's donations
//	@Tags		Payments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.DonationResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/my-donations [get]
func (h *PaymentHandler) MyDonations(w http.ResponseWriter, r *http.Request) {
	email := r.Context().Value(auth.EmailKey).(string)

	donations, err := h.donationService.DonationsByDonor(r.Context(), email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DonationResponseDTO, len(donations))
	for i := range donations {
		response[i] = donationResponse(&donations[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreatePaymentIntent godoc
//
//	@Summary		Create a payment intent at the provider
//	@Description	Returns only the client secret needed to finish the payment client side
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentIntentRequestDTO	true	"Amount in major units"
//	@Success		200		{object}	dto.PaymentIntentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Provider error"
//	@Router			/create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentIntentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	clientSecret, err := h.gateway.CreatePaymentIntent(r.Context(), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment intent")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentIntentResponseDTO{ClientSecret: clientSecret})
}
