package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/pawhub/pawhub/internal/config"
	"github.com/pawhub/pawhub/pkg/clients"
)

const paymentIntentsURL = "https://api.stripe.com/v1/payment_intents"

var ErrInvalidAmount = errors.New("invalid payment amount")

// Service is a thin pass-through to the payment provider. It creates a
// payment intent and surfaces only the client secret the browser needs to
// finish the payment; the provider's transaction lifecycle stays external.
type Service struct {
	url       string
	secretKey string
	client    clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:       paymentIntentsURL,
		secretKey: cfg.StripeSecret,
		client:    client,
	}
}

// SetURL points the adapter at a different provider endpoint, used by tests.
func (s *Service) SetURL(url string) {
	s.url = url
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Service) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", ErrInvalidAmount
	}
	// The provider expects minor currency units.
	amountInCents := int64(math.Round(amount * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountInCents, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+s.secretKey)

	statusCode, respBody, err := s.client.PostForm(ctx, s.url, headers, form)
	if err != nil {
		zap.L().Error("payment provider request failed", zap.Error(err))
		return "", err
	}

	var resp intentResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse provider response: %w", err)
	}

	if statusCode != http.StatusOK {
		zap.L().Error("payment provider rejected the request",
			zap.Int("status", statusCode),
			zap.String("message", resp.Error.Message),
		)
		return "", fmt.Errorf("payment provider returned status %d", statusCode)
	}
	if resp.ClientSecret == "" {
		return "", errors.New("provider response missing client secret")
	}

	return resp.ClientSecret, nil
}
