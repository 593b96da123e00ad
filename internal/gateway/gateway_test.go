package gateway

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawhub/pawhub/internal/config"
	"github.com/pawhub/pawhub/pkg/clients"
)

func NewTestService(t *testing.T, handler http.HandlerFunc) *Service {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{StripeSecret: "sk_test_123"}
	service := New(cfg, clients.NewHTTPClient())
	service.SetURL(server.URL)
	return service
}

func TestCreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name           string
		amount         float64
		handler        http.HandlerFunc
		expectedSecret string
		expectedError  string
	}{
		{
			name:   "Successful intent creation",
			amount: 25.5,
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
				assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "2550", r.FormValue("amount"))
				assert.Equal(t, "usd", r.FormValue("currency"))
				assert.Equal(t, "card", r.FormValue("payment_method_types[]"))

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456"}`))
			},
			expectedSecret: "pi_123_secret_456",
		},
		{
			name:   "Amount is rounded to cents",
			amount: 10.004,
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "1000", r.FormValue("amount"))

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"client_secret":"pi_124_secret_789"}`))
			},
			expectedSecret: "pi_124_secret_789",
		},
		{
			name:          "Zero amount",
			amount:        0,
			expectedError: "invalid payment amount",
		},
		{
			name:          "Negative amount",
			amount:        -5,
			expectedError: "invalid payment amount",
		},
		{
			name:          "NaN amount",
			amount:        math.NaN(),
			expectedError: "invalid payment amount",
		},
		{
			name:   "Provider rejects the request",
			amount: 25.5,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
				_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
			},
			expectedError: "payment provider returned status 402",
		},
		{
			name:   "Provider response missing client secret",
			amount: 25.5,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"id":"pi_123"}`))
			},
			expectedError: "provider response missing client secret",
		},
		{
			name:   "Malformed provider response",
			amount: 25.5,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`not json`))
			},
			expectedError: "failed to parse provider response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := tt.handler
			if handler == nil {
				handler = func(w http.ResponseWriter, r *http.Request) {
					t.Error("provider must not be called")
				}
			}
			service := NewTestService(t, handler)

			secret, err := service.CreatePaymentIntent(context.Background(), tt.amount)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Empty(t, secret)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedSecret, secret)
			}
		})
	}
}

func TestCreatePaymentIntentRequestFailure(t *testing.T) {
	cfg := &config.Config{StripeSecret: "sk_test_123"}
	service := New(cfg, clients.NewHTTPClient())
	service.SetURL("http://127.0.0.1:0")

	secret, err := service.CreatePaymentIntent(context.Background(), 25.5)

	assert.Error(t, err)
	assert.Empty(t, secret)
}
