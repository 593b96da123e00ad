package pets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/dto"
	petrepo "github.com/pawhub/pawhub/internal/repo/pet-repo"
	"github.com/pawhub/pawhub/internal/service/petservice"
	"github.com/pawhub/pawhub/pkg/auth"
)

func NewMock(t *testing.T) (*PetHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestAddPetHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.PetResponseDTO
	}{
		{
			name: "Successful creation",
			body: `{"name":"Bella","age":3,"category":"dog","location":"Austin","shortDescription":"friendly","image":"https://img.example.com/bella.png"}`,
			prepareMock: func() {
				service.EXPECT().
					AddPet(
						context.WithValue(context.Background(), auth.EmailKey, "alice@example.com"),
						"alice@example.com",
						&domain.Pet{
							Name:             "Bella",
							Age:              3,
							Category:         "dog",
							Location:         "Austin",
							ShortDescription: "friendly",
							ImageURL:         "https://img.example.com/bella.png",
						},
					).
					Return(&domain.Pet{
						ID:               1,
						Name:             "Bella",
						Age:              3,
						OwnerEmail:       "alice@example.com",
						Category:         "dog",
						Location:         "Austin",
						ShortDescription: "friendly",
						ImageURL:         "https://img.example.com/bella.png",
						CreatedAt:        now,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PetResponseDTO{
				ID:               1,
				Name:             "Bella",
				Age:              3,
				OwnerEmail:       "alice@example.com",
				Category:         "dog",
				Location:         "Austin",
				ShortDescription: "friendly",
				ImageURL:         "https://img.example.com/bella.png",
				CreatedAt:        now,
			},
		},
		{
			name:          "Invalid request body",
			body:          `{"name":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"name":"Bella"}`,
			prepareMock: func() {
				service.EXPECT().
					AddPet(gomock.Any(), "alice@example.com", gomock.Any()).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/pets", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.EmailKey, "alice@example.com"))
			w := httptest.NewRecorder()

			handler.AddPet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PetResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody.ID, body.ID)
				assert.Equal(t, tt.expectedBody.Name, body.Name)
				assert.Equal(t, tt.expectedBody.OwnerEmail, body.OwnerEmail)
			}
		})
	}
}

func TestListPetsHandler(t *testing.T) {
	handler, service := NewMock(t)
	adopted := false

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name:   "No filters",
			target: "/pets",
			prepareMock: func() {
				service.EXPECT().
					ListPets(context.Background(), petrepo.Filter{}).
					Return([]domain.Pet{
						{ID: 1, Name: "Bella", Age: 3},
						{ID: 2, Name: "Milo", Age: 1},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "All filters",
			target: "/pets?category=dog&location=Austin&owner=alice@example.com&adopted=false",
			prepareMock: func() {
				service.EXPECT().
					ListPets(context.Background(), petrepo.Filter{
						Category:   "dog",
						Location:   "Austin",
						OwnerEmail: "alice@example.com",
						Adopted:    &adopted,
					}).
					Return([]domain.Pet{{ID: 1, Name: "Bella", Age: 3}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:          "Invalid adopted filter",
			target:        "/pets?adopted=maybe",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid adopted filter",
		},
		{
			name:   "Internal server error",
			target: "/pets",
			prepareMock: func() {
				service.EXPECT().
					ListPets(context.Background(), petrepo.Filter{}).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ListPets(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.PetResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetPetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  string
	}{
		{
			name: "Successful retrieval",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().
					GetPet(gomock.Any(), 1).
					Return(&domain.Pet{ID: 1, Name: "Bella", Age: 3}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"name":"Bella"`,
		},
		{
			name: "Unknown id returns null",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().
					GetPet(gomock.Any(), 99).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "null",
		},
		{
			name:          "Invalid id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid pet id",
		},
		{
			name: "Internal server error",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().
					GetPet(gomock.Any(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			r := httptest.NewRequest(http.MethodGet, "/pets/"+tt.id, nil)
			r = r.WithContext(context.WithValue(context.Background(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.GetPet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestUpdatePetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.MatchedResponseDTO
	}{
		{
			name: "Successful update",
			id:   "1",
			body: `{"name":"Bella","age":4}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePet(gomock.Any(), 1, "alice@example.com", &domain.Pet{Name: "Bella", Age: 4}).
					Return(int64(1), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.MatchedResponseDTO{Matched: 1},
		},
		{
			name: "Unknown id matches nothing",
			id:   "99",
			body: `{"name":"Bella"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePet(gomock.Any(), 99, "alice@example.com", gomock.Any()).
					Return(int64(0), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.MatchedResponseDTO{Matched: 0},
		},
		{
			name:          "Invalid id",
			id:            "abc",
			body:          `{"name":"Bella"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid pet id",
		},
		{
			name:          "Invalid request body",
			id:            "1",
			body:          `{"name":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Caller is not the owner",
			id:   "1",
			body: `{"name":"Bella"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePet(gomock.Any(), 1, "alice@example.com", gomock.Any()).
					Return(int64(0), petservice.ErrNotOwner)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "not the pet owner",
		},
		{
			name: "Internal server error",
			id:   "1",
			body: `{"name":"Bella"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdatePet(gomock.Any(), 1, "alice@example.com", gomock.Any()).
					Return(int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(context.Background(), auth.EmailKey, "alice@example.com")
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
			r := httptest.NewRequest(http.MethodPut, "/pets/"+tt.id, bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.UpdatePet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.MatchedResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestToggleAdoptedHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.MatchedResponseDTO
	}{
		{
			name: "Mark adopted",
			id:   "1",
			body: `{"adopted":true}`,
			prepareMock: func() {
				service.EXPECT().
					SetAdopted(gomock.Any(), 1, "alice@example.com", true).
					Return(int64(1), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.MatchedResponseDTO{Matched: 1},
		},
		{
			name:          "Invalid id",
			id:            "abc",
			body:          `{"adopted":true}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid pet id",
		},
		{
			name:          "Invalid request body",
			id:            "1",
			body:          `{"adopted":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Caller is not the owner",
			id:   "1",
			body: `{"adopted":true}`,
			prepareMock: func() {
				service.EXPECT().
					SetAdopted(gomock.Any(), 1, "alice@example.com", true).
					Return(int64(0), petservice.ErrNotOwner)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "not the pet owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(context.Background(), auth.EmailKey, "alice@example.com")
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
			r := httptest.NewRequest(http.MethodPatch, "/pets/adopt/"+tt.id, bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ToggleAdopted(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.MatchedResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestDeletePetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.MatchedResponseDTO
	}{
		{
			name: "Successful deletion",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().
					DeletePet(gomock.Any(), 1, "alice@example.com").
					Return(int64(1), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.MatchedResponseDTO{Matched: 1},
		},
		{
			name:          "Invalid id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid pet id",
		},
		{
			name: "Caller is not the owner",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().
					DeletePet(gomock.Any(), 1, "alice@example.com").
					Return(int64(0), petservice.ErrNotOwner)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "not the pet owner",
		},
		{
			name: "Internal server error",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().
					DeletePet(gomock.Any(), 1, "alice@example.com").
					Return(int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(context.Background(), auth.EmailKey, "alice@example.com")
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
			r := httptest.NewRequest(http.MethodDelete, "/pets/"+tt.id, nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.DeletePet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.MatchedResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
