package adoptionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/pawhub/pawhub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var requestRows = []string{"id", "pet_id", "pet_name", "pet_image", "pet_location", "owner_email", "requester_name", "requester_email", "requester_phone", "requester_address", "accepted", "created_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	req := &domain.AdoptionRequest{
		PetID:            1,
		PetName:          "Rex",
		PetImage:         "https://img.example.com/rex.png",
		PetLocation:      "Austin",
		OwnerEmail:       "alice@example.com",
		RequesterName:    "Bob",
		RequesterEmail:   "bob@example.com",
		RequesterPhone:   "555-0100",
		RequesterAddress: "12 Main St",
	}

	insertQuery := regexp.QuoteMeta(`
        INSERT INTO adoption_requests (pet_id, pet_name, pet_image, pet_location, owner_email, requester_name, requester_email, requester_phone, requester_address)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (pet_id) DO NOTHING
        RETURNING id
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		created   bool
	}{
		{
			name: "Request created",
			mockSetup: func() {
				mock.ExpectQuery(insertQuery).
					WithArgs(req.PetID, req.PetName, req.PetImage, req.PetLocation, req.OwnerEmail,
						req.RequesterName, req.RequesterEmail, req.RequesterPhone, req.RequesterAddress).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
			},
			expectErr: false,
			created:   true,
		},
		{
			name: "Duplicate request for the same pet",
			mockSetup: func() {
				mock.ExpectQuery(insertQuery).
					WithArgs(req.PetID, req.PetName, req.PetImage, req.PetLocation, req.OwnerEmail,
						req.RequesterName, req.RequesterEmail, req.RequesterPhone, req.RequesterAddress).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			created:   false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(insertQuery).
					WithArgs(req.PetID, req.PetName, req.PetImage, req.PetLocation, req.OwnerEmail,
						req.RequesterName, req.RequesterEmail, req.RequesterPhone, req.RequesterAddress).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			created:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), req)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.created, created)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.AdoptionRequest
	}{
		{
			name: "Request found",
			id:   7,
			mockSetup: func() {
				rows := pgxmock.NewRows(requestRows).
					AddRow(7, 1, "Rex", "", "Austin", "alice@example.com", "Bob", "bob@example.com", "555-0100", "12 Main St", false, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + requestColumns + " FROM adoption_requests WHERE id = $1")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.AdoptionRequest{
				ID: 7, PetID: 1, PetName: "Rex", PetLocation: "Austin",
				OwnerEmail: "alice@example.com", RequesterName: "Bob", RequesterEmail: "bob@example.com",
				RequesterPhone: "555-0100", RequesterAddress: "12 Main St", Accepted: false, CreatedAt: now,
			},
		},
		{
			name: "Request not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + requestColumns + " FROM adoption_requests WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByRequester(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(requestRows).
		AddRow(7, 1, "Rex", "", "Austin", "alice@example.com", "Bob", "bob@example.com", "", "", false, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + requestColumns + " FROM adoption_requests WHERE requester_email = $1 ORDER BY created_at DESC")).
		WithArgs("bob@example.com").
		WillReturnRows(rows)

	requests, err := repo.FindByRequester(context.Background(), "bob@example.com")
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, "bob@example.com", requests[0].RequesterEmail)
}

func TestRepository_FindByOwner(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(requestRows).
		AddRow(7, 1, "Rex", "", "Austin", "alice@example.com", "Bob", "bob@example.com", "", "", false, now).
		AddRow(8, 2, "Whiskers", "", "Dallas", "alice@example.com", "Carol", "carol@example.com", "", "", true, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + requestColumns + " FROM adoption_requests WHERE owner_email = $1 ORDER BY created_at DESC")).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	requests, err := repo.FindByOwner(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestRepository_Accept(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		matched   int64
	}{
		{
			name: "Request accepted",
			id:   7,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE adoption_requests
        SET accepted = TRUE
        WHERE id = $1
    `)).
					WithArgs(7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			matched:   1,
		},
		{
			name: "No such request",
			id:   99,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE adoption_requests
        SET accepted = TRUE
        WHERE id = $1
    `)).
					WithArgs(99).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			matched:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			matched, err := repo.Accept(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestRepository_DeleteByID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM adoption_requests WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	matched, err := repo.DeleteByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}
