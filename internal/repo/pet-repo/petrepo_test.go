package petrepo

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

var petRows = []string{"id", "name", "age", "owner_email", "category", "location", "short_description", "long_description", "image_url", "adopted", "created_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	pet := &domain.Pet{
		Name:             "Rex",
		Age:              2,
		OwnerEmail:       "alice@example.com",
		Category:         "dog",
		Location:         "Austin",
		ShortDescription: "Friendly shepherd",
		LongDescription:  "Likes long walks.",
		ImageURL:         "https://img.example.com/rex.png",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create pet successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO pets (name, age, owner_email, category, location, short_description, long_description, image_url, adopted)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
        RETURNING id, created_at
    `)).
					WithArgs(pet.Name, pet.Age, pet.OwnerEmail, pet.Category, pet.Location,
						pet.ShortDescription, pet.LongDescription, pet.ImageURL).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO pets (name, age, owner_email, category, location, short_description, long_description, image_url, adopted)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
        RETURNING id, created_at
    `)).
					WithArgs(pet.Name, pet.Age, pet.OwnerEmail, pet.Category, pet.Location,
						pet.ShortDescription, pet.LongDescription, pet.ImageURL).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), pet)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
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
		result    *domain.Pet
	}{
		{
			name: "Pet found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(petRows).
					AddRow(1, "Rex", 2, "alice@example.com", "dog", "Austin", "Friendly", "Long text", "", false, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + petColumns + " FROM pets WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Pet{
				ID: 1, Name: "Rex", Age: 2, OwnerEmail: "alice@example.com",
				Category: "dog", Location: "Austin", ShortDescription: "Friendly",
				LongDescription: "Long text", Adopted: false, CreatedAt: now,
			},
		},
		{
			name: "Pet not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + petColumns + " FROM pets WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + petColumns + " FROM pets WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
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

func TestRepository_FindMany(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	adopted := false

	tests := []struct {
		name      string
		filter    Filter
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name:   "No filters",
			filter: Filter{},
			mockSetup: func() {
				rows := pgxmock.NewRows(petRows).
					AddRow(1, "Rex", 2, "alice@example.com", "dog", "Austin", "", "", "", false, now).
					AddRow(2, "Whiskers", 1, "bob@example.com", "cat", "Dallas", "", "", "", true, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + petColumns + " FROM pets WHERE 1=1 ORDER BY created_at DESC")).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name:   "All filters",
			filter: Filter{Category: "dog", Location: "Austin", OwnerEmail: "alice@example.com", Adopted: &adopted},
			mockSetup: func() {
				rows := pgxmock.NewRows(petRows).
					AddRow(1, "Rex", 2, "alice@example.com", "dog", "Austin", "", "", "", false, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + petColumns + " FROM pets WHERE 1=1 AND category = $1 AND location = $2 AND owner_email = $3 AND adopted = $4 ORDER BY created_at DESC")).
					WithArgs("dog", "Austin", "alice@example.com", false).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     1,
		},
		{
			name:   "Database error",
			filter: Filter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + petColumns + " FROM pets WHERE 1=1 ORDER BY created_at DESC")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindMany(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_UpdateByID(t *testing.T) {
	repo, mock := NewMock(t)

	pet := &domain.Pet{
		Name: "Rex", Age: 3, Category: "dog", Location: "Austin",
		ShortDescription: "Updated", LongDescription: "Updated text", ImageURL: "",
	}

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		matched   int64
	}{
		{
			name: "Pet updated",
			id:   1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE pets
        SET name = $1, age = $2, category = $3, location = $4, short_description = $5, long_description = $6, image_url = $7
        WHERE id = $8
    `)).
					WithArgs(pet.Name, pet.Age, pet.Category, pet.Location,
						pet.ShortDescription, pet.LongDescription, pet.ImageURL, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			matched:   1,
		},
		{
			name: "No such pet",
			id:   99,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE pets
        SET name = $1, age = $2, category = $3, location = $4, short_description = $5, long_description = $6, image_url = $7
        WHERE id = $8
    `)).
					WithArgs(pet.Name, pet.Age, pet.Category, pet.Location,
						pet.ShortDescription, pet.LongDescription, pet.ImageURL, 99).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			matched:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			matched, err := repo.UpdateByID(context.Background(), tt.id, pet)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestRepository_SetAdopted(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE pets
        SET adopted = $1
        WHERE id = $2
    `)).
		WithArgs(true, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	matched, err := repo.SetAdopted(context.Background(), 1, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}

func TestRepository_DeleteByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		matched   int64
	}{
		{
			name: "Pet deleted",
			id:   1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pets WHERE id = $1")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
			matched:   1,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pets WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			matched:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			matched, err := repo.DeleteByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.matched, matched)
		})
	}
}
