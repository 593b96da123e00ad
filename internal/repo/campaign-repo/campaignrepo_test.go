package campaignrepo

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

var campaignRows = []string{"id", "name", "owner_email", "image_url", "short_description", "long_description", "max_amount", "raised_amount", "last_date", "paused", "closed", "created_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	lastDate := now.AddDate(0, 1, 0)

	campaign := &domain.Campaign{
		Name:             "Vet bills for Rex",
		OwnerEmail:       "alice@example.com",
		ImageURL:         "https://img.example.com/rex.png",
		ShortDescription: "Surgery fund",
		LongDescription:  "Rex needs knee surgery.",
		MaxAmount:        500,
		LastDate:         lastDate,
	}

	insertQuery := regexp.QuoteMeta(`
        INSERT INTO campaigns (name, owner_email, image_url, short_description, long_description, max_amount, raised_amount, last_date)
        VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
        RETURNING id, created_at
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Campaign created",
			mockSetup: func() {
				mock.ExpectQuery(insertQuery).
					WithArgs(campaign.Name, campaign.OwnerEmail, campaign.ImageURL,
						campaign.ShortDescription, campaign.LongDescription, campaign.MaxAmount, campaign.LastDate).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(insertQuery).
					WithArgs(campaign.Name, campaign.OwnerEmail, campaign.ImageURL,
						campaign.ShortDescription, campaign.LongDescription, campaign.MaxAmount, campaign.LastDate).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), campaign)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, result.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	lastDate := now.AddDate(0, 1, 0)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Campaign
	}{
		{
			name: "Campaign found",
			id:   3,
			mockSetup: func() {
				rows := pgxmock.NewRows(campaignRows).
					AddRow(3, "Vet bills", "alice@example.com", "", "Surgery", "Long text", 500.0, 120.0, lastDate, false, false, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + campaignColumns + " FROM campaigns WHERE id = $1")).
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Campaign{
				ID: 3, Name: "Vet bills", OwnerEmail: "alice@example.com",
				ShortDescription: "Surgery", LongDescription: "Long text",
				MaxAmount: 500, RaisedAmount: 120, LastDate: lastDate, CreatedAt: now,
			},
		},
		{
			name: "Campaign not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + campaignColumns + " FROM campaigns WHERE id = $1")).
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

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(campaignRows).
		AddRow(3, "Vet bills", "alice@example.com", "", "", "", 500.0, 120.0, now, false, false, now).
		AddRow(4, "Shelter roof", "bob@example.com", "", "", "", 2000.0, 0.0, now, false, false, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + campaignColumns + " FROM campaigns ORDER BY created_at DESC")).
		WillReturnRows(rows)

	campaigns, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, campaigns, 2)
}

func TestRepository_FindByOwner(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(campaignRows).
		AddRow(3, "Vet bills", "alice@example.com", "", "", "", 500.0, 120.0, now, false, false, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + campaignColumns + " FROM campaigns WHERE owner_email = $1 ORDER BY created_at DESC")).
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	campaigns, err := repo.FindByOwner(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Len(t, campaigns, 1)
	assert.Equal(t, "alice@example.com", campaigns[0].OwnerEmail)
}

func TestRepository_FindExpiredOpen(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	lastDate := now.AddDate(0, 0, -1)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Expired campaigns found",
			mockSetup: func() {
				rows := pgxmock.NewRows(campaignRows).
					AddRow(3, "Vet bills", "alice@example.com", "", "", "", 500.0, 120.0, lastDate, false, false, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + campaignColumns + " FROM campaigns WHERE closed = FALSE AND last_date < $1 ORDER BY last_date ASC LIMIT $2")).
					WithArgs(now, 1000).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT " + campaignColumns + " FROM campaigns WHERE closed = FALSE AND last_date < $1 ORDER BY last_date ASC LIMIT $2")).
					WithArgs(now, 1000).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			campaigns, err := repo.FindExpiredOpen(context.Background(), now, 1000)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, campaigns, tt.count)
			}
		})
	}
}

func TestRepository_UpdateByID(t *testing.T) {
	repo, mock := NewMock(t)
	lastDate := time.Now().AddDate(0, 2, 0)

	campaign := &domain.Campaign{
		Name: "Vet bills for Rex", ImageURL: "", ShortDescription: "Updated",
		LongDescription: "Updated text", MaxAmount: 800, LastDate: lastDate,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE campaigns
        SET name = $1, image_url = $2, short_description = $3, long_description = $4, max_amount = $5, last_date = $6
        WHERE id = $7
    `)).
		WithArgs(campaign.Name, campaign.ImageURL, campaign.ShortDescription,
			campaign.LongDescription, campaign.MaxAmount, campaign.LastDate, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	matched, err := repo.UpdateByID(context.Background(), 3, campaign)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}

func TestRepository_SetPaused(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE campaigns
        SET paused = $1
        WHERE id = $2
    `)).
		WithArgs(true, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	matched, err := repo.SetPaused(context.Background(), 3, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}

func TestRepository_AddToRaised(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		delta     float64
		mockSetup func()
		expectErr bool
		matched   int64
	}{
		{
			name:  "Contribution added",
			delta: 25.5,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE campaigns
        SET raised_amount = raised_amount + $1
        WHERE id = $2
    `)).
					WithArgs(25.5, 3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			matched:   1,
		},
		{
			name:  "Refund subtracted",
			delta: -25.5,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE campaigns
        SET raised_amount = raised_amount + $1
        WHERE id = $2
    `)).
					WithArgs(-25.5, 3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			matched:   1,
		},
		{
			name:  "Database error",
			delta: 25.5,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE campaigns
        SET raised_amount = raised_amount + $1
        WHERE id = $2
    `)).
					WithArgs(25.5, 3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			matched:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			matched, err := repo.AddToRaised(context.Background(), 3, tt.delta)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestRepository_Close(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		matched   int64
	}{
		{
			name: "Campaign closed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE campaigns
        SET closed = TRUE
        WHERE id = $1 AND closed = FALSE
    `)).
					WithArgs(3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			matched: 1,
		},
		{
			name: "Already closed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE campaigns
        SET closed = TRUE
        WHERE id = $1 AND closed = FALSE
    `)).
					WithArgs(3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			matched: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			matched, err := repo.Close(context.Background(), 3)
			assert.NoError(t, err)
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestRepository_DeleteByID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM campaigns WHERE id = $1")).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	matched, err := repo.DeleteByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)
}
