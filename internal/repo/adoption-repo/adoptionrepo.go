package adoptionrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const requestColumns = "id, pet_id, pet_name, pet_image, pet_location, owner_email, requester_name, requester_email, requester_phone, requester_address, accepted, created_at"

func scanRequest(row pgx.Row) (*domain.AdoptionRequest, error) {
	var req domain.AdoptionRequest
	err := row.Scan(&req.ID, &req.PetID, &req.PetName, &req.PetImage, &req.PetLocation, &req.OwnerEmail,
		&req.RequesterName, &req.RequesterEmail, &req.RequesterPhone, &req.RequesterAddress, &req.Accepted, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create relies on the unique index on pet_id: a duplicate submission
// inserts nothing and reports false instead of failing.
func (r *Repository) Create(ctx context.Context, req *domain.AdoptionRequest) (bool, error) {
	query := `
        INSERT INTO adoption_requests (pet_id, pet_name, pet_image, pet_location, owner_email, requester_name, requester_email, requester_phone, requester_address)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (pet_id) DO NOTHING
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, req.PetID, req.PetName, req.PetImage, req.PetLocation, req.OwnerEmail,
		req.RequesterName, req.RequesterEmail, req.RequesterPhone, req.RequesterAddress).Scan(&req.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't save adoption request", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.AdoptionRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM adoption_requests WHERE id = $1", requestColumns)
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find adoption request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) FindByRequester(ctx context.Context, email string) ([]domain.AdoptionRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM adoption_requests WHERE requester_email = $1 ORDER BY created_at DESC", requestColumns)
	return r.findMany(ctx, query, email)
}

func (r *Repository) FindByOwner(ctx context.Context, email string) ([]domain.AdoptionRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM adoption_requests WHERE owner_email = $1 ORDER BY created_at DESC", requestColumns)
	return r.findMany(ctx, query, email)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.AdoptionRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get adoption requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.AdoptionRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan adoption request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

func (r *Repository) Accept(ctx context.Context, id int) (int64, error) {
	query := `
        UPDATE adoption_requests
        SET accepted = TRUE
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't accept adoption request", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteByID(ctx context.Context, id int) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM adoption_requests WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete adoption request", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
