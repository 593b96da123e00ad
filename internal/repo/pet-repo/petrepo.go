package petrepo

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

// Filter narrows FindMany. Zero-valued fields are ignored.
type Filter struct {
	Category   string
	Location   string
	OwnerEmail string
	Adopted    *bool
}

const petColumns = "id, name, age, owner_email, category, location, short_description, long_description, image_url, adopted, created_at"

func scanPet(row pgx.Row) (*domain.Pet, error) {
	var pet domain.Pet
	err := row.Scan(&pet.ID, &pet.Name, &pet.Age, &pet.OwnerEmail, &pet.Category, &pet.Location,
		&pet.ShortDescription, &pet.LongDescription, &pet.ImageURL, &pet.Adopted, &pet.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *Repository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	query := `
        INSERT INTO pets (name, age, owner_email, category, location, short_description, long_description, image_url, adopted)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, pet.Name, pet.Age, pet.OwnerEmail, pet.Category, pet.Location,
		pet.ShortDescription, pet.LongDescription, pet.ImageURL).Scan(&pet.ID, &pet.CreatedAt)
	if err != nil {
		zap.L().Error("can't save pet", zap.Error(err))
		return nil, err
	}
	return pet, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Pet, error) {
	query := fmt.Sprintf("SELECT %s FROM pets WHERE id = $1", petColumns)
	pet, err := scanPet(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pet", zap.Error(err))
		return nil, err
	}
	return pet, nil
}

func (r *Repository) FindMany(ctx context.Context, filter Filter) ([]domain.Pet, error) {
	query := fmt.Sprintf("SELECT %s FROM pets WHERE 1=1", petColumns)
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		query += fmt.Sprintf(" AND location = $%d", len(args))
	}
	if filter.OwnerEmail != "" {
		args = append(args, filter.OwnerEmail)
		query += fmt.Sprintf(" AND owner_email = $%d", len(args))
	}
	if filter.Adopted != nil {
		args = append(args, *filter.Adopted)
		query += fmt.Sprintf(" AND adopted = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get pets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pets []domain.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			zap.L().Error("can't scan pet row", zap.Error(err))
			return nil, err
		}
		pets = append(pets, *pet)
	}
	return pets, nil
}

func (r *Repository) UpdateByID(ctx context.Context, id int, pet *domain.Pet) (int64, error) {
	query := `
        UPDATE pets
        SET name = $1, age = $2, category = $3, location = $4, short_description = $5, long_description = $6, image_url = $7
        WHERE id = $8
    `
	tag, err := r.db.Exec(ctx, query, pet.Name, pet.Age, pet.Category, pet.Location,
		pet.ShortDescription, pet.LongDescription, pet.ImageURL, id)
	if err != nil {
		zap.L().Error("can't update pet", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) SetAdopted(ctx context.Context, id int, adopted bool) (int64, error) {
	query := `
        UPDATE pets
        SET adopted = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, adopted, id)
	if err != nil {
		zap.L().Error("can't set adopted flag", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteByID(ctx context.Context, id int) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM pets WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete pet", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
