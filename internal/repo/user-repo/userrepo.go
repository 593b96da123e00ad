package userrepo

import (
	"context"

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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, email, name, photo_url, role FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Email, &user.Name, &user.PhotoURL, &user.Role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Create inserts the user unless one with the same email already exists.
// Uniqueness is enforced by the storage layer, not by a read-then-write
// check, so concurrent first logins cannot race into duplicates.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (bool, error) {
	query := `
		INSERT INTO users (email, name, photo_url, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
	`
	tag, err := repo.db.Exec(ctx, query, user.Email, user.Name, user.PhotoURL, user.Role)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) FindAll(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, email, name, photo_url, role, created_at
        FROM users
        ORDER BY created_at DESC
    `
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.PhotoURL, &user.Role, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (repo *Repository) UpdateRole(ctx context.Context, email string, role string) (int64, error) {
	query := `
        UPDATE users
        SET role = $1
        WHERE email = $2
    `
	tag, err := repo.db.Exec(ctx, query, role, email)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
