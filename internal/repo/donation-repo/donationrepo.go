package donationrepo

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

const donationColumns = "id, campaign_id, donor_email, donor_name, amount, refunded, created_at"

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(&d.ID, &d.CampaignID, &d.DonorEmail, &d.DonorName, &d.Amount, &d.Refunded, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	query := `
        INSERT INTO donations (campaign_id, donor_email, donor_name, amount)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, donation.CampaignID, donation.DonorEmail, donation.DonorName, donation.Amount).
		Scan(&donation.ID, &donation.CreatedAt)
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Donation, error) {
	query := fmt.Sprintf("SELECT %s FROM donations WHERE id = $1", donationColumns)
	donation, err := scanDonation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByDonor(ctx context.Context, email string) ([]domain.Donation, error) {
	query := fmt.Sprintf("SELECT %s FROM donations WHERE donor_email = $1 ORDER BY created_at DESC", donationColumns)
	return r.findMany(ctx, query, email)
}

func (r *Repository) FindByCampaign(ctx context.Context, campaignID int) ([]domain.Donation, error) {
	query := fmt.Sprintf("SELECT %s FROM donations WHERE campaign_id = $1 ORDER BY created_at DESC", donationColumns)
	return r.findMany(ctx, query, campaignID)
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Donation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, *donation)
	}
	return donations, nil
}

// MarkRefunded flips the refund flag once. A second refund attempt matches
// zero rows.
func (r *Repository) MarkRefunded(ctx context.Context, id int) (int64, error) {
	query := `
        UPDATE donations
        SET refunded = TRUE
        WHERE id = $1 AND refunded = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark donation refunded", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
