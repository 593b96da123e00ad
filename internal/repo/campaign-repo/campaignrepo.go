package campaignrepo

import (
	"context"
	"fmt"
	"time"

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

const campaignColumns = "id, name, owner_email, image_url, short_description, long_description, max_amount, raised_amount, last_date, paused, closed, created_at"

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.OwnerEmail, &c.ImageURL, &c.ShortDescription, &c.LongDescription,
		&c.MaxAmount, &c.RaisedAmount, &c.LastDate, &c.Paused, &c.Closed, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	query := `
        INSERT INTO campaigns (name, owner_email, image_url, short_description, long_description, max_amount, raised_amount, last_date)
        VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, campaign.Name, campaign.OwnerEmail, campaign.ImageURL,
		campaign.ShortDescription, campaign.LongDescription, campaign.MaxAmount, campaign.LastDate).
		Scan(&campaign.ID, &campaign.CreatedAt)
	if err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Campaign, error) {
	query := fmt.Sprintf("SELECT %s FROM campaigns WHERE id = $1", campaignColumns)
	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Campaign, error) {
	query := fmt.Sprintf("SELECT %s FROM campaigns ORDER BY created_at DESC", campaignColumns)
	return r.findMany(ctx, query)
}

func (r *Repository) FindByOwner(ctx context.Context, email string) ([]domain.Campaign, error) {
	query := fmt.Sprintf("SELECT %s FROM campaigns WHERE owner_email = $1 ORDER BY created_at DESC", campaignColumns)
	return r.findMany(ctx, query, email)
}

// FindExpiredOpen returns open campaigns whose last date has passed.
func (r *Repository) FindExpiredOpen(ctx context.Context, now time.Time, limit uint32) ([]domain.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns WHERE closed = FALSE AND last_date < $1 ORDER BY last_date ASC LIMIT $2`, campaignColumns)
	return r.findMany(ctx, query, now, int(limit))
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, *campaign)
	}
	return campaigns, nil
}

func (r *Repository) UpdateByID(ctx context.Context, id int, campaign *domain.Campaign) (int64, error) {
	query := `
        UPDATE campaigns
        SET name = $1, image_url = $2, short_description = $3, long_description = $4, max_amount = $5, last_date = $6
        WHERE id = $7
    `
	tag, err := r.db.Exec(ctx, query, campaign.Name, campaign.ImageURL, campaign.ShortDescription,
		campaign.LongDescription, campaign.MaxAmount, campaign.LastDate, id)
	if err != nil {
		zap.L().Error("can't update campaign", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) SetPaused(ctx context.Context, id int, paused bool) (int64, error) {
	query := `
        UPDATE campaigns
        SET paused = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, paused, id)
	if err != nil {
		zap.L().Error("can't set paused flag", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// AddToRaised advances the running total in place. The increment happens in
// a single statement so concurrent contributions never overwrite each other
// with stale reads.
func (r *Repository) AddToRaised(ctx context.Context, id int, delta float64) (int64, error) {
	query := `
        UPDATE campaigns
        SET raised_amount = raised_amount + $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		zap.L().Error("can't update raised amount", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Close is idempotent: a campaign that is already closed matches nothing.
func (r *Repository) Close(ctx context.Context, id int) (int64, error) {
	query := `
        UPDATE campaigns
        SET closed = TRUE
        WHERE id = $1 AND closed = FALSE
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't close campaign", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteByID(ctx context.Context, id int) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM campaigns WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete campaign", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
