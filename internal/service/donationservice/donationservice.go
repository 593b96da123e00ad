package donationservice

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/pg"
	"github.com/pawhub/pawhub/pkg/auth"
)

type CampaignRepo interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	FindAll(ctx context.Context) ([]domain.Campaign, error)
	FindByOwner(ctx context.Context, email string) ([]domain.Campaign, error)
	FindExpiredOpen(ctx context.Context, now time.Time, limit uint32) ([]domain.Campaign, error)
	UpdateByID(ctx context.Context, id int, campaign *domain.Campaign) (int64, error)
	SetPaused(ctx context.Context, id int, paused bool) (int64, error)
	AddToRaised(ctx context.Context, id int, delta float64) (int64, error)
	Close(ctx context.Context, id int) (int64, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
}

type DonationRepo interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	FindByID(ctx context.Context, id int) (*domain.Donation, error)
	FindByDonor(ctx context.Context, email string) ([]domain.Donation, error)
	FindByCampaign(ctx context.Context, campaignID int) ([]domain.Donation, error)
	MarkRefunded(ctx context.Context, id int) (int64, error)
}

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCampaignClosed   = errors.New("campaign is closed")
	ErrCampaignPaused   = errors.New("campaign is paused")
	ErrCampaignFunded   = errors.New("campaign already reached its goal")
	ErrInvalidAmount    = errors.New("invalid donation amount")
	ErrDonationNotFound = errors.New("donation not found")
	ErrNotOwner         = errors.New("not the campaign owner")
)

type Service struct {
	campaignRepo CampaignRepo
	donationRepo DonationRepo
	txManager    pg.TXManager
	roles        auth.RoleSource
}

func New(campaignRepo CampaignRepo, donationRepo DonationRepo, txManager pg.TXManager, roles auth.RoleSource) *Service {
	return &Service{
		campaignRepo: campaignRepo,
		donationRepo: donationRepo,
		txManager:    txManager,
		roles:        roles,
	}
}

func (s *Service) CreateCampaign(ctx context.Context, ownerEmail string, campaign *domain.Campaign) (*domain.Campaign, error) {
	campaign.OwnerEmail = ownerEmail
	created, err := s.campaignRepo.Create(ctx, campaign)
	if err != nil {
		zap.L().Error("can't create campaign", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetCampaign(ctx context.Context, id int) (*domain.Campaign, error) {
	return s.campaignRepo.FindByID(ctx, id)
}

func (s *Service) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

func (s *Service) ListCampaignsByOwner(ctx context.Context, email string) ([]domain.Campaign, error) {
	campaigns, err := s.campaignRepo.FindByOwner(ctx, email)
	if err != nil {
		zap.L().Error("failed to get campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

func (s *Service) canMutate(ctx context.Context, id int, actor string) error {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil || campaign.OwnerEmail == actor {
		return nil
	}
	role, err := s.roles.GetRole(ctx, actor)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin {
		return ErrNotOwner
	}
	return nil
}

func (s *Service) UpdateCampaign(ctx context.Context, id int, actor string, campaign *domain.Campaign) (int64, error) {
	if err := s.canMutate(ctx, id, actor); err != nil {
		return 0, err
	}
	matched, err := s.campaignRepo.UpdateByID(ctx, id, campaign)
	if err != nil {
		zap.L().Error("failed to update campaign", zap.Error(err))
		return 0, err
	}
	return matched, nil
}

func (s *Service) SetPaused(ctx context.Context, id int, actor string, paused bool) (int64, error) {
	if err := s.canMutate(ctx, id, actor); err != nil {
		return 0, err
	}
	matched, err := s.campaignRepo.SetPaused(ctx, id, paused)
	if err != nil {
		zap.L().Error("failed to set paused flag", zap.Error(err))
		return 0, err
	}
	return matched, nil
}

func (s *Service) DeleteCampaign(ctx context.Context, id int, actor string) (int64, error) {
	if err := s.canMutate(ctx, id, actor); err != nil {
		return 0, err
	}
	matched, err := s.campaignRepo.DeleteByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete campaign", zap.Error(err))
		return 0, err
	}
	return matched, nil
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// Contribute records a donation and advances the campaign's running total.
// The ledger insert and the total increment share one transaction, and the
// increment itself is a single-statement add, so concurrent contributions
// of X and Y always land at initial+X+Y.
func (s *Service) Contribute(ctx context.Context, donorEmail, donorName string, campaignID int, rawAmount string) (*domain.Donation, error) {
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if campaign.Closed {
		return nil, ErrCampaignClosed
	}
	if campaign.Paused {
		return nil, ErrCampaignPaused
	}
	if campaign.RaisedAmount >= campaign.MaxAmount {
		return nil, ErrCampaignFunded
	}

	donation := &domain.Donation{
		CampaignID: campaignID,
		DonorEmail: donorEmail,
		DonorName:  donorName,
		Amount:     amount,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.donationRepo.Create(ctx, donation); err != nil {
			return err
		}
		if _, err := s.campaignRepo.AddToRaised(ctx, campaignID, amount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to record contribution", zap.Error(err))
		return nil, err
	}

	zap.L().Info("contribution recorded",
		zap.Int("campaign_id", campaignID),
		zap.Float64("amount", amount),
	)
	return donation, nil
}

// Refund reverses a donation: the refund flag and the total decrement share
// one transaction so the total always equals the sum of non-refunded
// entries. A second refund of the same donation matches zero rows.
func (s *Service) Refund(ctx context.Context, id int, actor string) (int64, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if donation == nil {
		return 0, ErrDonationNotFound
	}
	if donation.DonorEmail != actor {
		role, err := s.roles.GetRole(ctx, actor)
		if err != nil {
			return 0, err
		}
		if role != domain.RoleAdmin {
			return 0, ErrNotOwner
		}
	}

	var matched int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		matched, err = s.donationRepo.MarkRefunded(ctx, id)
		if err != nil {
			return err
		}
		if matched == 0 {
			return nil
		}
		if _, err := s.campaignRepo.AddToRaised(ctx, donation.CampaignID, -donation.Amount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to refund donation", zap.Error(err))
		return 0, err
	}
	return matched, nil
}

func (s *Service) DonationsByDonor(ctx context.Context, email string) ([]domain.Donation, error) {
	donations, err := s.donationRepo.FindByDonor(ctx, email)
	if err != nil {
		zap.L().Error("failed to fetch donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}
