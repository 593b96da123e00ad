package sweeper

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pawhub/pawhub/internal/config"
	"github.com/pawhub/pawhub/internal/service/donationservice"
)

var closingCampaigns sync.Map

// Service periodically closes donation campaigns whose last date has
// passed. Closed campaigns stop accepting contributions.
type Service struct {
	campaignRepo  donationservice.CampaignRepo
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
	now           func() time.Time
}

func New(cfg *config.Config, campaignRepo donationservice.CampaignRepo) *Service {
	return &Service{
		campaignRepo:  campaignRepo,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.SweepInterval,
		now:           time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Campaign sweeper started", zap.Duration("interval", s.sweepInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweepCampaigns(ctx)
		}
	}
}

func (s *Service) sweepCampaigns(ctx context.Context) {
	campaigns, err := s.campaignRepo.FindExpiredOpen(ctx, s.now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired campaigns", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, campaign := range campaigns {
		campaign := campaign

		if _, loaded := closingCampaigns.LoadOrStore(campaign.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer closingCampaigns.Delete(campaign.ID)
				return s.closeCampaign(ctx, campaign.ID)
			})
			if err != nil {
				closingCampaigns.Delete(campaign.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error closing campaigns", zap.Error(err))
	}
}

func (s *Service) closeCampaign(ctx context.Context, id int) error {
	matched, err := s.campaignRepo.Close(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to close campaign %d: %w", id, err)
	}
	if matched == 0 {
		// Already closed by a concurrent sweep or by the owner.
		return nil
	}
	zap.L().Info("Campaign closed", zap.Int("campaignID", id))
	return nil
}
