package adoptionservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, req *domain.AdoptionRequest) (bool, error)
	FindByID(ctx context.Context, id int) (*domain.AdoptionRequest, error)
	FindByRequester(ctx context.Context, email string) ([]domain.AdoptionRequest, error)
	FindByOwner(ctx context.Context, email string) ([]domain.AdoptionRequest, error)
	Accept(ctx context.Context, id int) (int64, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
}

type PetRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Pet, error)
	SetAdopted(ctx context.Context, id int, adopted bool) (int64, error)
}

var ErrPetNotFound = errors.New("pet not found")

type Service struct {
	repo      Repo
	petRepo   PetRepo
	txManager pg.TXManager
}

func New(repo Repo, petRepo PetRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		petRepo:   petRepo,
		txManager: txManager,
	}
}

// Submit files an adoption request for a pet. A repeated submission for the
// same pet is a no-op reported through isExist, not an error.
func (s *Service) Submit(ctx context.Context, requesterEmail string, req *domain.AdoptionRequest) (*domain.AdoptionRequest, bool, error) {
	pet, err := s.petRepo.FindByID(ctx, req.PetID)
	if err != nil {
		return nil, false, err
	}
	if pet == nil {
		return nil, false, ErrPetNotFound
	}

	req.RequesterEmail = requesterEmail
	req.PetName = pet.Name
	req.PetImage = pet.ImageURL
	req.PetLocation = pet.Location
	req.OwnerEmail = pet.OwnerEmail

	inserted, err := s.repo.Create(ctx, req)
	if err != nil {
		zap.L().Error("can't submit adoption request", zap.Error(err))
		return nil, false, err
	}
	if !inserted {
		zap.L().Info("adoption request already exists", zap.Int("pet_id", req.PetID))
		return nil, true, nil
	}
	return req, false, nil
}

func (s *Service) ListByRequester(ctx context.Context, email string) ([]domain.AdoptionRequest, error) {
	requests, err := s.repo.FindByRequester(ctx, email)
	if err != nil {
		zap.L().Error("failed to get adoption requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ListByOwner(ctx context.Context, email string) ([]domain.AdoptionRequest, error) {
	requests, err := s.repo.FindByOwner(ctx, email)
	if err != nil {
		zap.L().Error("failed to get adoption requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// Accept marks the request accepted and flips the pet's adopted flag in one
// transaction, so the two records cannot diverge on a partial failure.
func (s *Service) Accept(ctx context.Context, id int) (int64, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if request == nil {
		return 0, nil
	}

	var matched int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		matched, err = s.repo.Accept(ctx, id)
		if err != nil {
			return err
		}
		if matched == 0 {
			return nil
		}
		if _, err := s.petRepo.SetAdopted(ctx, request.PetID, true); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to accept adoption request", zap.Error(err))
		return 0, err
	}
	return matched, nil
}

func (s *Service) Withdraw(ctx context.Context, id int) (int64, error) {
	matched, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete adoption request", zap.Error(err))
		return 0, err
	}
	return matched, nil
}
