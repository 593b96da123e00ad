package petservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pawhub/pawhub/internal/domain"
	petrepo "github.com/pawhub/pawhub/internal/repo/pet-repo"
	"github.com/pawhub/pawhub/pkg/auth"
)

type Repo interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindByID(ctx context.Context, id int) (*domain.Pet, error)
	FindMany(ctx context.Context, filter petrepo.Filter) ([]domain.Pet, error)
	UpdateByID(ctx context.Context, id int, pet *domain.Pet) (int64, error)
	SetAdopted(ctx context.Context, id int, adopted bool) (int64, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
}

var ErrNotOwner = errors.New("not the pet owner")

type Service struct {
	repo  Repo
	roles auth.RoleSource
}

func New(repo Repo, roles auth.RoleSource) *Service {
	return &Service{
		repo:  repo,
		roles: roles,
	}
}

func (s *Service) AddPet(ctx context.Context, ownerEmail string, pet *domain.Pet) (*domain.Pet, error) {
	pet.OwnerEmail = ownerEmail
	created, err := s.repo.Create(ctx, pet)
	if err != nil {
		zap.L().Error("can't add pet", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetPet(ctx context.Context, id int) (*domain.Pet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListPets(ctx context.Context, filter petrepo.Filter) ([]domain.Pet, error) {
	pets, err := s.repo.FindMany(ctx, filter)
	if err != nil {
		zap.L().Error("failed to get pets", zap.Error(err))
		return nil, err
	}
	return pets, nil
}

// canMutate allows the pet owner and admins. Pets that no longer exist are
// mutable by anyone: downstream updates match zero rows and report it.
func (s *Service) canMutate(ctx context.Context, id int, actor string) error {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if pet == nil || pet.OwnerEmail == actor {
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

func (s *Service) UpdatePet(ctx context.Context, id int, actor string, pet *domain.Pet) (int64, error) {
	if err := s.canMutate(ctx, id, actor); err != nil {
		return 0, err
	}
	matched, err := s.repo.UpdateByID(ctx, id, pet)
	if err != nil {
		zap.L().Error("failed to update pet", zap.Error(err))
		return 0, err
	}
	return matched, nil
}

func (s *Service) SetAdopted(ctx context.Context, id int, actor string, adopted bool) (int64, error) {
	if err := s.canMutate(ctx, id, actor); err != nil {
		return 0, err
	}
	matched, err := s.repo.SetAdopted(ctx, id, adopted)
	if err != nil {
		zap.L().Error("failed to set adopted flag", zap.Error(err))
		return 0, err
	}
	return matched, nil
}

func (s *Service) DeletePet(ctx context.Context, id int, actor string) (int64, error) {
	if err := s.canMutate(ctx, id, actor); err != nil {
		return 0, err
	}
	matched, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete pet", zap.Error(err))
		return 0, err
	}
	return matched, nil
}
