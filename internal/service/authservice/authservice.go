package authservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pawhub/pawhub/internal/domain"
	"github.com/pawhub/pawhub/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (bool, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, email string, role string) (int64, error)
}

type Service struct {
	userRepo   Repo
	jwtService auth.JWTServiceInterface
	tokenTTL   time.Duration
}

func New(repo Repo, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:   repo,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
	}
}

// EnsureUser creates the user record on first contact. A repeated call for
// the same email inserts nothing and reports false.
func (s *Service) EnsureUser(ctx context.Context, email, name, photoURL string) (bool, error) {
	user := &domain.User{
		Email:    email,
		Name:     name,
		PhotoURL: photoURL,
		Role:     domain.RoleUser,
	}
	inserted, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return false, err
	}
	if inserted {
		zap.L().Info("user registered", zap.String("email", email))
	}
	return inserted, nil
}

func (s *Service) GenerateToken(email string) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(email, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) MakeAdmin(ctx context.Context, email string) (int64, error) {
	matched, err := s.userRepo.UpdateRole(ctx, email, domain.RoleAdmin)
	if err != nil {
		zap.L().Error("failed to elevate role", zap.Error(err))
		return 0, err
	}
	return matched, nil
}

// GetRole re-derives the role from storage; the token payload is never
// trusted for authorization.
func (s *Service) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return "", err
	}
	if user == nil {
		return domain.RoleUser, nil
	}
	return user.Role, nil
}

func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.GetRole(ctx, email)
	if err != nil {
		return false, err
	}
	return role == domain.RoleAdmin, nil
}
