package service

import (
	"github.com/pawhub/pawhub/internal/config"
	"github.com/pawhub/pawhub/internal/handlers/adoptions"
	"github.com/pawhub/pawhub/internal/handlers/auth"
	"github.com/pawhub/pawhub/internal/handlers/donations"
	"github.com/pawhub/pawhub/internal/handlers/payments"
	"github.com/pawhub/pawhub/internal/handlers/pets"

	pkgauth "github.com/pawhub/pawhub/pkg/auth"

	"github.com/pawhub/pawhub/internal/pg"
	"github.com/pawhub/pawhub/internal/repo"
	"github.com/pawhub/pawhub/internal/service/adoptionservice"
	"github.com/pawhub/pawhub/internal/service/authservice"
	"github.com/pawhub/pawhub/internal/service/donationservice"
	"github.com/pawhub/pawhub/internal/service/petservice"
)

type Services struct {
	AuthService     auth.Service
	PetService      pets.Service
	AdoptionService adoptions.Service
	DonationService donations.Service
	PaymentService  payments.Service

	// JWT and Roles feed the access-guard middleware.
	JWT   pkgauth.JWTServiceInterface
	Roles pkgauth.RoleSource
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, jwtService, cfg.TokenTTL)
	petService := petservice.New(repo.PetRepo, authService)
	adoptionService := adoptionservice.New(repo.AdoptionRepo, repo.PetRepo, txManager)
	donationService := donationservice.New(repo.CampaignRepo, repo.DonationRepo, txManager, authService)

	return &Services{
		AuthService:     authService,
		PetService:      petService,
		AdoptionService: adoptionService,
		DonationService: donationService,
		PaymentService:  donationService,
		JWT:             jwtService,
		Roles:           authService,
	}
}
