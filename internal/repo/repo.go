package repo

import (
	"github.com/pawhub/pawhub/internal/pg"
	adoptionrepo "github.com/pawhub/pawhub/internal/repo/adoption-repo"
	campaignrepo "github.com/pawhub/pawhub/internal/repo/campaign-repo"
	donationrepo "github.com/pawhub/pawhub/internal/repo/donation-repo"
	petrepo "github.com/pawhub/pawhub/internal/repo/pet-repo"
	userrepo "github.com/pawhub/pawhub/internal/repo/user-repo"
	"github.com/pawhub/pawhub/internal/service/adoptionservice"
	"github.com/pawhub/pawhub/internal/service/authservice"
	"github.com/pawhub/pawhub/internal/service/donationservice"
	"github.com/pawhub/pawhub/internal/service/petservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	PetRepo      petservice.Repo
	AdoptionRepo adoptionservice.Repo
	CampaignRepo donationservice.CampaignRepo
	DonationRepo donationservice.DonationRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	petRepo := petrepo.New(conn)
	adoptionRepo := adoptionrepo.New(conn)
	campaignRepo := campaignrepo.New(conn)
	donationRepo := donationrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		PetRepo:      petRepo,
		AdoptionRepo: adoptionRepo,
		CampaignRepo: campaignRepo,
		DonationRepo: donationRepo,
	}
}
