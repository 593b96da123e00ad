package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pawhub/pawhub/docs"
	"github.com/pawhub/pawhub/internal/config"
	adoptionhandlers "github.com/pawhub/pawhub/internal/handlers/adoptions"
	authhandlers "github.com/pawhub/pawhub/internal/handlers/auth"
	donationhandlers "github.com/pawhub/pawhub/internal/handlers/donations"
	paymenthandlers "github.com/pawhub/pawhub/internal/handlers/payments"
	pethandlers "github.com/pawhub/pawhub/internal/handlers/pets"
	ownmiddleware "github.com/pawhub/pawhub/internal/middleware"
	"github.com/pawhub/pawhub/internal/service"
	"github.com/pawhub/pawhub/pkg/auth"
)

type AuthHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	MakeAdmin(w http.ResponseWriter, r *http.Request)
	CheckAdmin(w http.ResponseWriter, r *http.Request)
}

type PetHandler interface {
	AddPet(w http.ResponseWriter, r *http.Request)
	ListPets(w http.ResponseWriter, r *http.Request)
	GetPet(w http.ResponseWriter, r *http.Request)
	UpdatePet(w http.ResponseWriter, r *http.Request)
	ToggleAdopted(w http.ResponseWriter, r *http.Request)
	DeletePet(w http.ResponseWriter, r *http.Request)
}

type AdoptionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	CreateCampaign(w http.ResponseWriter, r *http.Request)
	ListCampaigns(w http.ResponseWriter, r *http.Request)
	GetCampaign(w http.ResponseWriter, r *http.Request)
	UpdateCampaign(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	DeleteCampaign(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Contribute(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	MyDonations(w http.ResponseWriter, r *http.Request)
	CreatePaymentIntent(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	PetHandler      PetHandler
	AdoptionHandler AdoptionHandler
	DonationHandler DonationHandler
	PaymentHandler  PaymentHandler

	guard   *auth.Middleware
	origins []string
}

func New(s *service.Services, gw paymenthandlers.Gateway, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		PetHandler:      pethandlers.New(s.PetService),
		AdoptionHandler: adoptionhandlers.New(s.AdoptionService),
		DonationHandler: donationhandlers.New(s.DonationService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService, gw),
		guard:           auth.NewMiddleware(s.JWT, s.Roles),
		origins:         cfg.AllowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		ownmiddleware.CORS(h.origins),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/jwt", h.AuthHandler.IssueToken)
	r.Post("/users", h.AuthHandler.CreateUser)

	r.Get("/pets", h.PetHandler.ListPets)
	r.Get("/pets/{id}", h.PetHandler.GetPet)
	r.Get("/donations", h.DonationHandler.ListCampaigns)
	r.Get("/donations/{id}", h.DonationHandler.GetCampaign)

	r.Group(func(r chi.Router) {
		r.Use(h.guard.Authenticate)

		r.Get("/users/admin/{email}", h.AuthHandler.CheckAdmin)

		r.Post("/pets", h.PetHandler.AddPet)
		r.Put("/pets/{id}", h.PetHandler.UpdatePet)
		r.Patch("/pets/adopt/{id}", h.PetHandler.ToggleAdopted)
		r.Delete("/pets/{id}", h.PetHandler.DeletePet)

		r.Get("/adopt-request", h.AdoptionHandler.List)
		r.Post("/adopt-request", h.AdoptionHandler.Submit)
		r.Put("/accept-adopt-req/{id}", h.AdoptionHandler.Accept)
		r.Delete("/adopt-request/{id}", h.AdoptionHandler.Withdraw)

		r.Post("/create-donation-campaign", h.DonationHandler.CreateCampaign)
		r.Put("/update-donation/{id}", h.DonationHandler.UpdateCampaign)
		r.Put("/donation-status/{id}", h.DonationHandler.SetStatus)
		r.Delete("/donations/{id}", h.DonationHandler.DeleteCampaign)

		r.Post("/payments", h.PaymentHandler.Contribute)
		r.Patch("/payments/refund/{id}", h.PaymentHandler.Refund)
		r.Get("/my-donations", h.PaymentHandler.MyDonations)
		r.Post("/create-payment-intent", h.PaymentHandler.CreatePaymentIntent)

		r.Group(func(r chi.Router) {
			r.Use(h.guard.AdminOnly)
			r.Get("/users", h.AuthHandler.ListUsers)
			r.Patch("/users/admin/{email}", h.AuthHandler.MakeAdmin)
		})
	})

	return r
}
