package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/rewardhub/docs"
	adminhandlers "github.com/GlebRadaev/rewardhub/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/rewardhub/internal/handlers/auth"
	coinshandlers "github.com/GlebRadaev/rewardhub/internal/handlers/coins"
	rewardshandlers "github.com/GlebRadaev/rewardhub/internal/handlers/rewards"
	winnershandlers "github.com/GlebRadaev/rewardhub/internal/handlers/winners"
	"github.com/GlebRadaev/rewardhub/internal/service"
	"github.com/GlebRadaev/rewardhub/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CoinsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ClaimSignupBonus(w http.ResponseWriter, r *http.Request)
	SubmitSocialFollow(w http.ResponseWriter, r *http.Request)
	GetSocialFollows(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type RewardsHandler interface {
	GetRewards(w http.ResponseWriter, r *http.Request)
	ClaimReward(w http.ResponseWriter, r *http.Request)
	GetClaims(w http.ResponseWriter, r *http.Request)
}

type WinnersHandler interface {
	GetWinnings(w http.ResponseWriter, r *http.Request)
	SubmitClaimDetails(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetRewards(w http.ResponseWriter, r *http.Request)
	CreateReward(w http.ResponseWriter, r *http.Request)
	UpdateReward(w http.ResponseWriter, r *http.Request)
	GetClaims(w http.ResponseWriter, r *http.Request)
	FulfillClaim(w http.ResponseWriter, r *http.Request)
	RejectClaim(w http.ResponseWriter, r *http.Request)
	ImportCoupons(w http.ResponseWriter, r *http.Request)
	GenerateCoupons(w http.ResponseWriter, r *http.Request)
	GetCoupons(w http.ResponseWriter, r *http.Request)
	GetInventory(w http.ResponseWriter, r *http.Request)
	ReleaseCoupon(w http.ResponseWriter, r *http.Request)
	GetSocialFollows(w http.ResponseWriter, r *http.Request)
	ApproveSocialFollow(w http.ResponseWriter, r *http.Request)
	RejectSocialFollow(w http.ResponseWriter, r *http.Request)
	CreateWinner(w http.ResponseWriter, r *http.Request)
	GetWinners(w http.ResponseWriter, r *http.Request)
	IssueWinner(w http.ResponseWriter, r *http.Request)
	GrantCoins(w http.ResponseWriter, r *http.Request)
	QualifyReferral(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CoinsHandler   CoinsHandler
	RewardsHandler RewardsHandler
	WinnersHandler WinnersHandler
	AdminHandler   AdminHandler

	jwt auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	admin := adminhandlers.New(s.RewardService, s.CouponService, s.FollowService,
		s.WinnerService, s.ReferralService, s.LedgerService)
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CoinsHandler:   coinshandlers.New(s.LedgerService, s.FollowService, s.ReferralService),
		RewardsHandler: rewardshandlers.New(s.RewardService),
		WinnersHandler: winnershandlers.New(s.WinnerService),
		AdminHandler:   admin,
		jwt:            s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwt))

			r.Route("/coins", func(r chi.Router) {
				r.Get("/balance", h.CoinsHandler.GetBalance)
				r.Get("/history", h.CoinsHandler.GetHistory)
				r.Post("/signup-claim", h.CoinsHandler.ClaimSignupBonus)
				r.Post("/social-follow", h.CoinsHandler.SubmitSocialFollow)
				r.Get("/social-follow", h.CoinsHandler.GetSocialFollows)
				r.Get("/referrals", h.CoinsHandler.GetReferrals)
			})
			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", h.RewardsHandler.GetRewards)
				r.Get("/claims", h.RewardsHandler.GetClaims)
				r.Post("/{id}/claim", h.RewardsHandler.ClaimReward)
			})
			r.Route("/winners", func(r chi.Router) {
				r.Get("/", h.WinnersHandler.GetWinnings)
				r.Post("/{id}/claim", h.WinnersHandler.SubmitClaimDetails)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)

				r.Route("/rewards", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetRewards)
					r.Post("/", h.AdminHandler.CreateReward)
					r.Put("/{id}", h.AdminHandler.UpdateReward)
				})
				r.Route("/claims", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetClaims)
					r.Post("/{id}/fulfill", h.AdminHandler.FulfillClaim)
					r.Post("/{id}/reject", h.AdminHandler.RejectClaim)
				})
				r.Route("/coupons", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetCoupons)
					r.Get("/inventory", h.AdminHandler.GetInventory)
					r.Post("/import", h.AdminHandler.ImportCoupons)
					r.Post("/generate", h.AdminHandler.GenerateCoupons)
					r.Post("/{id}/release", h.AdminHandler.ReleaseCoupon)
				})
				r.Route("/social-follows", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetSocialFollows)
					r.Post("/{id}/approve", h.AdminHandler.ApproveSocialFollow)
					r.Post("/{id}/reject", h.AdminHandler.RejectSocialFollow)
				})
				r.Route("/winners", func(r chi.Router) {
					r.Get("/", h.AdminHandler.GetWinners)
					r.Post("/", h.AdminHandler.CreateWinner)
					r.Post("/{id}/issue", h.AdminHandler.IssueWinner)
				})
				r.Post("/referrals/{id}/qualify", h.AdminHandler.QualifyReferral)
				r.Post("/accounts/{id}/grant", h.AdminHandler.GrantCoins)
			})
		})
	})

	return r
}
