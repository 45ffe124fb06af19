package service

import (
	"github.com/GlebRadaev/rewardhub/internal/config"
	"github.com/GlebRadaev/rewardhub/internal/pg"
	"github.com/GlebRadaev/rewardhub/internal/repo"
	"github.com/GlebRadaev/rewardhub/internal/service/authservice"
	"github.com/GlebRadaev/rewardhub/internal/service/couponservice"
	"github.com/GlebRadaev/rewardhub/internal/service/followservice"
	"github.com/GlebRadaev/rewardhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/rewardhub/internal/service/referralservice"
	"github.com/GlebRadaev/rewardhub/internal/service/rewardservice"
	"github.com/GlebRadaev/rewardhub/internal/service/winnerservice"
	pkgauth "github.com/GlebRadaev/rewardhub/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	LedgerService   *ledgerservice.Service
	CouponService   *couponservice.Service
	RewardService   *rewardservice.Service
	FollowService   *followservice.Service
	WinnerService   *winnerservice.Service
	ReferralService *referralservice.Service

	JWTService pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repo.AccountRepo, txManager, cfg.Earning.SignupBonus)
	couponService := couponservice.New(repo.CouponRepo)
	referralService := referralservice.New(repo.ReferralRepo, repo.AccountRepo, ledgerService, txManager,
		cfg.Earning.ReferralBonus)
	rewardService := rewardservice.New(repo.RewardRepo, repo.IntentRepo, ledgerService, couponService, txManager,
		cfg.CouponValidDays)
	followService := followservice.New(repo.FollowRepo, ledgerService, referralService, txManager,
		cfg.Earning.SocialFollow)
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, ledgerService, referralService, txManager,
		pkgauth.NewHashService(cfg.BcryptCost), jwtService, cfg.TokenTTL).WithAdmins(cfg.AdminLogins)

	return &Services{
		AuthService:     authService,
		LedgerService:   ledgerService,
		CouponService:   couponService,
		RewardService:   rewardService,
		FollowService:   followService,
		WinnerService:   winnerservice.New(repo.WinnerRepo),
		ReferralService: referralService,
		JWTService:      jwtService,
	}
}
