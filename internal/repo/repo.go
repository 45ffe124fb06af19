package repo

import (
	"github.com/GlebRadaev/rewardhub/internal/pg"
	accountrepo "github.com/GlebRadaev/rewardhub/internal/repo/account-repo"
	couponrepo "github.com/GlebRadaev/rewardhub/internal/repo/coupon-repo"
	followrepo "github.com/GlebRadaev/rewardhub/internal/repo/follow-repo"
	intentrepo "github.com/GlebRadaev/rewardhub/internal/repo/intent-repo"
	referralrepo "github.com/GlebRadaev/rewardhub/internal/repo/referral-repo"
	rewardrepo "github.com/GlebRadaev/rewardhub/internal/repo/reward-repo"
	userrepo "github.com/GlebRadaev/rewardhub/internal/repo/user-repo"
	winnerrepo "github.com/GlebRadaev/rewardhub/internal/repo/winner-repo"
	"github.com/GlebRadaev/rewardhub/internal/service/authservice"
	"github.com/GlebRadaev/rewardhub/internal/service/couponservice"
	"github.com/GlebRadaev/rewardhub/internal/service/followservice"
	"github.com/GlebRadaev/rewardhub/internal/service/ledgerservice"
	"github.com/GlebRadaev/rewardhub/internal/service/referralservice"
	"github.com/GlebRadaev/rewardhub/internal/service/rewardservice"
	"github.com/GlebRadaev/rewardhub/internal/service/winnerservice"
)

// AccountRepo backs both the ledger and referral code lookups.
type AccountRepo interface {
	ledgerservice.Repo
	referralservice.Accounts
}

type Repositories struct {
	UserRepo     authservice.Repo
	AccountRepo  AccountRepo
	CouponRepo   couponservice.Repo
	RewardRepo   rewardservice.Repo
	IntentRepo   rewardservice.IntentRepo
	FollowRepo   followservice.Repo
	WinnerRepo   winnerservice.Repo
	ReferralRepo referralservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		AccountRepo:  accountrepo.New(conn, txManager),
		CouponRepo:   couponrepo.New(conn, txManager),
		RewardRepo:   rewardrepo.New(conn),
		IntentRepo:   intentrepo.New(conn),
		FollowRepo:   followrepo.New(conn),
		WinnerRepo:   winnerrepo.New(conn),
		ReferralRepo: referralrepo.New(conn),
	}
}
