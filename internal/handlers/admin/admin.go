// Package admin serves the operator surface: catalog management, claim and
// submission review, coupon pool maintenance and manual grants. Every route
// is mounted behind auth.AdminMiddleware, the services check the actor again.
package admin

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/rewardhub/internal/domain"
)

type Rewards interface {
	ListRewards(ctx context.Context, enabledOnly bool) ([]domain.Reward, error)
	CreateReward(ctx context.Context, actor domain.Actor, reward *domain.Reward) (*domain.Reward, error)
	UpdateReward(ctx context.Context, actor domain.Actor, reward *domain.Reward) (*domain.Reward, error)
	ListClaimsByStatus(ctx context.Context, actor domain.Actor, status domain.ClaimStatus, limit int) ([]domain.RewardClaim, error)
	Fulfill(ctx context.Context, actor domain.Actor, claimID int64, notes string) (*domain.RewardClaim, error)
	Reject(ctx context.Context, actor domain.Actor, claimID int64, notes string) (*domain.RewardClaim, error)
}

type Coupons interface {
	Import(ctx context.Context, actor domain.Actor, rewardType domain.RewardType, codes []string) (int64, error)
	Generate(ctx context.Context, actor domain.Actor, rewardType domain.RewardType, count int) (int64, error)
	List(ctx context.Context, actor domain.Actor, rewardType domain.RewardType, status domain.CouponStatus, limit int) ([]domain.Coupon, error)
	Inventory(ctx context.Context) (map[domain.RewardType]int, error)
	Release(ctx context.Context, actor domain.Actor, couponID int64) (*domain.Coupon, error)
}

type Follows interface {
	ListByStatus(ctx context.Context, actor domain.Actor, status domain.FollowStatus, limit int) ([]domain.SocialFollow, error)
	Approve(ctx context.Context, actor domain.Actor, id int64) (*domain.SocialFollow, error)
	Reject(ctx context.Context, actor domain.Actor, id int64) (*domain.SocialFollow, error)
}

type Winners interface {
	CreateWinner(ctx context.Context, actor domain.Actor, accountID int, eventID, submissionID int64, position int) (*domain.WinnerClaim, error)
	ListByStatus(ctx context.Context, actor domain.Actor, status domain.WinnerStatus, limit int) ([]domain.WinnerClaim, error)
	Issue(ctx context.Context, actor domain.Actor, id int64, notes string) (*domain.WinnerClaim, error)
}

type Referrals interface {
	Qualify(ctx context.Context, actor domain.Actor, id int64) (*domain.Referral, error)
}

type Ledger interface {
	Grant(ctx context.Context, actor domain.Actor, accountID int, amount int64, description string) (*domain.Transaction, error)
}

type AdminHandler struct {
	rewards   Rewards
	coupons   Coupons
	follows   Follows
	winners   Winners
	referrals Referrals
	ledger    Ledger
}

func New(rewards Rewards, coupons Coupons, follows Follows, winners Winners, referrals Referrals, ledger Ledger) *AdminHandler {
	return &AdminHandler{
		rewards:   rewards,
		coupons:   coupons,
		follows:   follows,
		winners:   winners,
		referrals: referrals,
		ledger:    ledger,
	}
}

// statusParam returns ?status=, or fallback when it is absent.
func statusParam(r *http.Request, fallback string) string {
	if status := r.URL.Query().Get("status"); status != "" {
		return status
	}
	return fallback
}
