package service_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rewardhub/internal/config"
	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/pg"
	"github.com/GlebRadaev/rewardhub/internal/repo"
	"github.com/GlebRadaev/rewardhub/internal/service"
)

// newIntegrationServices runs the migrations against TEST_DATABASE_URI and
// starts from empty tables.
func newIntegrationServices(t *testing.T) *service.Services {
	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pg.RunMigrations(pool))

	_, err = pool.Exec(ctx, `TRUNCATE users, accounts, ledger_transactions, rewards, coupon_pool,
		reward_claims, claim_intents, social_follows, winner_claims, referrals RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	txManager := pg.NewTXManager(pool)
	cfg := &config.Config{
		JWTSecret:       "integration",
		TokenTTL:        time.Minute,
		CouponValidDays: 30,
		BcryptCost:      4,
		AdminLogins:     []string{"ops"},
		Earning: config.EarningRules{
			SignupBonus:   100,
			ReferralBonus: 50,
			SocialFollow:  config.SocialFollowRewards{Instagram: 20},
		},
	}
	return service.New(repo.New(pg.New(pool), txManager), txManager, cfg)
}

func register(t *testing.T, s *service.Services, login, code string) (*domain.User, domain.Actor) {
	user, err := s.AuthService.Register(context.Background(), login, "password", code)
	require.NoError(t, err)
	return user, domain.Actor{AccountID: user.ID, Admin: user.IsAdmin}
}

func assertTotals(t *testing.T, s *service.Services, accountID int, balance int64) {
	account, err := s.LedgerService.Balance(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, balance, account.Balance)
	assert.Equal(t, account.TotalEarned-account.TotalSpent, account.Balance)
}

func TestIntegration_LastCouponGoesToOneClaimant(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, ops := register(t, s, "ops", "")
	require.True(t, ops.Admin)

	reward, err := s.RewardService.CreateReward(ctx, ops, &domain.Reward{
		Name: "30% off", CoinCost: 60, RewardType: domain.RewardDiscount30, MaxClaimsPerUser: 5, IsEnabled: true,
	})
	require.NoError(t, err)
	inserted, err := s.CouponService.Import(ctx, ops, domain.RewardDiscount30, []string{"SPRING-ONE"})
	require.NoError(t, err)
	require.Equal(t, int64(1), inserted)

	claimants := make([]int, 0, 4)
	for _, login := range []string{"alice", "bob", "carol", "dave"} {
		user, _ := register(t, s, login, "")
		_, err := s.LedgerService.ClaimSignupBonus(ctx, user.ID)
		require.NoError(t, err)
		claimants = append(claimants, user.ID)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []int
		misses  int
	)
	for _, id := range claimants {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			claim, err := s.RewardService.Claim(ctx, id, reward.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				assert.Equal(t, "SPRING-ONE", *claim.CouponCode)
				winners = append(winners, id)
			case errors.Is(err, domain.ErrNoCouponsAvailable):
				misses++
			default:
				t.Errorf("unexpected claim error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, 3, misses)
	for _, id := range claimants {
		if id == winners[0] {
			assertTotals(t, s, id, 40)
			continue
		}
		assertTotals(t, s, id, 100)
	}

	inventory, err := s.CouponService.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, inventory[domain.RewardDiscount30])

	stale, err := s.RewardService.StaleIntents(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestIntegration_ClaimLimitAndRejectRefund(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, ops := register(t, s, "ops", "")
	user, _ := register(t, s, "alice", "")
	_, err := s.LedgerService.ClaimSignupBonus(ctx, user.ID)
	require.NoError(t, err)
	_, err = s.LedgerService.ClaimSignupBonus(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrSignupBonusClaimed)

	reward, err := s.RewardService.CreateReward(ctx, ops, &domain.Reward{
		Name: "Funded account", CoinCost: 70, RewardType: domain.RewardFundedAccount, IsEnabled: true,
	})
	require.NoError(t, err)

	claim, err := s.RewardService.Claim(ctx, user.ID, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ClaimPending, claim.Status)
	assertTotals(t, s, user.ID, 30)

	_, err = s.RewardService.Claim(ctx, user.ID, reward.ID)
	assert.ErrorIs(t, err, domain.ErrClaimLimitReached)

	rejected, err := s.RewardService.Reject(ctx, ops, claim.ID, "no slots this month")
	require.NoError(t, err)
	assert.Equal(t, domain.ClaimRejected, rejected.Status)
	assertTotals(t, s, user.ID, 100)

	_, err = s.RewardService.Reject(ctx, ops, claim.ID, "again")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assertTotals(t, s, user.ID, 100)
}

func TestIntegration_FollowApprovalQualifiesReferral(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, ops := register(t, s, "ops", "")
	referrer, _ := register(t, s, "alice", "")
	account, err := s.LedgerService.Balance(ctx, referrer.ID)
	require.NoError(t, err)

	referred, _ := register(t, s, "bob", account.ReferralCode)
	referrals, err := s.ReferralService.ListMine(ctx, referrer.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.Equal(t, domain.ReferralPending, referrals[0].Status)

	follow, err := s.FollowService.Submit(ctx, referred.ID, domain.PlatformInstagram, "uploads/bob.png")
	require.NoError(t, err)
	_, err = s.FollowService.Submit(ctx, referred.ID, domain.PlatformInstagram, "uploads/bob-2.png")
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)

	_, err = s.FollowService.Approve(ctx, ops, follow.ID)
	require.NoError(t, err)
	assertTotals(t, s, referred.ID, 20)
	assertTotals(t, s, referrer.ID, 50)

	_, err = s.ReferralService.Qualify(ctx, ops, referrals[0].ID)
	require.NoError(t, err)
	assertTotals(t, s, referrer.ID, 50)
}

func TestIntegration_ConcurrentClaimsSpendOnce(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, ops := register(t, s, "ops", "")
	user, _ := register(t, s, "alice", "")
	_, err := s.LedgerService.ClaimSignupBonus(ctx, user.ID)
	require.NoError(t, err)
	assertTotals(t, s, user.ID, 100)

	reward, err := s.RewardService.CreateReward(ctx, ops, &domain.Reward{
		Name: "Hoodie", CoinCost: 100, RewardType: domain.RewardGeneric, MaxClaimsPerUser: 5, IsEnabled: true,
	})
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		refused   int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RewardService.Claim(ctx, user.ID, reward.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInsufficientBalance):
				refused++
			default:
				t.Errorf("unexpected claim error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 9, refused)
	assertTotals(t, s, user.ID, 0)

	claims, err := s.RewardService.ListClaims(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, claims, 1)

	stale, err := s.RewardService.StaleIntents(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestIntegration_ConcurrentApprovalCreditsOnce(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, ops := register(t, s, "ops", "")
	user, _ := register(t, s, "alice", "")
	follow, err := s.FollowService.Submit(ctx, user.ID, domain.PlatformInstagram, "uploads/alice.png")
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		approved int
		refused  int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.FollowService.Approve(ctx, ops, follow.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				approved++
			case errors.Is(err, domain.ErrInvalidTransition):
				refused++
			default:
				t.Errorf("unexpected approve error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, approved)
	assert.Equal(t, 4, refused)
	assertTotals(t, s, user.ID, 20)
}

func TestIntegration_DeliveredCouponStaysWithOwner(t *testing.T) {
	s := newIntegrationServices(t)
	ctx := context.Background()

	_, ops := register(t, s, "ops", "")
	user, _ := register(t, s, "alice", "")
	_, err := s.LedgerService.ClaimSignupBonus(ctx, user.ID)
	require.NoError(t, err)

	reward, err := s.RewardService.CreateReward(ctx, ops, &domain.Reward{
		Name: "50% off", CoinCost: 60, RewardType: domain.RewardDiscount50, IsEnabled: true,
	})
	require.NoError(t, err)
	_, err = s.CouponService.Import(ctx, ops, domain.RewardDiscount50, []string{"SUMMER-ONE"})
	require.NoError(t, err)

	claim, err := s.RewardService.Claim(ctx, user.ID, reward.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ClaimFulfilled, claim.Status)
	require.NotNil(t, claim.CouponID)

	_, err = s.CouponService.Release(ctx, ops, *claim.CouponID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	claims, err := s.RewardService.ListClaims(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "SUMMER-ONE", *claims[0].CouponCode)

	inventory, err := s.CouponService.Inventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, inventory[domain.RewardDiscount50])
}
