package rewardservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/metrics"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

const (
	day              = 24 * time.Hour
	DefaultListLimit = 100
)

type Repo interface {
	CreateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	UpdateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error)
	GetReward(ctx context.Context, rewardID int) (*domain.Reward, error)
	ListRewards(ctx context.Context, enabledOnly bool) ([]domain.Reward, error)
	CreateClaim(ctx context.Context, claim *domain.RewardClaim) (*domain.RewardClaim, error)
	LockClaim(ctx context.Context, claimID int64) (*domain.RewardClaim, error)
	TransitionClaim(ctx context.Context, claimID int64, from, to domain.ClaimStatus, notes string) (bool, error)
	CountClaims(ctx context.Context, accountID, rewardID int) (int, error)
	ListClaims(ctx context.Context, accountID int) ([]domain.RewardClaim, error)
	ListClaimsByStatus(ctx context.Context, status domain.ClaimStatus, limit int) ([]domain.RewardClaim, error)
}

type IntentRepo interface {
	Create(ctx context.Context, intent *domain.ClaimIntent) error
	AttachCoupon(ctx context.Context, id uuid.UUID, couponID int64) error
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
	Compensate(ctx context.Context, id uuid.UUID) (*domain.ClaimIntent, error)
	FindStale(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.ClaimIntent, error)
	CountOpen(ctx context.Context, accountID, rewardID int) (int, error)
}

type Ledger interface {
	LockAccount(ctx context.Context, accountID int) (*domain.Account, error)
	Credit(ctx context.Context, accountID int, amount int64, source domain.Source, reference, description string) (*domain.Transaction, error)
	Debit(ctx context.Context, accountID int, amount int64, source domain.Source, reference, description string) (bool, error)
}

type Coupons interface {
	Allocate(ctx context.Context, rewardType domain.RewardType, accountID int, validFor time.Duration) (*domain.Coupon, error)
	Return(ctx context.Context, couponID int64) error
}

type Service struct {
	repo            Repo
	intents         IntentRepo
	ledger          Ledger
	coupons         Coupons
	txManager       pg.TXManager
	couponValidDays int
	metrics         *metrics.EngineMetrics
}

func New(repo Repo, intents IntentRepo, ledger Ledger, coupons Coupons, txManager pg.TXManager, couponValidDays int) *Service {
	return &Service{
		repo:            repo,
		intents:         intents,
		ledger:          ledger,
		coupons:         coupons,
		txManager:       txManager,
		couponValidDays: couponValidDays,
		metrics:         metrics.Engine(),
	}
}

func validateReward(reward *domain.Reward) error {
	reward.Name = strings.TrimSpace(reward.Name)
	switch {
	case reward.Name == "",
		reward.CoinCost <= 0,
		!reward.RewardType.Valid(),
		reward.ExpiryDays < 0,
		reward.MaxClaimsPerUser < 1:
		return domain.ErrInvalidReward
	}
	return nil
}

func (s *Service) CreateReward(ctx context.Context, actor domain.Actor, reward *domain.Reward) (*domain.Reward, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if reward.MaxClaimsPerUser == 0 {
		reward.MaxClaimsPerUser = 1
	}
	if err := validateReward(reward); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateReward(ctx, reward)
	if err != nil {
		return nil, fmt.Errorf("create reward: %w", err)
	}
	zap.L().Info("reward created", zap.Int("reward_id", created.ID), zap.String("type", string(created.RewardType)))
	return created, nil
}

// UpdateReward replaces a reward definition. Price changes apply to future
// claims only. A zero claim limit keeps the stored one.
func (s *Service) UpdateReward(ctx context.Context, actor domain.Actor, reward *domain.Reward) (*domain.Reward, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if reward.MaxClaimsPerUser == 0 {
		current, err := s.GetReward(ctx, reward.ID)
		if err != nil {
			return nil, err
		}
		reward.MaxClaimsPerUser = current.MaxClaimsPerUser
	}
	if err := validateReward(reward); err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateReward(ctx, reward)
	if err != nil {
		return nil, fmt.Errorf("update reward %d: %w", reward.ID, err)
	}
	if updated == nil {
		return nil, domain.ErrRewardNotFound
	}
	return updated, nil
}

func (s *Service) GetReward(ctx context.Context, rewardID int) (*domain.Reward, error) {
	reward, err := s.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, domain.ErrRewardNotFound
	}
	return reward, nil
}

func (s *Service) ListRewards(ctx context.Context, enabledOnly bool) ([]domain.Reward, error) {
	return s.repo.ListRewards(ctx, enabledOnly)
}

func (s *Service) ListClaims(ctx context.Context, accountID int) ([]domain.RewardClaim, error) {
	return s.repo.ListClaims(ctx, accountID)
}

func (s *Service) ListClaimsByStatus(ctx context.Context, actor domain.Actor, status domain.ClaimStatus, limit int) ([]domain.RewardClaim, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListClaimsByStatus(ctx, status, limit)
}

// Claim spends coins on a reward. The limit check, the debit and the open
// intent share one transaction under the account row lock. A coupon is then
// allocated for coupon-backed rewards, and the claim is written together
// with the intent completion. Any failure after the debit refunds the coins.
func (s *Service) Claim(ctx context.Context, accountID, rewardID int) (*domain.RewardClaim, error) {
	reward, err := s.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if !reward.IsEnabled {
		return nil, domain.ErrRewardDisabled
	}
	claim, err := s.claim(ctx, accountID, reward)
	s.metrics.RecordClaim(string(reward.RewardType), claimOutcome(err))
	return claim, err
}

func (s *Service) claim(ctx context.Context, accountID int, reward *domain.Reward) (*domain.RewardClaim, error) {
	intent := &domain.ClaimIntent{
		ID:        uuid.New(),
		AccountID: accountID,
		RewardID:  reward.ID,
		Amount:    reward.CoinCost,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.LockAccount(ctx, accountID); err != nil {
			return err
		}
		claimed, err := s.repo.CountClaims(ctx, accountID, reward.ID)
		if err != nil {
			return err
		}
		inFlight, err := s.intents.CountOpen(ctx, accountID, reward.ID)
		if err != nil {
			return err
		}
		if claimed+inFlight >= reward.MaxClaimsPerUser {
			return domain.ErrClaimLimitReached
		}
		debited, err := s.ledger.Debit(ctx, accountID, reward.CoinCost, domain.SourceRewardClaim,
			fmt.Sprintf("reward:%d", reward.ID), "Claimed "+reward.Name)
		if err != nil {
			return err
		}
		if !debited {
			return domain.ErrInsufficientBalance
		}
		return s.intents.Create(ctx, intent)
	})
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.validity(reward))
	status := domain.ClaimFulfilled
	if reward.RewardType.ManualFulfillment() {
		status = domain.ClaimPending
	}
	claim := &domain.RewardClaim{
		AccountID:  accountID,
		RewardID:   reward.ID,
		CoinsSpent: reward.CoinCost,
		Status:     status,
		ExpiresAt:  expiresAt,
	}

	if reward.RewardType.CouponBacked() {
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			coupon, err := s.coupons.Allocate(ctx, reward.RewardType, accountID, time.Until(expiresAt))
			if err != nil {
				return err
			}
			if err := s.intents.AttachCoupon(ctx, intent.ID, coupon.ID); err != nil {
				if errors.Is(err, domain.ErrIntentClosed) {
					zap.L().Warn("claim intent closed before coupon attach", zap.Stringer("intent_id", intent.ID),
						zap.Int("account_id", accountID), zap.Int("reward_id", reward.ID), zap.Int64("coupon_id", coupon.ID))
				}
				return err
			}
			intent.CouponID = &coupon.ID
			claim.CouponID = &coupon.ID
			claim.CouponCode = &coupon.Code
			return nil
		})
		if err != nil {
			return nil, s.abort(ctx, intent, err)
		}
	}

	var created *domain.RewardClaim
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.CreateClaim(ctx, claim)
		if err != nil {
			return err
		}
		completed, err := s.intents.Complete(ctx, intent.ID)
		if err != nil {
			return err
		}
		if !completed {
			zap.L().Warn("claim intent closed before completion", zap.Stringer("intent_id", intent.ID),
				zap.Int("account_id", accountID), zap.Int("reward_id", reward.ID), zap.Int64("claim_id", created.ID))
			return domain.ErrIntentClosed
		}
		return nil
	})
	if err != nil {
		return nil, s.abort(ctx, intent, err)
	}

	zap.L().Info("reward claimed", zap.Int("account_id", accountID), zap.Int("reward_id", reward.ID),
		zap.Int64("claim_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (s *Service) validity(reward *domain.Reward) time.Duration {
	days := reward.ExpiryDays
	if days == 0 {
		days = s.couponValidDays
	}
	return time.Duration(days) * day
}

// abort compensates the intent and returns the original failure. When the
// compensation cannot run the intent stays open for the sweeper.
func (s *Service) abort(ctx context.Context, intent *domain.ClaimIntent, cause error) error {
	reason := "claim_failed"
	if errors.Is(cause, domain.ErrNoCouponsAvailable) {
		reason = "no_coupons"
	}
	if err := s.CompensateIntent(context.WithoutCancel(ctx), *intent, reason); err != nil {
		zap.L().Error("can't compensate claim intent, leaving it to the sweeper",
			zap.Stringer("intent_id", intent.ID), zap.NamedError("cause", cause), zap.Error(err))
	}
	return cause
}

// CompensateIntent refunds an open intent and returns its coupon, if any.
// Amount and coupon are read from the stored row, not from intent. An intent
// closed by someone else is left alone.
func (s *Service) CompensateIntent(ctx context.Context, intent domain.ClaimIntent, reason string) error {
	var closed *domain.ClaimIntent
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		closed, err = s.intents.Compensate(ctx, intent.ID)
		if err != nil || closed == nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, closed.AccountID, closed.Amount, domain.SourceRefund,
			"intent:"+closed.ID.String(), "Refund for unfinished reward claim"); err != nil {
			return err
		}
		if closed.CouponID != nil {
			return s.coupons.Return(ctx, *closed.CouponID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if closed != nil {
		s.metrics.RecordCompensation(reason)
		zap.L().Info("claim intent compensated", zap.Stringer("intent_id", closed.ID),
			zap.Int("account_id", closed.AccountID), zap.Int64("amount", closed.Amount), zap.String("reason", reason))
	}
	return nil
}

// StaleIntents lists open intents untouched for longer than olderThan.
func (s *Service) StaleIntents(ctx context.Context, olderThan time.Duration, limit uint32) ([]domain.ClaimIntent, error) {
	return s.intents.FindStale(ctx, time.Now().Add(-olderThan), limit)
}

// Reject refunds a pending claim and returns its coupon to the pool.
func (s *Service) Reject(ctx context.Context, actor domain.Actor, claimID int64, notes string) (*domain.RewardClaim, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	var claim *domain.RewardClaim
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		claim, err = s.transition(ctx, claimID, domain.ClaimRejected, notes)
		if err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, claim.AccountID, claim.CoinsSpent, domain.SourceRefund,
			fmt.Sprintf("claim:%d", claim.ID), "Refund for rejected reward claim"); err != nil {
			return err
		}
		if claim.CouponID != nil {
			if err := s.coupons.Return(ctx, *claim.CouponID); err != nil {
				return err
			}
			claim.CouponID = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.RecordReview("reward_claim", "rejected")
	zap.L().Info("reward claim rejected", zap.Int("admin_id", actor.AccountID), zap.Int64("claim_id", claimID))
	return claim, nil
}

func (s *Service) Fulfill(ctx context.Context, actor domain.Actor, claimID int64, notes string) (*domain.RewardClaim, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	var claim *domain.RewardClaim
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		claim, err = s.transition(ctx, claimID, domain.ClaimFulfilled, notes)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.metrics.RecordReview("reward_claim", "fulfilled")
	zap.L().Info("reward claim fulfilled", zap.Int("admin_id", actor.AccountID), zap.Int64("claim_id", claimID))
	return claim, nil
}

// transition moves a locked pending claim to its final status.
func (s *Service) transition(ctx context.Context, claimID int64, to domain.ClaimStatus, notes string) (*domain.RewardClaim, error) {
	claim, err := s.repo.LockClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, domain.ErrClaimNotFound
	}
	if claim.Status != domain.ClaimPending {
		return nil, domain.NewTransitionError("claim", claim.Status, to)
	}
	moved, err := s.repo.TransitionClaim(ctx, claimID, domain.ClaimPending, to, notes)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, domain.NewTransitionError("claim", claim.Status, to)
	}
	claim.Status = to
	claim.AdminNotes = notes
	return claim, nil
}

func claimOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrClaimLimitReached):
		return "limit_reached"
	case errors.Is(err, domain.ErrNoCouponsAvailable):
		return "no_coupons"
	}
	return "error"
}
