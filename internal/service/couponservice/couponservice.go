package couponservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/metrics"
	"github.com/GlebRadaev/rewardhub/pkg/validate"
)

const (
	generatedBodyLength = 12
	MaxGenerate         = 1000
	DefaultListLimit    = 100
)

type Repo interface {
	Import(ctx context.Context, rewardType domain.RewardType, codes []string) (int64, error)
	Allocate(ctx context.Context, rewardType domain.RewardType, accountID int, expiresAt time.Time) (*domain.Coupon, error)
	Release(ctx context.Context, couponID int64) (bool, error)
	Delivered(ctx context.Context, couponID int64) (bool, error)
	Get(ctx context.Context, couponID int64) (*domain.Coupon, error)
	List(ctx context.Context, rewardType domain.RewardType, status domain.CouponStatus, limit int) ([]domain.Coupon, error)
	CountAvailable(ctx context.Context) (map[domain.RewardType]int, error)
}

type Service struct {
	repo    Repo
	metrics *metrics.EngineMetrics
}

func New(repo Repo) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics.Engine(),
	}
}

// CodePrefix is prepended to generated codes so that a code tells which pool
// it came from.
func CodePrefix(rewardType domain.RewardType) string {
	switch rewardType {
	case domain.RewardDiscount30:
		return "D30-"
	case domain.RewardDiscount50:
		return "D50-"
	}
	return ""
}

// Allocate hands one unused coupon to the account exclusively.
func (s *Service) Allocate(ctx context.Context, rewardType domain.RewardType, accountID int, validFor time.Duration) (*domain.Coupon, error) {
	if !rewardType.CouponBacked() {
		return nil, domain.ErrInvalidReward
	}
	coupon, err := s.repo.Allocate(ctx, rewardType, accountID, time.Now().Add(validFor))
	if err != nil {
		return nil, fmt.Errorf("allocate %s coupon: %w", rewardType, err)
	}
	if coupon == nil {
		zap.L().Warn("coupon pool exhausted", zap.String("reward_type", string(rewardType)))
		return nil, domain.ErrNoCouponsAvailable
	}
	return coupon, nil
}

// Return puts an assigned coupon back into the pool. Returning a coupon that
// is already unused is a no-op.
func (s *Service) Return(ctx context.Context, couponID int64) error {
	released, err := s.repo.Release(ctx, couponID)
	if err != nil {
		return fmt.Errorf("release coupon %d: %w", couponID, err)
	}
	if !released {
		zap.L().Debug("coupon already unused", zap.Int64("coupon_id", couponID))
	}
	return nil
}

func (s *Service) Release(ctx context.Context, actor domain.Actor, couponID int64) (*domain.Coupon, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	coupon, err := s.repo.Get(ctx, couponID)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, domain.ErrCouponNotFound
	}
	if coupon.Status != domain.CouponAssigned {
		return nil, domain.NewTransitionError("coupon", coupon.Status, domain.CouponUnused)
	}
	// A code already shown to its owner stays with them.
	delivered, err := s.repo.Delivered(ctx, couponID)
	if err != nil {
		return nil, fmt.Errorf("check coupon %d delivery: %w", couponID, err)
	}
	if delivered {
		return nil, domain.NewTransitionError("coupon", domain.ClaimFulfilled, domain.CouponUnused)
	}
	released, err := s.repo.Release(ctx, couponID)
	if err != nil {
		return nil, fmt.Errorf("release coupon %d: %w", couponID, err)
	}
	if !released {
		return nil, domain.NewTransitionError("coupon", domain.CouponAssigned, domain.CouponUnused)
	}
	zap.L().Info("coupon released", zap.Int("admin_id", actor.AccountID), zap.Int64("coupon_id", couponID))
	coupon.Status = domain.CouponUnused
	coupon.AssignedTo, coupon.AssignedAt, coupon.ExpiresAt = nil, nil, nil
	return coupon, nil
}

// Import adds codes to the pool of a coupon-backed reward type. Duplicates,
// within the batch or against the pool, are skipped, as are codes that carry
// the generated prefix but fail its check digit.
func (s *Service) Import(ctx context.Context, actor domain.Actor, rewardType domain.RewardType, codes []string) (int64, error) {
	if err := actor.RequireAdmin(); err != nil {
		return 0, err
	}
	if !rewardType.CouponBacked() {
		return 0, domain.ErrInvalidReward
	}
	prefix := CodePrefix(rewardType)
	seen := make(map[string]struct{}, len(codes))
	clean := make([]string, 0, len(codes))
	for _, raw := range codes {
		code, ok := validate.CouponCode(raw)
		if !ok {
			zap.L().Warn("skipping malformed coupon code", zap.String("code", raw))
			continue
		}
		if strings.HasPrefix(code, prefix) && !validate.GeneratedCoupon(prefix, code) {
			zap.L().Warn("skipping coupon code with bad check digit", zap.String("code", raw))
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		clean = append(clean, code)
	}
	if len(clean) == 0 {
		return 0, nil
	}
	inserted, err := s.repo.Import(ctx, rewardType, clean)
	if err != nil {
		return 0, fmt.Errorf("import %s coupons: %w", rewardType, err)
	}
	zap.L().Info("coupons imported", zap.String("reward_type", string(rewardType)),
		zap.Int("submitted", len(codes)), zap.Int64("inserted", inserted))
	return inserted, nil
}

// Generate creates count numeric codes carrying a Luhn check digit and
// imports them.
func (s *Service) Generate(ctx context.Context, actor domain.Actor, rewardType domain.RewardType, count int) (int64, error) {
	if err := actor.RequireAdmin(); err != nil {
		return 0, err
	}
	if count <= 0 || count > MaxGenerate {
		return 0, domain.ErrInvalidAmount
	}
	prefix := CodePrefix(rewardType)
	codes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		codes = append(codes, prefix+goluhn.Generate(generatedBodyLength))
	}
	return s.Import(ctx, actor, rewardType, codes)
}

// Inventory reports unused coupons for every coupon-backed type, including
// empty pools, and refreshes the availability gauge.
func (s *Service) Inventory(ctx context.Context) (map[domain.RewardType]int, error) {
	counts, err := s.repo.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}
	inventory := make(map[domain.RewardType]int, len(domain.CouponBackedTypes))
	for _, t := range domain.CouponBackedTypes {
		inventory[t] = counts[t]
		s.metrics.SetCouponsAvailable(string(t), counts[t])
	}
	return inventory, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor, rewardType domain.RewardType, status domain.CouponStatus, limit int) ([]domain.Coupon, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if rewardType != "" && !rewardType.CouponBacked() {
		return nil, domain.ErrInvalidReward
	}
	if status != "" && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, rewardType, status, limit)
}
