package couponrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const couponColumns = `id, reward_type, coupon_code, status, assigned_to, assigned_at, expires_at, created_at`

func scanCoupon(row pgx.Row) (*domain.Coupon, error) {
	var c domain.Coupon
	err := row.Scan(&c.ID, &c.RewardType, &c.Code, &c.Status, &c.AssignedTo, &c.AssignedAt, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Import inserts the codes that are not in the pool yet and returns how many
// were added.
func (r *Repository) Import(ctx context.Context, rewardType domain.RewardType, codes []string) (int64, error) {
	query := `
		INSERT INTO coupon_pool (reward_type, coupon_code)
		SELECT $1, code FROM unnest($2::text[]) AS code
		ON CONFLICT (coupon_code) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, rewardType, codes)
	if err != nil {
		zap.L().Error("can't import coupons", zap.String("reward_type", string(rewardType)), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Allocate assigns the oldest unused coupon of the type to the account. Rows
// locked by concurrent allocations are skipped, so two callers never receive
// the same coupon. It returns nil when the pool is empty.
func (r *Repository) Allocate(ctx context.Context, rewardType domain.RewardType, accountID int, expiresAt time.Time) (*domain.Coupon, error) {
	query := `
		UPDATE coupon_pool
		SET status = 'assigned', assigned_to = $2, assigned_at = now(), expires_at = $3
		WHERE id = (
			SELECT id FROM coupon_pool
			WHERE reward_type = $1 AND status = 'unused'
			ORDER BY id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + couponColumns
	coupon, err := scanCoupon(r.db.QueryRow(ctx, query, rewardType, accountID, expiresAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't allocate coupon", zap.String("reward_type", string(rewardType)), zap.Error(err))
		return nil, pg.MapConstraint(err)
	}
	return coupon, nil
}

// Release returns an assigned coupon to the pool and detaches it from the
// claim that held it. It reports false when the coupon was not assigned or a
// fulfilled claim already holds it.
func (r *Repository) Release(ctx context.Context, couponID int64) (bool, error) {
	release := `
		UPDATE coupon_pool
		SET status = 'unused', assigned_to = NULL, assigned_at = NULL, expires_at = NULL
		WHERE id = $1 AND status = 'assigned'
			AND NOT EXISTS (
				SELECT 1 FROM reward_claims WHERE coupon_id = $1 AND status = 'fulfilled'
			)
	`
	detach := `
		UPDATE reward_claims
		SET coupon_id = NULL, coupon_code = NULL, updated_at = now()
		WHERE coupon_id = $1
	`
	var released bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, release, couponID)
		if err != nil {
			zap.L().Error("can't release coupon", zap.Int64("coupon_id", couponID), zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		if _, err := r.db.Exec(ctx, detach, couponID); err != nil {
			zap.L().Error("can't detach coupon from claim", zap.Int64("coupon_id", couponID), zap.Error(err))
			return err
		}
		released = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return released, nil
}

// Delivered reports whether a fulfilled claim holds the coupon.
func (r *Repository) Delivered(ctx context.Context, couponID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reward_claims WHERE coupon_id = $1 AND status = 'fulfilled'
		)
	`
	var delivered bool
	if err := r.db.QueryRow(ctx, query, couponID).Scan(&delivered); err != nil {
		zap.L().Error("can't check coupon delivery", zap.Int64("coupon_id", couponID), zap.Error(err))
		return false, err
	}
	return delivered, nil
}

func (r *Repository) Get(ctx context.Context, couponID int64) (*domain.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupon_pool WHERE id = $1`
	coupon, err := scanCoupon(r.db.QueryRow(ctx, query, couponID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get coupon", zap.Error(err))
		return nil, err
	}
	return coupon, nil
}

// List filters by type and status; empty values match everything.
func (r *Repository) List(ctx context.Context, rewardType domain.RewardType, status domain.CouponStatus, limit int) ([]domain.Coupon, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupon_pool
		WHERE ($1::text = '' OR reward_type = $1) AND ($2::text = '' OR status = $2)
		ORDER BY id
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, rewardType, status, limit)
	if err != nil {
		zap.L().Error("can't list coupons", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			zap.L().Error("can't scan coupon row", zap.Error(err))
			return nil, err
		}
		coupons = append(coupons, *coupon)
	}
	return coupons, rows.Err()
}

func (r *Repository) CountAvailable(ctx context.Context) (map[domain.RewardType]int, error) {
	query := `
		SELECT reward_type, count(*)
		FROM coupon_pool
		WHERE status = 'unused'
		GROUP BY reward_type
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't count coupons", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.RewardType]int)
	for rows.Next() {
		var (
			rewardType domain.RewardType
			n          int
		)
		if err := rows.Scan(&rewardType, &n); err != nil {
			zap.L().Error("can't scan coupon count", zap.Error(err))
			return nil, err
		}
		counts[rewardType] = n
	}
	return counts, rows.Err()
}
