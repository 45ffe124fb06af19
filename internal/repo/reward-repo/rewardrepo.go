package rewardrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const rewardColumns = `id, name, description, coin_cost, reward_type, expiry_days, max_claims_per_user, is_enabled, created_at, updated_at`

func scanReward(row pgx.Row) (*domain.Reward, error) {
	var rw domain.Reward
	err := row.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.CoinCost, &rw.RewardType, &rw.ExpiryDays,
		&rw.MaxClaimsPerUser, &rw.IsEnabled, &rw.CreatedAt, &rw.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *Repository) CreateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	query := `
		INSERT INTO rewards (name, description, coin_cost, reward_type, expiry_days, max_claims_per_user, is_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + rewardColumns
	created, err := scanReward(r.db.QueryRow(ctx, query, reward.Name, reward.Description, reward.CoinCost,
		reward.RewardType, reward.ExpiryDays, reward.MaxClaimsPerUser, reward.IsEnabled))
	if err != nil {
		zap.L().Error("can't create reward", zap.Error(err))
		return nil, pg.MapConstraint(err)
	}
	return created, nil
}

// UpdateReward overwrites the definition. Existing claims keep their cost
// snapshot. It returns nil when the reward does not exist.
func (r *Repository) UpdateReward(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	query := `
		UPDATE rewards
		SET name = $2, description = $3, coin_cost = $4, reward_type = $5, expiry_days = $6,
			max_claims_per_user = $7, is_enabled = $8, updated_at = now()
		WHERE id = $1
		RETURNING ` + rewardColumns
	updated, err := scanReward(r.db.QueryRow(ctx, query, reward.ID, reward.Name, reward.Description,
		reward.CoinCost, reward.RewardType, reward.ExpiryDays, reward.MaxClaimsPerUser, reward.IsEnabled))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update reward", zap.Int("reward_id", reward.ID), zap.Error(err))
		return nil, pg.MapConstraint(err)
	}
	return updated, nil
}

func (r *Repository) GetReward(ctx context.Context, rewardID int) (*domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE id = $1`
	reward, err := scanReward(r.db.QueryRow(ctx, query, rewardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (r *Repository) ListRewards(ctx context.Context, enabledOnly bool) ([]domain.Reward, error) {
	query := `
		SELECT ` + rewardColumns + `
		FROM rewards
		WHERE is_enabled OR NOT $1
		ORDER BY coin_cost ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, enabledOnly)
	if err != nil {
		zap.L().Error("can't list rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, *reward)
	}
	return rewards, rows.Err()
}

const claimColumns = `id, account_id, reward_id, coins_spent, status, coupon_id, coupon_code, admin_notes, expires_at, created_at, updated_at`

func scanClaim(row pgx.Row) (*domain.RewardClaim, error) {
	var c domain.RewardClaim
	err := row.Scan(&c.ID, &c.AccountID, &c.RewardID, &c.CoinsSpent, &c.Status, &c.CouponID, &c.CouponCode,
		&c.AdminNotes, &c.ExpiresAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateClaim(ctx context.Context, claim *domain.RewardClaim) (*domain.RewardClaim, error) {
	query := `
		INSERT INTO reward_claims (account_id, reward_id, coins_spent, status, coupon_id, coupon_code, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + claimColumns
	created, err := scanClaim(r.db.QueryRow(ctx, query, claim.AccountID, claim.RewardID, claim.CoinsSpent,
		claim.Status, claim.CouponID, claim.CouponCode, claim.ExpiresAt))
	if err != nil {
		zap.L().Error("can't create reward claim", zap.Error(err))
		return nil, pg.MapConstraint(err)
	}
	return created, nil
}

// LockClaim reads the claim and holds its row lock for the rest of the
// ambient transaction.
func (r *Repository) LockClaim(ctx context.Context, claimID int64) (*domain.RewardClaim, error) {
	query := `SELECT ` + claimColumns + ` FROM reward_claims WHERE id = $1 FOR UPDATE`
	claim, err := scanClaim(r.db.QueryRow(ctx, query, claimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock reward claim", zap.Error(err))
		return nil, err
	}
	return claim, nil
}

// TransitionClaim moves the claim from one status to another and reports
// false when the claim was not in the expected status.
func (r *Repository) TransitionClaim(ctx context.Context, claimID int64, from, to domain.ClaimStatus, notes string) (bool, error) {
	query := `
		UPDATE reward_claims
		SET status = $3, admin_notes = $4, updated_at = now()
		WHERE id = $1 AND status = $2
	`
	tag, err := r.db.Exec(ctx, query, claimID, from, to, notes)
	if err != nil {
		zap.L().Error("can't update reward claim", zap.Int64("claim_id", claimID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CountClaims counts the claims of a reward by an account that still hold
// their coins. Rejected claims were refunded and do not count.
func (r *Repository) CountClaims(ctx context.Context, accountID, rewardID int) (int, error) {
	query := `
		SELECT count(*)
		FROM reward_claims
		WHERE account_id = $1 AND reward_id = $2 AND status <> 'rejected'
	`
	var n int
	if err := r.db.QueryRow(ctx, query, accountID, rewardID).Scan(&n); err != nil {
		zap.L().Error("can't count reward claims", zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) ListClaims(ctx context.Context, accountID int) ([]domain.RewardClaim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM reward_claims
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
	`
	return r.listClaims(ctx, query, accountID)
}

func (r *Repository) ListClaimsByStatus(ctx context.Context, status domain.ClaimStatus, limit int) ([]domain.RewardClaim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM reward_claims
		WHERE status = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2
	`
	return r.listClaims(ctx, query, status, limit)
}

func (r *Repository) listClaims(ctx context.Context, query string, args ...any) ([]domain.RewardClaim, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list reward claims", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var claims []domain.RewardClaim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			zap.L().Error("can't scan reward claim row", zap.Error(err))
			return nil, err
		}
		claims = append(claims, *claim)
	}
	return claims, rows.Err()
}
