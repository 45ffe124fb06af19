package intentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, intent *domain.ClaimIntent) error {
	query := `
		INSERT INTO claim_intents (id, account_id, reward_id, amount, status)
		VALUES ($1, $2, $3, $4, 'open')
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, intent.ID, intent.AccountID, intent.RewardID, intent.Amount).
		Scan(&intent.CreatedAt, &intent.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create claim intent", zap.Error(err))
		return err
	}
	intent.Status = domain.IntentOpen
	return nil
}

func (r *Repository) AttachCoupon(ctx context.Context, id uuid.UUID, couponID int64) error {
	query := `
		UPDATE claim_intents
		SET coupon_id = $2, updated_at = now()
		WHERE id = $1 AND status = 'open'
	`
	tag, err := r.db.Exec(ctx, query, id, couponID)
	if err != nil {
		zap.L().Error("can't attach coupon to intent", zap.Stringer("intent_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrIntentClosed
	}
	return nil
}

// Complete closes an open intent. It reports false when the intent was
// already closed by someone else.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE claim_intents
		SET status = 'completed', updated_at = now()
		WHERE id = $1 AND status = 'open'
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't complete claim intent", zap.Stringer("intent_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Compensate closes an open intent and returns the row as stored, coupon
// included. It returns nil when the intent was already closed.
func (r *Repository) Compensate(ctx context.Context, id uuid.UUID) (*domain.ClaimIntent, error) {
	query := `
		UPDATE claim_intents
		SET status = 'compensated', updated_at = now()
		WHERE id = $1 AND status = 'open'
		RETURNING id, account_id, reward_id, amount, coupon_id, status, created_at, updated_at
	`
	var i domain.ClaimIntent
	err := r.db.QueryRow(ctx, query, id).
		Scan(&i.ID, &i.AccountID, &i.RewardID, &i.Amount, &i.CouponID, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't compensate claim intent", zap.Stringer("intent_id", id), zap.Error(err))
		return nil, err
	}
	return &i, nil
}

// FindStale returns open intents last touched before cutoff, oldest first.
func (r *Repository) FindStale(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.ClaimIntent, error) {
	query := `
		SELECT id, account_id, reward_id, amount, coupon_id, status, created_at, updated_at
		FROM claim_intents
		WHERE status = 'open' AND updated_at < $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, cutoff, int(limit))
	if err != nil {
		zap.L().Error("can't get stale intents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var intents []domain.ClaimIntent
	for rows.Next() {
		var i domain.ClaimIntent
		err := rows.Scan(&i.ID, &i.AccountID, &i.RewardID, &i.Amount, &i.CouponID, &i.Status, &i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan intent row", zap.Error(err))
			return nil, err
		}
		intents = append(intents, i)
	}
	return intents, rows.Err()
}

func (r *Repository) CountOpen(ctx context.Context, accountID, rewardID int) (int, error) {
	query := `
		SELECT count(*)
		FROM claim_intents
		WHERE account_id = $1 AND reward_id = $2 AND status = 'open'
	`
	var n int
	if err := r.db.QueryRow(ctx, query, accountID, rewardID).Scan(&n); err != nil {
		zap.L().Error("can't count open intents", zap.Error(err))
		return 0, err
	}
	return n, nil
}
