package referralrepo

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

const referralColumns = `id, referrer_account_id, referred_account_id, referred_email, status, coins_rewarded, created_at, qualified_at`

func scanReferral(row pgx.Row) (*domain.Referral, error) {
	var ref domain.Referral
	err := row.Scan(&ref.ID, &ref.ReferrerAccountID, &ref.ReferredAccountID, &ref.ReferredEmail, &ref.Status,
		&ref.CoinsRewarded, &ref.CreatedAt, &ref.QualifiedAt)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// Create links a referred account to its referrer. It returns nil when the
// referred account already has a referrer.
func (r *Repository) Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error) {
	query := `
		INSERT INTO referrals (referrer_account_id, referred_account_id, referred_email, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING ` + referralColumns
	created, err := scanReferral(r.db.QueryRow(ctx, query, referral.ReferrerAccountID, referral.ReferredAccountID,
		referral.ReferredEmail))
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, nil
		}
		zap.L().Error("can't create referral", zap.Error(err))
		return nil, pg.MapConstraint(err)
	}
	return created, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByReferred(ctx context.Context, accountID int) (*domain.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE referred_account_id = $1`
	return r.findOne(ctx, query, accountID)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Referral, error) {
	referral, err := scanReferral(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get referral", zap.Error(err))
		return nil, err
	}
	return referral, nil
}

// MarkQualified flips a pending referral once and records the payout.
func (r *Repository) MarkQualified(ctx context.Context, id int64, coins int64) (bool, error) {
	query := `
		UPDATE referrals
		SET status = 'qualified', coins_rewarded = $2, qualified_at = now()
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, coins)
	if err != nil {
		zap.L().Error("can't qualify referral", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByReferrer(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `
		SELECT ` + referralColumns + `
		FROM referrals
		WHERE referrer_account_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't list referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		referral, err := scanReferral(rows)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, *referral)
	}
	return referrals, rows.Err()
}
