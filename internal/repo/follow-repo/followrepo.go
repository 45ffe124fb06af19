package followrepo

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

const followColumns = `id, account_id, platform, coins_earned, status, screenshot_reference, claimed_at, reviewed_at`

func scanFollow(row pgx.Row) (*domain.SocialFollow, error) {
	var f domain.SocialFollow
	err := row.Scan(&f.ID, &f.AccountID, &f.Platform, &f.CoinsEarned, &f.Status, &f.ScreenshotReference,
		&f.ClaimedAt, &f.ReviewedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Submit records a pending submission. A previously rejected row for the same
// platform is reopened with the new snapshot; for any other existing row it
// returns nil.
func (r *Repository) Submit(ctx context.Context, follow *domain.SocialFollow) (*domain.SocialFollow, error) {
	query := `
		INSERT INTO social_follows (account_id, platform, coins_earned, status, screenshot_reference)
		VALUES ($1, $2, $3, 'pending', $4)
		ON CONFLICT (account_id, platform) DO UPDATE
		SET coins_earned = EXCLUDED.coins_earned,
			status = 'pending',
			screenshot_reference = EXCLUDED.screenshot_reference,
			claimed_at = now(),
			reviewed_at = NULL
		WHERE social_follows.status = 'rejected'
		RETURNING ` + followColumns
	submitted, err := scanFollow(r.db.QueryRow(ctx, query, follow.AccountID, follow.Platform, follow.CoinsEarned,
		follow.ScreenshotReference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't submit social follow", zap.Error(err))
		return nil, pg.MapConstraint(err)
	}
	return submitted, nil
}

// Lock reads the submission and holds its row lock for the rest of the
// ambient transaction.
func (r *Repository) Lock(ctx context.Context, id int64) (*domain.SocialFollow, error) {
	query := `SELECT ` + followColumns + ` FROM social_follows WHERE id = $1 FOR UPDATE`
	follow, err := scanFollow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock social follow", zap.Error(err))
		return nil, err
	}
	return follow, nil
}

// Transition moves the submission between review states and stamps the
// review time. It reports false when the row was not in the from state.
func (r *Repository) Transition(ctx context.Context, id int64, from, to domain.FollowStatus) (bool, error) {
	query := `
		UPDATE social_follows
		SET status = $3, reviewed_at = now()
		WHERE id = $1 AND status = $2
	`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		zap.L().Error("can't update social follow", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int) ([]domain.SocialFollow, error) {
	query := `
		SELECT ` + followColumns + `
		FROM social_follows
		WHERE account_id = $1
		ORDER BY claimed_at DESC
	`
	return r.list(ctx, query, accountID)
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.FollowStatus, limit int) ([]domain.SocialFollow, error) {
	query := `
		SELECT ` + followColumns + `
		FROM social_follows
		WHERE status = $1
		ORDER BY claimed_at ASC
		LIMIT $2
	`
	return r.list(ctx, query, status, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.SocialFollow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list social follows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var follows []domain.SocialFollow
	for rows.Next() {
		follow, err := scanFollow(rows)
		if err != nil {
			zap.L().Error("can't scan social follow row", zap.Error(err))
			return nil, err
		}
		follows = append(follows, *follow)
	}
	return follows, rows.Err()
}
