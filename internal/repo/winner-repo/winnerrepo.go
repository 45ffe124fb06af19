package winnerrepo

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

const winnerColumns = `id, account_id, event_id, submission_id, position, status, claim_name, claim_email, admin_notes, created_at, claimed_at, issued_at`

func scanWinner(row pgx.Row) (*domain.WinnerClaim, error) {
	var w domain.WinnerClaim
	err := row.Scan(&w.ID, &w.AccountID, &w.EventID, &w.SubmissionID, &w.Position, &w.Status, &w.ClaimName,
		&w.ClaimEmail, &w.AdminNotes, &w.CreatedAt, &w.ClaimedAt, &w.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create stores an unclaimed prize. It returns nil when the event position is
// already taken.
func (r *Repository) Create(ctx context.Context, winner *domain.WinnerClaim) (*domain.WinnerClaim, error) {
	query := `
		INSERT INTO winner_claims (account_id, event_id, submission_id, position, status)
		VALUES ($1, $2, $3, $4, 'unclaimed')
		RETURNING ` + winnerColumns
	created, err := scanWinner(r.db.QueryRow(ctx, query, winner.AccountID, winner.EventID, winner.SubmissionID, winner.Position))
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, nil
		}
		zap.L().Error("can't create winner claim", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.WinnerClaim, error) {
	query := `SELECT ` + winnerColumns + ` FROM winner_claims WHERE id = $1`
	winner, err := scanWinner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get winner claim", zap.Error(err))
		return nil, err
	}
	return winner, nil
}

// SubmitDetails moves an unclaimed prize owned by accountID to pending.
func (r *Repository) SubmitDetails(ctx context.Context, id int64, accountID int, name, email string) (bool, error) {
	query := `
		UPDATE winner_claims
		SET status = 'pending', claim_name = $3, claim_email = $4, claimed_at = now()
		WHERE id = $1 AND account_id = $2 AND status = 'unclaimed'
	`
	tag, err := r.db.Exec(ctx, query, id, accountID, name, email)
	if err != nil {
		zap.L().Error("can't submit winner details", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Issue(ctx context.Context, id int64, notes string) (bool, error) {
	query := `
		UPDATE winner_claims
		SET status = 'issued', admin_notes = $2, issued_at = now()
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id, notes)
	if err != nil {
		zap.L().Error("can't issue winner claim", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID int) ([]domain.WinnerClaim, error) {
	query := `
		SELECT ` + winnerColumns + `
		FROM winner_claims
		WHERE account_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, accountID)
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.WinnerStatus, limit int) ([]domain.WinnerClaim, error) {
	query := `
		SELECT ` + winnerColumns + `
		FROM winner_claims
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	return r.list(ctx, query, status, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WinnerClaim, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list winner claims", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var winners []domain.WinnerClaim
	for rows.Next() {
		winner, err := scanWinner(rows)
		if err != nil {
			zap.L().Error("can't scan winner claim row", zap.Error(err))
			return nil, err
		}
		winners = append(winners, *winner)
	}
	return winners, rows.Err()
}
