package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

const (
	referralAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	referralCodeLength = 10
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

// NewReferralCode returns a random code drawn from an alphabet without
// look-alike characters.
func NewReferralCode() (string, error) {
	return gonanoid.Generate(referralAlphabet, referralCodeLength)
}

const accountColumns = `account_id, balance, total_earned, total_spent, referral_code, signup_bonus_claimed, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.AccountID, &a.Balance, &a.TotalEarned, &a.TotalSpent, &a.ReferralCode,
		&a.SignupBonusClaimed, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAccount is idempotent: an existing row is returned unchanged.
func (r *Repository) CreateAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	code, err := NewReferralCode()
	if err != nil {
		return nil, fmt.Errorf("generate referral code: %w", err)
	}
	query := `
		INSERT INTO accounts (account_id, referral_code)
		VALUES ($1, $2)
		ON CONFLICT (account_id) DO UPDATE SET updated_at = accounts.updated_at
		RETURNING ` + accountColumns
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID, code))
	if err != nil {
		zap.L().Error("can't create account", zap.Int("account_id", accountID), zap.Error(err))
		return nil, pg.MapConstraint(err)
	}
	return account, nil
}

func (r *Repository) GetAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1`
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// LockAccount takes the row lock for the rest of the ambient transaction.
func (r *Repository) LockAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE`
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE referral_code = $1`
	account, err := scanAccount(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account by referral code", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// MarkSignupBonusClaimed flips the flag once. It reports false when the flag
// was already set or the account does not exist.
func (r *Repository) MarkSignupBonusClaimed(ctx context.Context, accountID int) (bool, error) {
	query := `
		UPDATE accounts
		SET signup_bonus_claimed = TRUE, updated_at = now()
		WHERE account_id = $1 AND signup_bonus_claimed = FALSE
	`
	tag, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't mark signup bonus", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Credit creates the account on first use and appends the earn entry.
func (r *Repository) Credit(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error) {
	code, err := NewReferralCode()
	if err != nil {
		return nil, fmt.Errorf("generate referral code: %w", err)
	}
	upsert := `
		INSERT INTO accounts (account_id, referral_code, balance, total_earned)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (account_id) DO UPDATE
		SET balance = accounts.balance + EXCLUDED.balance,
			total_earned = accounts.total_earned + EXCLUDED.total_earned,
			updated_at = now()
	`
	created := *entry
	created.Direction = domain.DirectionEarn
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, upsert, entry.AccountID, code, entry.Amount); err != nil {
			zap.L().Error("can't credit account", zap.Int("account_id", entry.AccountID), zap.Error(err))
			return pg.MapConstraint(err)
		}
		return r.appendEntry(ctx, &created)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Debit returns nil without touching the account when the balance does not
// cover the amount.
func (r *Repository) Debit(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error) {
	update := `
		UPDATE accounts
		SET balance = balance - $2,
			total_spent = total_spent + $2,
			updated_at = now()
		WHERE account_id = $1 AND balance >= $2
	`
	var debited *domain.Transaction
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, update, entry.AccountID, entry.Amount)
		if err != nil {
			zap.L().Error("can't debit account", zap.Int("account_id", entry.AccountID), zap.Error(err))
			return pg.MapConstraint(err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		spent := *entry
		spent.Direction = domain.DirectionSpend
		if err := r.appendEntry(ctx, &spent); err != nil {
			return err
		}
		debited = &spent
		return nil
	})
	if err != nil {
		return nil, err
	}
	return debited, nil
}

func (r *Repository) appendEntry(ctx context.Context, entry *domain.Transaction) error {
	query := `
		INSERT INTO ledger_transactions (account_id, amount, direction, source, source_reference, description)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.AccountID, entry.Amount, entry.Direction, entry.Source,
		entry.SourceReference, entry.Description).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return pg.MapConstraint(err)
	}
	return nil
}

func (r *Repository) History(ctx context.Context, accountID int, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT id, account_id, amount, direction, source, COALESCE(source_reference, ''), description, created_at
		FROM ledger_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, accountID, limit)
	if err != nil {
		zap.L().Error("can't get ledger history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.AccountID, &t.Amount, &t.Direction, &t.Source, &t.SourceReference,
			&t.Description, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		history = append(history, t)
	}
	return history, rows.Err()
}
