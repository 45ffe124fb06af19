package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func passThrough(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

var accountRowColumns = []string{"account_id", "balance", "total_earned", "total_spent", "referral_code",
	"signup_bonus_claimed", "created_at", "updated_at"}

func TestNewReferralCode(t *testing.T) {
	code, err := NewReferralCode()
	assert.NoError(t, err)
	assert.Len(t, code, referralCodeLength)
	assert.Regexp(t, "^["+referralAlphabet+"]+$", code)
}

func TestRepository_CreateAccount(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.Account
	}{
		{
			name: "Account created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (account_id, referral_code) VALUES ($1, $2) ON CONFLICT (account_id)`)).
					WithArgs(7, pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows(accountRowColumns).AddRow(7, int64(0), int64(0), int64(0), "ABCDEFGH23", false, now, now))
			},
			result: &domain.Account{AccountID: 7, ReferralCode: "ABCDEFGH23", CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Referral code collision",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (account_id, referral_code)`)).
					WithArgs(7, pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateAccount(context.Background(), 7)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAccount(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Account found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE account_id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(accountRowColumns).AddRow(1, int64(70), int64(100), int64(30), "CODE234567", true, now, now))
			},
			result: &domain.Account{AccountID: 1, Balance: 70, TotalEarned: 100, TotalSpent: 30,
				ReferralCode: "CODE234567", SignupBonusClaimed: true, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Account missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE account_id = $1`)).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE account_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetAccount(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_LockAccount(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE account_id = $1 FOR UPDATE`)).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(accountRowColumns).AddRow(3, int64(5), int64(5), int64(0), "LOCK234567", false, now, now))

	account, err := repo.LockAccount(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), account.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByReferralCode(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE referral_code = $1`)).
		WithArgs("NOPE").
		WillReturnError(pgx.ErrNoRows)

	account, err := repo.FindByReferralCode(context.Background(), "NOPE")
	assert.NoError(t, err)
	assert.Nil(t, account)
}

func TestRepository_MarkSignupBonusClaimed(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name     string
		affected int64
		result   bool
	}{
		{name: "First claim", affected: 1, result: true},
		{name: "Already claimed", affected: 0, result: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(`SET signup_bonus_claimed = TRUE`)).
				WithArgs(1).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			ok, err := repo.MarkSignupBonusClaimed(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, tt.result, ok)
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Credit upserts account and appends entry",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (account_id) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance`)).
					WithArgs(1, pgxmock.AnyArg(), int64(50)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ledger_transactions`)).
					WithArgs(1, int64(50), domain.DirectionEarn, domain.SourceReferral, "referral:9", "Referral bonus").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))
			},
		},
		{
			name: "Append failure aborts",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts`)).
					WithArgs(1, pgxmock.AnyArg(), int64(50)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ledger_transactions`)).
					WithArgs(1, int64(50), domain.DirectionEarn, domain.SourceReferral, "referral:9", "Referral bonus").
					WillReturnError(&pgconn.PgError{Code: "23514"})
			},
			expectErr: domain.ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entry := &domain.Transaction{AccountID: 1, Amount: 50, Source: domain.SourceReferral,
				SourceReference: "referral:9", Description: "Referral bonus"}
			result, err := repo.Credit(context.Background(), entry)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(11), result.ID)
			assert.Equal(t, domain.DirectionEarn, result.Direction)
			assert.Equal(t, now, result.CreatedAt)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Debit(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		debited   bool
	}{
		{
			name: "Sufficient balance",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(regexp.QuoteMeta(`WHERE account_id = $1 AND balance >= $2`)).
					WithArgs(1, int64(30)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ledger_transactions`)).
					WithArgs(1, int64(30), domain.DirectionSpend, domain.SourceRewardClaim, "reward:2", "").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), now))
			},
			debited: true,
		},
		{
			name: "Insufficient balance leaves no entry",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(regexp.QuoteMeta(`WHERE account_id = $1 AND balance >= $2`)).
					WithArgs(1, int64(30)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				passThrough(tx)
				mock.ExpectExec(regexp.QuoteMeta(`WHERE account_id = $1 AND balance >= $2`)).
					WithArgs(1, int64(30)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			entry := &domain.Transaction{AccountID: 1, Amount: 30, Source: domain.SourceRewardClaim, SourceReference: "reward:2"}
			result, err := repo.Debit(context.Background(), entry)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.debited {
				assert.Equal(t, domain.DirectionSpend, result.Direction)
				assert.Equal(t, int64(12), result.ID)
			} else {
				assert.Nil(t, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_History(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "account_id", "amount", "direction", "source", "source_reference", "description", "created_at"}).
		AddRow(int64(2), 1, int64(30), domain.DirectionSpend, domain.SourceRewardClaim, "reward:1", "Claimed reward", now).
		AddRow(int64(1), 1, int64(100), domain.DirectionEarn, domain.SourceSignup, "", "Signup bonus", now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, id DESC LIMIT $2`)).
		WithArgs(1, 20).
		WillReturnRows(rows)

	history, err := repo.History(context.Background(), 1, 20)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, int64(2), history[0].ID)
	assert.Equal(t, domain.SourceSignup, history[1].Source)
	assert.NoError(t, mock.ExpectationsWereMet())
}
