package referralrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/rewardhub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

var referralRowColumns = []string{"id", "referrer_account_id", "referred_account_id", "referred_email", "status",
	"coins_rewarded", "created_at", "qualified_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	referral := &domain.Referral{ReferrerAccountID: 1, ReferredAccountID: 2, ReferredEmail: "new@example.com"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		created   bool
	}{
		{
			name: "Referral attached",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO referrals (referrer_account_id, referred_account_id, referred_email, status)`)).
					WithArgs(1, 2, "new@example.com").
					WillReturnRows(pgxmock.NewRows(referralRowColumns).
						AddRow(int64(1), 1, 2, "new@example.com", domain.ReferralPending, int64(0), now, (*time.Time)(nil)))
			},
			created: true,
		},
		{
			name: "Referred account already linked",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO referrals`)).
					WithArgs(1, 2, "new@example.com").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			name: "Self referral check",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO referrals`)).
					WithArgs(1, 2, "new@example.com").
					WillReturnError(&pgconn.PgError{Code: "23514"})
			},
			expectErr: domain.ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), referral)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.created, created != nil)
		})
	}
}

func TestRepository_FindByReferred(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM referrals WHERE referred_account_id = $1`)).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(referralRowColumns).
			AddRow(int64(1), 1, 2, "new@example.com", domain.ReferralPending, int64(0), now, (*time.Time)(nil)))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM referrals WHERE referred_account_id = $1`)).
		WithArgs(3).
		WillReturnError(pgx.ErrNoRows)

	referral, err := repo.FindByReferred(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 1, referral.ReferrerAccountID)

	referral, err = repo.FindByReferred(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, referral)
}

func TestRepository_MarkQualified(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name     string
		affected int64
		moved    bool
	}{
		{name: "Pending referral qualified", affected: 1, moved: true},
		{name: "Already qualified", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'pending'`)).
				WithArgs(int64(1), int64(50)).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			moved, err := repo.MarkQualified(context.Background(), 1, 50)
			assert.NoError(t, err)
			assert.Equal(t, tt.moved, moved)
		})
	}
}

func TestRepository_ListByReferrer(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE referrer_account_id = $1`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(referralRowColumns).
			AddRow(int64(2), 1, 3, "b@example.com", domain.ReferralQualified, int64(50), now, &now).
			AddRow(int64(1), 1, 2, "a@example.com", domain.ReferralPending, int64(0), now, (*time.Time)(nil)))

	referrals, err := repo.ListByReferrer(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, referrals, 2)
	assert.Equal(t, int64(50), referrals[0].CoinsRewarded)
}
