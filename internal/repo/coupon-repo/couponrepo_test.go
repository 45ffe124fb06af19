package couponrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

var couponRowColumns = []string{"id", "reward_type", "coupon_code", "status", "assigned_to", "assigned_at", "expires_at", "created_at"}

func TestRepository_Import(t *testing.T) {
	repo, mock, _ := NewMock(t)
	codes := []string{"AAA", "BBB", "AAA"}

	mock.ExpectExec(regexp.QuoteMeta(`SELECT $1, code FROM unnest($2::text[]) AS code ON CONFLICT (coupon_code) DO NOTHING`)).
		WithArgs(domain.RewardDiscount30, codes).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	n, err := repo.Import(context.Background(), domain.RewardDiscount30, codes)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Allocate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	expires := now.Add(30 * 24 * time.Hour)
	owner := 4

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Coupon
	}{
		{
			name: "Oldest unused coupon assigned",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE SKIP LOCKED`)).
					WithArgs(domain.RewardDiscount50, 4, expires).
					WillReturnRows(pgxmock.NewRows(couponRowColumns).
						AddRow(int64(9), domain.RewardDiscount50, "HALF-1", domain.CouponAssigned, &owner, &now, &expires, now))
			},
			result: &domain.Coupon{ID: 9, RewardType: domain.RewardDiscount50, Code: "HALF-1", Status: domain.CouponAssigned,
				AssignedTo: &owner, AssignedAt: &now, ExpiresAt: &expires, CreatedAt: now},
		},
		{
			name: "Pool empty",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE SKIP LOCKED`)).
					WithArgs(domain.RewardDiscount50, 4, expires).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE SKIP LOCKED`)).
					WithArgs(domain.RewardDiscount50, 4, expires).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Allocate(context.Background(), domain.RewardDiscount50, 4, expires)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Release(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		released  bool
	}{
		{
			name: "Assigned coupon released and detached",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'assigned'`)).
						WithArgs(int64(9)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta(`UPDATE reward_claims SET coupon_id = NULL, coupon_code = NULL`)).
						WithArgs(int64(9)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			released: true,
		},
		{
			name: "Coupon not assigned",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'assigned'`)).
						WithArgs(int64(9)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
		},
		{
			name: "Detach failure",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'assigned'`)).
						WithArgs(int64(9)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectExec(regexp.QuoteMeta(`UPDATE reward_claims SET coupon_id = NULL, coupon_code = NULL`)).
						WithArgs(int64(9)).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			released, err := repo.Release(context.Background(), 9)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.released, released)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Release_KeepsDeliveredCoupon(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectExec(regexp.QuoteMeta(`SELECT 1 FROM reward_claims WHERE coupon_id = $1 AND status = 'fulfilled'`)).
			WithArgs(int64(9)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		return fn(ctx)
	})

	released, err := repo.Release(context.Background(), 9)
	assert.NoError(t, err)
	assert.False(t, released)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delivered(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM reward_claims WHERE coupon_id = $1 AND status = 'fulfilled'`)).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM reward_claims`)).
		WithArgs(int64(10)).
		WillReturnError(errors.New("database error"))

	delivered, err := repo.Delivered(context.Background(), 9)
	assert.NoError(t, err)
	assert.True(t, delivered)

	_, err = repo.Delivered(context.Background(), 10)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM coupon_pool WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnError(pgx.ErrNoRows)

	coupon, err := repo.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, coupon)
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE ($1::text = '' OR reward_type = $1) AND ($2::text = '' OR status = $2)`)).
		WithArgs(domain.RewardDiscount30, domain.CouponStatus(""), 50).
		WillReturnRows(pgxmock.NewRows(couponRowColumns).
			AddRow(int64(1), domain.RewardDiscount30, "A1", domain.CouponUnused, (*int)(nil), (*time.Time)(nil), (*time.Time)(nil), now).
			AddRow(int64(2), domain.RewardDiscount30, "A2", domain.CouponUnused, (*int)(nil), (*time.Time)(nil), (*time.Time)(nil), now))

	coupons, err := repo.List(context.Background(), domain.RewardDiscount30, "", 50)
	assert.NoError(t, err)
	assert.Len(t, coupons, 2)
	assert.Nil(t, coupons[0].AssignedTo)
	assert.Equal(t, "A2", coupons[1].Code)
}

func TestRepository_CountAvailable(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY reward_type`)).
		WillReturnRows(pgxmock.NewRows([]string{"reward_type", "count"}).
			AddRow(domain.RewardDiscount30, 12).
			AddRow(domain.RewardDiscount50, 3))

	counts, err := repo.CountAvailable(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[domain.RewardType]int{domain.RewardDiscount30: 12, domain.RewardDiscount50: 3}, counts)
}
