package referralservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

type mocks struct {
	repo     *MockRepo
	accounts *MockAccounts
	ledger   *MockLedger
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:     NewMockRepo(ctrl),
		accounts: NewMockAccounts(ctrl),
		ledger:   NewMockLedger(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.repo, m.accounts, m.ledger, txManager, 50), m
}

func TestService_Attach(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		code          string
		prepareMock   func(m mocks)
		expectNil     bool
		expectedError error
	}{
		{
			name: "Known code creates pending referral",
			code: " abcd2345ef ",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().FindByReferralCode(ctx, "ABCD2345EF").Return(&domain.Account{AccountID: 1}, nil)
				m.repo.EXPECT().Create(ctx, &domain.Referral{ReferrerAccountID: 1, ReferredAccountID: 2, ReferredEmail: "new@example.com"}).
					Return(&domain.Referral{ID: 1, Status: domain.ReferralPending}, nil)
			},
		},
		{
			name:        "Empty code ignored",
			code:        "",
			prepareMock: func(m mocks) {},
			expectNil:   true,
		},
		{
			name: "Unknown code ignored",
			code: "NOPE",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().FindByReferralCode(ctx, "NOPE").Return(nil, nil)
			},
			expectNil: true,
		},
		{
			name: "Own code rejected",
			code: "MINE",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().FindByReferralCode(ctx, "MINE").Return(&domain.Account{AccountID: 2}, nil)
			},
			expectedError: domain.ErrSelfReferral,
		},
		{
			name: "Second referrer rejected",
			code: "OTHER",
			prepareMock: func(m mocks) {
				m.accounts.EXPECT().FindByReferralCode(ctx, "OTHER").Return(&domain.Account{AccountID: 3}, nil)
				m.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, nil)
			},
			expectedError: domain.ErrAlreadyReferred,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			referral, err := service.Attach(ctx, 2, "new@example.com", tt.code)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, referral)
			} else {
				assert.Equal(t, domain.ReferralPending, referral.Status)
			}
		})
	}
}

func TestService_Qualify(t *testing.T) {
	ctx := context.Background()
	admin := domain.Actor{AccountID: 99, Admin: true}
	pending := func() *domain.Referral {
		return &domain.Referral{ID: 4, ReferrerAccountID: 1, ReferredAccountID: 2, Status: domain.ReferralPending}
	}

	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name: "Pending referral pays the referrer",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(4)).Return(pending(), nil)
				m.repo.EXPECT().MarkQualified(gomock.Any(), int64(4), int64(50)).Return(true, nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(50), domain.SourceReferral, "referral:4", "Referral bonus").
					Return(&domain.Transaction{ID: 1}, nil)
			},
		},
		{
			name: "Already qualified is a no-op",
			prepareMock: func(m mocks) {
				referral := pending()
				referral.Status = domain.ReferralQualified
				m.repo.EXPECT().Get(gomock.Any(), int64(4)).Return(referral, nil)
			},
		},
		{
			name: "Concurrent qualification credits once",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(4)).Return(pending(), nil)
				m.repo.EXPECT().MarkQualified(gomock.Any(), int64(4), int64(50)).Return(false, nil)
			},
		},
		{
			name: "Unknown referral",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(4)).Return(nil, nil)
			},
			expectedError: domain.ErrReferralNotFound,
		},
		{
			name: "Credit failure propagates",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().Get(gomock.Any(), int64(4)).Return(pending(), nil)
				m.repo.EXPECT().MarkQualified(gomock.Any(), int64(4), int64(50)).Return(true, nil)
				m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(50), domain.SourceReferral, gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			_, err := service.Qualify(ctx, admin, 4)
			if tt.expectedError != nil {
				if errors.Is(err, tt.expectedError) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("Non-admin refused", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Qualify(ctx, domain.Actor{AccountID: 1}, 4)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestService_QualifyReferred(t *testing.T) {
	ctx := context.Background()

	t.Run("Account without referrer", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByReferred(gomock.Any(), 2).Return(nil, nil)

		referral, err := service.QualifyReferred(ctx, 2)
		assert.NoError(t, err)
		assert.Nil(t, referral)
	})

	t.Run("Pending referral qualified", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByReferred(gomock.Any(), 2).
			Return(&domain.Referral{ID: 4, ReferrerAccountID: 1, ReferredAccountID: 2, Status: domain.ReferralPending}, nil)
		m.repo.EXPECT().MarkQualified(gomock.Any(), int64(4), int64(50)).Return(true, nil)
		m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(50), domain.SourceReferral, "referral:4", gomock.Any()).
			Return(&domain.Transaction{}, nil)

		referral, err := service.QualifyReferred(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReferralQualified, referral.Status)
		assert.Equal(t, int64(50), referral.CoinsRewarded)
	})
}
