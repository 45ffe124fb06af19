package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/pkg/auth"
)

var admin = domain.Actor{AccountID: 1, Admin: true}

type mocks struct {
	rewards   *MockRewards
	coupons   *MockCoupons
	follows   *MockFollows
	winners   *MockWinners
	referrals *MockReferrals
	ledger    *MockLedger
}

func NewMock(t *testing.T) (*AdminHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		rewards:   NewMockRewards(ctrl),
		coupons:   NewMockCoupons(ctrl),
		follows:   NewMockFollows(ctrl),
		winners:   NewMockWinners(ctrl),
		referrals: NewMockReferrals(ctrl),
		ledger:    NewMockLedger(ctrl),
	}
	return New(m.rewards, m.coupons, m.follows, m.winners, m.referrals, m.ledger), m
}

func request(method, target, id, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, admin.AccountID)
	ctx = context.WithValue(ctx, auth.AdminKey, true)
	return req.WithContext(ctx)
}

func TestAdminHandler_Rewards(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter)
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Full catalog",
			call: func(w http.ResponseWriter) {
				handler.GetRewards(w, request(http.MethodGet, "/api/admin/rewards", "", ""))
			},
			prepareMock: func() {
				m.rewards.EXPECT().ListRewards(gomock.Any(), false).Return([]domain.Reward{{ID: 1}, {ID: 2}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Create",
			call: func(w http.ResponseWriter) {
				handler.CreateReward(w, request(http.MethodPost, "/api/admin/rewards", "",
					`{"name":"Funded 10k","coin_cost":5000,"reward_type":"funded_account","is_enabled":true}`))
			},
			prepareMock: func() {
				m.rewards.EXPECT().CreateReward(gomock.Any(), admin, &domain.Reward{
					Name: "Funded 10k", CoinCost: 5000, RewardType: domain.RewardFundedAccount, IsEnabled: true,
				}).Return(&domain.Reward{ID: 3, Name: "Funded 10k", CoinCost: 5000, RewardType: domain.RewardFundedAccount}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Create invalid",
			call: func(w http.ResponseWriter) {
				handler.CreateReward(w, request(http.MethodPost, "/api/admin/rewards", "", `{"coin_cost":-1}`))
			},
			prepareMock: func() {
				m.rewards.EXPECT().CreateReward(gomock.Any(), admin, gomock.Any()).Return(nil, domain.ErrInvalidReward)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Update carries the path id",
			call: func(w http.ResponseWriter) {
				handler.UpdateReward(w, request(http.MethodPut, "/api/admin/rewards/3", "3",
					`{"name":"Funded 10k","coin_cost":4000,"reward_type":"funded_account"}`))
			},
			prepareMock: func() {
				m.rewards.EXPECT().UpdateReward(gomock.Any(), admin, &domain.Reward{
					ID: 3, Name: "Funded 10k", CoinCost: 4000, RewardType: domain.RewardFundedAccount,
				}).Return(&domain.Reward{ID: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Update unknown",
			call: func(w http.ResponseWriter) {
				handler.UpdateReward(w, request(http.MethodPut, "/api/admin/rewards/9", "9", `{"name":"x"}`))
			},
			prepareMock: func() {
				m.rewards.EXPECT().UpdateReward(gomock.Any(), admin, gomock.Any()).Return(nil, domain.ErrRewardNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Update bad id",
			call: func(w http.ResponseWriter) {
				handler.UpdateReward(w, request(http.MethodPut, "/api/admin/rewards/x", "x", `{}`))
			},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			tt.call(rr)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminHandler_Claims(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter)
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Pending by default",
			call: func(w http.ResponseWriter) {
				handler.GetClaims(w, request(http.MethodGet, "/api/admin/claims", "", ""))
			},
			prepareMock: func() {
				m.rewards.EXPECT().ListClaimsByStatus(gomock.Any(), admin, domain.ClaimPending, 0).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Explicit status and limit",
			call: func(w http.ResponseWriter) {
				handler.GetClaims(w, request(http.MethodGet, "/api/admin/claims?status=rejected&limit=5", "", ""))
			},
			prepareMock: func() {
				m.rewards.EXPECT().ListClaimsByStatus(gomock.Any(), admin, domain.ClaimRejected, 5).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown status",
			call: func(w http.ResponseWriter) {
				handler.GetClaims(w, request(http.MethodGet, "/api/admin/claims?status=lost", "", ""))
			},
			prepareMock: func() {
				m.rewards.EXPECT().ListClaimsByStatus(gomock.Any(), admin, domain.ClaimStatus("lost"), 0).
					Return(nil, domain.ErrInvalidStatus)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Fulfill with notes",
			call: func(w http.ResponseWriter) {
				handler.FulfillClaim(w, request(http.MethodPost, "/api/admin/claims/5/fulfill", "5", `{"notes":"sent"}`))
			},
			prepareMock: func() {
				m.rewards.EXPECT().Fulfill(gomock.Any(), admin, int64(5), "sent").
					Return(&domain.RewardClaim{ID: 5, Status: domain.ClaimFulfilled, AdminNotes: "sent"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reject without body",
			call: func(w http.ResponseWriter) {
				handler.RejectClaim(w, request(http.MethodPost, "/api/admin/claims/5/reject", "5", ""))
			},
			prepareMock: func() {
				m.rewards.EXPECT().Reject(gomock.Any(), admin, int64(5), "").
					Return(&domain.RewardClaim{ID: 5, Status: domain.ClaimRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reject a fulfilled claim",
			call: func(w http.ResponseWriter) {
				handler.RejectClaim(w, request(http.MethodPost, "/api/admin/claims/5/reject", "5", ""))
			},
			prepareMock: func() {
				m.rewards.EXPECT().Reject(gomock.Any(), admin, int64(5), "").
					Return(nil, domain.NewTransitionError("claim", domain.ClaimFulfilled, domain.ClaimRejected))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Malformed notes",
			call: func(w http.ResponseWriter) {
				handler.FulfillClaim(w, request(http.MethodPost, "/api/admin/claims/5/fulfill", "5", `{"notes":`))
			},
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			tt.call(rr)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminHandler_Coupons(t *testing.T) {
	handler, m := NewMock(t)

	t.Run("Import", func(t *testing.T) {
		m.coupons.EXPECT().Import(gomock.Any(), admin, domain.RewardDiscount30, []string{"A-1", "A-2"}).Return(int64(2), nil)
		rr := httptest.NewRecorder()

		handler.ImportCoupons(rr, request(http.MethodPost, "/api/admin/coupons/import", "",
			`{"reward_type":"discount_30","codes":["A-1","A-2"]}`))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var body dto.CountResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, int64(2), body.Inserted)
	})

	t.Run("Import into a non coupon type", func(t *testing.T) {
		m.coupons.EXPECT().Import(gomock.Any(), admin, domain.RewardGeneric, gomock.Any()).Return(int64(0), domain.ErrInvalidReward)
		rr := httptest.NewRecorder()

		handler.ImportCoupons(rr, request(http.MethodPost, "/api/admin/coupons/import", "",
			`{"reward_type":"generic","codes":["A-1"]}`))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Generate", func(t *testing.T) {
		m.coupons.EXPECT().Generate(gomock.Any(), admin, domain.RewardDiscount50, 100).Return(int64(100), nil)
		rr := httptest.NewRecorder()

		handler.GenerateCoupons(rr, request(http.MethodPost, "/api/admin/coupons/generate", "",
			`{"reward_type":"discount_50","count":100}`))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("List with filters", func(t *testing.T) {
		m.coupons.EXPECT().List(gomock.Any(), admin, domain.RewardDiscount30, domain.CouponAssigned, 10).
			Return([]domain.Coupon{{ID: 1, RewardType: domain.RewardDiscount30, Code: "A-1", Status: domain.CouponAssigned}}, nil)
		rr := httptest.NewRecorder()

		handler.GetCoupons(rr, request(http.MethodGet, "/api/admin/coupons?reward_type=discount_30&status=assigned&limit=10", "", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var body []dto.CouponResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "A-1", body[0].Code)
	})

	t.Run("Inventory", func(t *testing.T) {
		m.coupons.EXPECT().Inventory(gomock.Any()).
			Return(map[domain.RewardType]int{domain.RewardDiscount30: 4, domain.RewardDiscount50: 0}, nil)
		rr := httptest.NewRecorder()

		handler.GetInventory(rr, request(http.MethodGet, "/api/admin/coupons/inventory", "", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"discount_30":4,"discount_50":0}`, rr.Body.String())
	})

	t.Run("Release unassigned", func(t *testing.T) {
		m.coupons.EXPECT().Release(gomock.Any(), admin, int64(8)).
			Return(nil, domain.NewTransitionError("coupon", domain.CouponUnused, domain.CouponUnused))
		rr := httptest.NewRecorder()

		handler.ReleaseCoupon(rr, request(http.MethodPost, "/api/admin/coupons/8/release", "8", ""))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAdminHandler_SocialFollows(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter)
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Review queue",
			call: func(w http.ResponseWriter) {
				handler.GetSocialFollows(w, request(http.MethodGet, "/api/admin/social-follows", "", ""))
			},
			prepareMock: func() {
				m.follows.EXPECT().ListByStatus(gomock.Any(), admin, domain.FollowPending, 0).
					Return([]domain.SocialFollow{{ID: 1, Status: domain.FollowPending}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Approve",
			call: func(w http.ResponseWriter) {
				handler.ApproveSocialFollow(w, request(http.MethodPost, "/api/admin/social-follows/1/approve", "1", ""))
			},
			prepareMock: func() {
				m.follows.EXPECT().Approve(gomock.Any(), admin, int64(1)).
					Return(&domain.SocialFollow{ID: 1, Status: domain.FollowVerified}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Approve unknown",
			call: func(w http.ResponseWriter) {
				handler.ApproveSocialFollow(w, request(http.MethodPost, "/api/admin/social-follows/7/approve", "7", ""))
			},
			prepareMock: func() {
				m.follows.EXPECT().Approve(gomock.Any(), admin, int64(7)).Return(nil, domain.ErrSubmissionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Revoke after coins were spent",
			call: func(w http.ResponseWriter) {
				handler.RejectSocialFollow(w, request(http.MethodPost, "/api/admin/social-follows/1/reject", "1", ""))
			},
			prepareMock: func() {
				m.follows.EXPECT().Reject(gomock.Any(), admin, int64(1)).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			tt.call(rr)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminHandler_Winners(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter)
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Create",
			call: func(w http.ResponseWriter) {
				handler.CreateWinner(w, request(http.MethodPost, "/api/admin/winners", "",
					`{"account_id":17,"event_id":4,"submission_id":88,"position":1}`))
			},
			prepareMock: func() {
				m.winners.EXPECT().CreateWinner(gomock.Any(), admin, 17, int64(4), int64(88), 1).
					Return(&domain.WinnerClaim{ID: 1, AccountID: 17, Status: domain.WinnerUnclaimed}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate position",
			call: func(w http.ResponseWriter) {
				handler.CreateWinner(w, request(http.MethodPost, "/api/admin/winners", "",
					`{"account_id":18,"event_id":4,"submission_id":89,"position":1}`))
			},
			prepareMock: func() {
				m.winners.EXPECT().CreateWinner(gomock.Any(), admin, 18, int64(4), int64(89), 1).
					Return(nil, domain.ErrDuplicateWinner)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "List issued",
			call: func(w http.ResponseWriter) {
				handler.GetWinners(w, request(http.MethodGet, "/api/admin/winners?status=issued", "", ""))
			},
			prepareMock: func() {
				m.winners.EXPECT().ListByStatus(gomock.Any(), admin, domain.WinnerIssued, 0).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Issue",
			call: func(w http.ResponseWriter) {
				handler.IssueWinner(w, request(http.MethodPost, "/api/admin/winners/1/issue", "1", `{"notes":"shipped"}`))
			},
			prepareMock: func() {
				m.winners.EXPECT().Issue(gomock.Any(), admin, int64(1), "shipped").
					Return(&domain.WinnerClaim{ID: 1, Status: domain.WinnerIssued}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			tt.call(rr)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminHandler_GrantAndQualify(t *testing.T) {
	handler, m := NewMock(t)

	t.Run("Grant", func(t *testing.T) {
		m.ledger.EXPECT().Grant(gomock.Any(), admin, 17, int64(250), "Hackathon participation").
			Return(&domain.Transaction{ID: 40, AccountID: 17, Amount: 250, Direction: domain.DirectionEarn,
				Source: domain.SourceAdminGrant}, nil)
		rr := httptest.NewRecorder()

		handler.GrantCoins(rr, request(http.MethodPost, "/api/admin/accounts/17/grant", "17",
			`{"amount":250,"description":"Hackathon participation"}`))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var body dto.TransactionResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "admin_grant", body.Source)
	})

	t.Run("Grant to unknown account", func(t *testing.T) {
		m.ledger.EXPECT().Grant(gomock.Any(), admin, 99, int64(10), "").Return(nil, domain.ErrAccountNotFound)
		rr := httptest.NewRecorder()

		handler.GrantCoins(rr, request(http.MethodPost, "/api/admin/accounts/99/grant", "99", `{"amount":10}`))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Qualify", func(t *testing.T) {
		m.referrals.EXPECT().Qualify(gomock.Any(), admin, int64(3)).
			Return(&domain.Referral{ID: 3, Status: domain.ReferralQualified, CoinsRewarded: 50}, nil)
		rr := httptest.NewRecorder()

		handler.QualifyReferral(rr, request(http.MethodPost, "/api/admin/referrals/3/qualify", "3", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Qualify store failure", func(t *testing.T) {
		m.referrals.EXPECT().Qualify(gomock.Any(), admin, int64(3)).Return(nil, errors.New("timeout"))
		rr := httptest.NewRecorder()

		handler.QualifyReferral(rr, request(http.MethodPost, "/api/admin/referrals/3/qualify", "3", ""))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
