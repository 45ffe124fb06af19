package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/pkg/auth"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

func NewMock(t *testing.T) (*RewardsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func request(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func TestRewardsHandler_GetRewards(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListRewards(gomock.Any(), true).Return([]domain.Reward{
		{ID: 1, Name: "30% discount", CoinCost: 500, RewardType: domain.RewardDiscount30, IsEnabled: true},
	}, nil)
	rr := httptest.NewRecorder()

	handler.GetRewards(rr, request(http.MethodGet, "/api/rewards", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body []dto.RewardResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "discount_30", body[0].RewardType)
}

func TestRewardsHandler_ClaimReward(t *testing.T) {
	handler, service := NewMock(t)
	code := "D30-483920174625"

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Coupon issued",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, 3).Return(&domain.RewardClaim{
					ID: 10, AccountID: 1, RewardID: 3, CoinsSpent: 500, Status: domain.ClaimFulfilled, CouponCode: &code,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Insufficient balance",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, 3).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: domain.ErrInsufficientBalance.Error(),
		},
		{
			name: "Pool exhausted",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, 3).Return(nil, domain.ErrNoCouponsAvailable)
			},
			expectedCode:  http.StatusGone,
			expectedError: domain.ErrNoCouponsAvailable.Error(),
		},
		{
			name: "Limit reached",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, 3).Return(nil, domain.ErrClaimLimitReached)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrClaimLimitReached.Error(),
		},
		{
			name: "Unknown reward",
			id:   "99",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, 99).Return(nil, domain.ErrRewardNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrRewardNotFound.Error(),
		},
		{
			name:          "Bad id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid id",
		},
		{
			name: "Integrity violation is a 500",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), 1, 3).Return(nil, errors.Join(domain.ErrIntegrityViolation, errors.New("balance mismatch")))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.ClaimReward(rr, request(http.MethodPost, "/api/rewards/"+tt.id+"/claim", tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError == "" {
				var body dto.ClaimResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, code, body.CouponCode)
				return
			}
			var resp utils.Response
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

func TestRewardsHandler_GetClaims(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListClaims(gomock.Any(), 1).Return([]domain.RewardClaim{
		{ID: 10, AccountID: 1, RewardID: 4, Status: domain.ClaimPending},
	}, nil)
	rr := httptest.NewRecorder()

	handler.GetClaims(rr, request(http.MethodGet, "/api/rewards/claims", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body []dto.ClaimResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "pending", body[0].Status)
	assert.Empty(t, body[0].CouponCode)
}
