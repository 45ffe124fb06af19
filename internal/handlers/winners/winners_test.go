package winners

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/pkg/auth"
)

func NewMock(t *testing.T) (*WinnersHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestWinnersHandler_GetWinnings(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListMine(gomock.Any(), 5).Return([]domain.WinnerClaim{
		{ID: 2, AccountID: 5, EventID: 4, Position: 1, Status: domain.WinnerUnclaimed},
	}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/winners", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 5))
	rr := httptest.NewRecorder()

	handler.GetWinnings(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body []dto.WinnerResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "unclaimed", body[0].Status)
}

func TestWinnersHandler_SubmitClaimDetails(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Details accepted",
			id:   "2",
			body: `{"name":"Alice Smith","email":"alice@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SubmitClaimDetails(gomock.Any(), 5, int64(2), "Alice Smith", "alice@example.com").
					Return(&domain.WinnerClaim{ID: 2, AccountID: 5, Status: domain.WinnerPending,
						ClaimName: "Alice Smith", ClaimEmail: "alice@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Someone else's prize",
			id:   "2",
			body: `{"name":"Alice Smith","email":"alice@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SubmitClaimDetails(gomock.Any(), 5, int64(2), "Alice Smith", "alice@example.com").
					Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Already submitted",
			id:   "2",
			body: `{"name":"Alice Smith","email":"alice@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SubmitClaimDetails(gomock.Any(), 5, int64(2), "Alice Smith", "alice@example.com").
					Return(nil, domain.NewTransitionError("winner claim", domain.WinnerPending, domain.WinnerPending))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Missing email",
			id:   "2",
			body: `{"name":"Alice Smith"}`,
			prepareMock: func() {
				service.EXPECT().SubmitClaimDetails(gomock.Any(), 5, int64(2), "Alice Smith", "").
					Return(nil, domain.ErrInvalidClaimDetails)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Negative id",
			id:           "-1",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/winners/"+tt.id+"/claim", bytes.NewBufferString(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			req = req.WithContext(context.WithValue(ctx, auth.UserIDKey, 5))
			rr := httptest.NewRecorder()

			handler.SubmitClaimDetails(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
