// Package respond maps engine outcomes onto HTTP responses.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/pkg/auth"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

var statuses = []struct {
	err    error
	status int
}{
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
	{domain.ErrNoCouponsAvailable, http.StatusGone},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},

	{domain.ErrClaimLimitReached, http.StatusConflict},
	{domain.ErrAlreadySubmitted, http.StatusConflict},
	{domain.ErrSignupBonusClaimed, http.StatusConflict},
	{domain.ErrInvalidTransition, http.StatusConflict},
	{domain.ErrRewardDisabled, http.StatusConflict},
	{domain.ErrDuplicateWinner, http.StatusConflict},
	{domain.ErrAlreadyReferred, http.StatusConflict},
	{domain.ErrLoginTaken, http.StatusConflict},

	{domain.ErrAccountNotFound, http.StatusNotFound},
	{domain.ErrRewardNotFound, http.StatusNotFound},
	{domain.ErrClaimNotFound, http.StatusNotFound},
	{domain.ErrCouponNotFound, http.StatusNotFound},
	{domain.ErrSubmissionNotFound, http.StatusNotFound},
	{domain.ErrWinnerNotFound, http.StatusNotFound},
	{domain.ErrReferralNotFound, http.StatusNotFound},

	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrInvalidSource, http.StatusUnprocessableEntity},
	{domain.ErrInvalidReward, http.StatusUnprocessableEntity},
	{domain.ErrUnknownPlatform, http.StatusUnprocessableEntity},
	{domain.ErrInvalidSubmission, http.StatusUnprocessableEntity},
	{domain.ErrInvalidClaimDetails, http.StatusUnprocessableEntity},
	{domain.ErrInvalidWinner, http.StatusUnprocessableEntity},
	{domain.ErrSelfReferral, http.StatusUnprocessableEntity},
	{domain.ErrInvalidStatus, http.StatusUnprocessableEntity},
}

// Status returns the HTTP status for err. Anything that is not a business
// outcome, integrity violations included, is a 500.
func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

func Error(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}

func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// Actor builds the caller from the claims stored by auth.AuthMiddleware.
func Actor(r *http.Request) domain.Actor {
	id, _ := auth.UserID(r.Context())
	return domain.Actor{AccountID: id, Admin: auth.IsAdmin(r.Context())}
}

// ID parses the {id} URL parameter and writes a 400 when it is not a
// positive integer.
func ID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// Limit reads the optional ?limit= query parameter. Zero means the
// service default.
func Limit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
