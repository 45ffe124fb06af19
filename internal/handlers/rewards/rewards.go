package rewards

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/internal/handlers/respond"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

type Service interface {
	ListRewards(ctx context.Context, enabledOnly bool) ([]domain.Reward, error)
	Claim(ctx context.Context, accountID, rewardID int) (*domain.RewardClaim, error)
	ListClaims(ctx context.Context, accountID int) ([]domain.RewardClaim, error)
}

type RewardsHandler struct {
	service Service
}

func New(service Service) *RewardsHandler {
	return &RewardsHandler{service: service}
}

// GetRewards godoc
//
//	@Summary		List the reward catalog
//	@Description	Enabled rewards a user can spend coins on.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RewardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards [get]
func (h *RewardsHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.service.ListRewards(r.Context(), true)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Rewards(rewards))
}

// ClaimReward godoc
//
//	@Summary		Claim a reward
//	@Description	Spend coins on a reward. Discount rewards return a coupon code immediately,
//	@Description	funded accounts wait for an administrator.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Reward ID"
//	@Success		201	{object}	dto.ClaimResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		404	{object}	utils.Response	"Reward not found"
//	@Failure		409	{object}	utils.Response	"Reward disabled or claim limit reached"
//	@Failure		410	{object}	utils.Response	"No coupons available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/{id}/claim [post]
func (h *RewardsHandler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	rewardID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || rewardID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	claim, err := h.service.Claim(r.Context(), respond.Actor(r).AccountID, rewardID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.Claim(claim))
}

// GetClaims godoc
//
//	@Summary		List own reward claims
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ClaimResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rewards/claims [get]
func (h *RewardsHandler) GetClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.service.ListClaims(r.Context(), respond.Actor(r).AccountID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Claims(claims))
}
