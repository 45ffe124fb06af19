package admin

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

// GetRewards godoc
//
//	@Summary	List the full catalog, disabled rewards included
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.RewardResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/rewards [get]
func (h *AdminHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.rewards.ListRewards(r.Context(), false)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Rewards(rewards))
}

// CreateReward godoc
//
//	@Summary	Add a reward to the catalog
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RewardRequestDTO	true	"Reward definition"
//	@Success	201		{object}	dto.RewardResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	422		{object}	utils.Response	"Invalid reward definition"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/rewards [post]
func (h *AdminHandler) CreateReward(w http.ResponseWriter, r *http.Request) {
	var req dto.RewardRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	reward, err := h.rewards.CreateReward(r.Context(), respond.Actor(r), req.Reward(0))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.Reward(reward))
}

// UpdateReward godoc
//
//	@Summary		Replace a reward definition
//	@Description	Existing claims keep the cost they were charged.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Reward ID"
//	@Param			request	body		dto.RewardRequestDTO	true	"Reward definition"
//	@Success		200		{object}	dto.RewardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Reward not found"
//	@Failure		422		{object}	utils.Response	"Invalid reward definition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/rewards/{id} [put]
func (h *AdminHandler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req dto.RewardRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	reward, err := h.rewards.UpdateReward(r.Context(), respond.Actor(r), req.Reward(id))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Reward(reward))
}

// GetClaims godoc
//
//	@Summary	List reward claims by status
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"pending, fulfilled or rejected"	default(pending)
//	@Param		limit	query		int		false	"Maximum number of claims"
//	@Success	200		{array}		dto.ClaimResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	422		{object}	utils.Response	"Unknown status"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/claims [get]
func (h *AdminHandler) GetClaims(w http.ResponseWriter, r *http.Request) {
	status := domain.ClaimStatus(statusParam(r, string(domain.ClaimPending)))
	claims, err := h.rewards.ListClaimsByStatus(r.Context(), respond.Actor(r), status, respond.Limit(r))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Claims(claims))
}

// FulfillClaim godoc
//
//	@Summary	Mark a pending claim fulfilled
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Claim ID"
//	@Param		request	body		dto.ReviewRequestDTO	false	"Notes for the user"
//	@Success	200		{object}	dto.ClaimResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	404		{object}	utils.Response	"Claim not found"
//	@Failure	409		{object}	utils.Response	"Claim is not pending"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/claims/{id}/fulfill [post]
func (h *AdminHandler) FulfillClaim(w http.ResponseWriter, r *http.Request) {
	h.reviewClaim(w, r, h.rewards.Fulfill)
}

// RejectClaim godoc
//
//	@Summary		Reject a pending claim
//	@Description	The spent coins are refunded and an attached coupon goes back to the pool.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Claim ID"
//	@Param			request	body		dto.ReviewRequestDTO	false	"Reason"
//	@Success		200		{object}	dto.ClaimResponseDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Claim not found"
//	@Failure		409		{object}	utils.Response	"Claim is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/claims/{id}/reject [post]
func (h *AdminHandler) RejectClaim(w http.ResponseWriter, r *http.Request) {
	h.reviewClaim(w, r, h.rewards.Reject)
}

type claimReview func(ctx context.Context, actor domain.Actor, claimID int64, notes string) (*domain.RewardClaim, error)

func (h *AdminHandler) reviewClaim(w http.ResponseWriter, r *http.Request, review claimReview) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}
	var req dto.ReviewRequestDTO
	if r.ContentLength != 0 && !respond.Decode(w, r, &req) {
		return
	}
	claim, err := review(r.Context(), respond.Actor(r), id, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Claim(claim))
}
