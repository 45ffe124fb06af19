package admin

import (
	"net/http"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/internal/handlers/respond"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

// GetSocialFollows godoc
//
//	@Summary	List social follow submissions by status
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"pending, verified or rejected"	default(pending)
//	@Param		limit	query		int		false	"Maximum number of submissions"
//	@Success	200		{array}		dto.SocialFollowResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	422		{object}	utils.Response	"Unknown status"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/social-follows [get]
func (h *AdminHandler) GetSocialFollows(w http.ResponseWriter, r *http.Request) {
	status := domain.FollowStatus(statusParam(r, string(domain.FollowPending)))
	follows, err := h.follows.ListByStatus(r.Context(), respond.Actor(r), status, respond.Limit(r))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SocialFollows(follows))
}

// ApproveSocialFollow godoc
//
//	@Summary	Approve a submission and credit its coins
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Submission ID"
//	@Success	200	{object}	dto.SocialFollowResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Submission not found"
//	@Failure	409	{object}	utils.Response	"Submission already reviewed"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/social-follows/{id}/approve [post]
func (h *AdminHandler) ApproveSocialFollow(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}
	follow, err := h.follows.Approve(r.Context(), respond.Actor(r), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SocialFollow(follow))
}

// RejectSocialFollow godoc
//
//	@Summary		Reject a submission
//	@Description	Rejecting a verified follow takes the credited coins back.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Submission ID"
//	@Success		200	{object}	dto.SocialFollowResponseDTO
//	@Failure		402	{object}	utils.Response	"Coins already spent"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Submission not found"
//	@Failure		409	{object}	utils.Response	"Submission already rejected"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/social-follows/{id}/reject [post]
func (h *AdminHandler) RejectSocialFollow(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}
	follow, err := h.follows.Reject(r.Context(), respond.Actor(r), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SocialFollow(follow))
}
