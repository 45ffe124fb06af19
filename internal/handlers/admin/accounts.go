package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/internal/handlers/respond"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

// GrantCoins godoc
//
//	@Summary		Credit coins to an account
//	@Description	Used for event participation and event wins as well as goodwill credits.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Account ID"
//	@Param			request	body		dto.GrantRequestDTO	true	"Grant"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		422		{object}	utils.Response	"Amount must be positive"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts/{id}/grant [post]
func (h *AdminHandler) GrantCoins(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || accountID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req dto.GrantRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	tx, err := h.ledger.Grant(r.Context(), respond.Actor(r), accountID, req.Amount, req.Description)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.Transaction(tx))
}

// QualifyReferral godoc
//
//	@Summary	Qualify a referral and pay the referrer
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Referral ID"
//	@Success	200	{object}	dto.ReferralResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Referral not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/referrals/{id}/qualify [post]
func (h *AdminHandler) QualifyReferral(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}
	referral, err := h.referrals.Qualify(r.Context(), respond.Actor(r), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Referral(referral))
}
