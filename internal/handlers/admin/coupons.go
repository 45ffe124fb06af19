package admin

import (
	"net/http"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/internal/handlers/respond"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

// ImportCoupons godoc
//
//	@Summary		Import coupon codes
//	@Description	Malformed and duplicate codes are skipped. The response counts inserted codes.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ImportCouponsRequestDTO	true	"Codes"
//	@Success		201		{object}	dto.CountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Reward type is not coupon backed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/coupons/import [post]
func (h *AdminHandler) ImportCoupons(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportCouponsRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	inserted, err := h.coupons.Import(r.Context(), respond.Actor(r), domain.RewardType(req.RewardType), req.Codes)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CountResponseDTO{Inserted: inserted})
}

// GenerateCoupons godoc
//
//	@Summary	Generate Luhn-checked coupon codes
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.GenerateCouponsRequestDTO	true	"Batch"
//	@Success	201		{object}	dto.CountResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	422		{object}	utils.Response	"Invalid count or reward type"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/coupons/generate [post]
func (h *AdminHandler) GenerateCoupons(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateCouponsRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	inserted, err := h.coupons.Generate(r.Context(), respond.Actor(r), domain.RewardType(req.RewardType), req.Count)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CountResponseDTO{Inserted: inserted})
}

// GetCoupons godoc
//
//	@Summary	List coupons
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		reward_type	query		string	false	"discount_30 or discount_50"
//	@Param		status		query		string	false	"unused or assigned"
//	@Param		limit		query		int		false	"Maximum number of coupons"
//	@Success	200			{array}		dto.CouponResponseDTO
//	@Failure	403			{object}	utils.Response	"Forbidden"
//	@Failure	422			{object}	utils.Response	"Unknown filter"
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/coupons [get]
func (h *AdminHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	coupons, err := h.coupons.List(r.Context(), respond.Actor(r), domain.RewardType(q.Get("reward_type")),
		domain.CouponStatus(q.Get("status")), respond.Limit(r))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Coupons(coupons))
}

// GetInventory godoc
//
//	@Summary	Count unused coupons per reward type
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	map[string]int
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/coupons/inventory [get]
func (h *AdminHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.coupons.Inventory(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}
	resp := make(map[string]int, len(inventory))
	for t, n := range inventory {
		resp[string(t)] = n
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ReleaseCoupon godoc
//
//	@Summary	Return an assigned coupon to the pool
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Coupon ID"
//	@Success	200	{object}	dto.CouponResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Coupon not found"
//	@Failure	409	{object}	utils.Response	"Coupon is not assigned"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/coupons/{id}/release [post]
func (h *AdminHandler) ReleaseCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}
	coupon, err := h.coupons.Release(r.Context(), respond.Actor(r), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Coupon(coupon))
}
