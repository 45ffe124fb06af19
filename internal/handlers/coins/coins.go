package coins

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/internal/handlers/respond"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

type Ledger interface {
	Balance(ctx context.Context, accountID int) (*domain.Account, error)
	History(ctx context.Context, accountID int, limit int) ([]domain.Transaction, error)
	ClaimSignupBonus(ctx context.Context, accountID int) (*domain.Transaction, error)
}

type Follows interface {
	Submit(ctx context.Context, accountID int, platform domain.Platform, screenshot string) (*domain.SocialFollow, error)
	ListMine(ctx context.Context, accountID int) ([]domain.SocialFollow, error)
}

type Referrals interface {
	ListMine(ctx context.Context, referrerID int) ([]domain.Referral, error)
}

type CoinsHandler struct {
	ledger    Ledger
	follows   Follows
	referrals Referrals
}

func New(ledger Ledger, follows Follows, referrals Referrals) *CoinsHandler {
	return &CoinsHandler{
		ledger:    ledger,
		follows:   follows,
		referrals: referrals,
	}
}

// GetBalance godoc
//
//	@Summary		Get coin balance
//	@Description	Current balance, lifetime totals and the referral code of the authenticated user.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/balance [get]
func (h *CoinsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	account, err := h.ledger.Balance(r.Context(), respond.Actor(r).AccountID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Balance(account))
}

// GetHistory godoc
//
//	@Summary		Get ledger history
//	@Description	Ledger entries of the authenticated user, most recent first.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of entries"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/history [get]
func (h *CoinsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.ledger.History(r.Context(), respond.Actor(r).AccountID, respond.Limit(r))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Transactions(history))
}

// ClaimSignupBonus godoc
//
//	@Summary		Claim the signup bonus
//	@Description	One-time credit for new accounts.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Bonus already claimed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/signup-claim [post]
func (h *CoinsHandler) ClaimSignupBonus(w http.ResponseWriter, r *http.Request) {
	tx, err := h.ledger.ClaimSignupBonus(r.Context(), respond.Actor(r).AccountID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Transaction(tx))
}

// SubmitSocialFollow godoc
//
//	@Summary		Submit a social follow
//	@Description	Queue a follow on a supported platform for review. Coins are credited on approval.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SocialFollowRequestDTO	true	"Submission"
//	@Success		202		{object}	dto.SocialFollowResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Already submitted"
//	@Failure		422		{object}	utils.Response	"Unknown platform or missing screenshot"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/social-follow [post]
func (h *CoinsHandler) SubmitSocialFollow(w http.ResponseWriter, r *http.Request) {
	var req dto.SocialFollowRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	follow, err := h.follows.Submit(r.Context(), respond.Actor(r).AccountID, domain.Platform(req.Platform),
		req.ScreenshotReference)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.SocialFollow(follow))
}

// GetSocialFollows godoc
//
//	@Summary		List own social follow submissions
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SocialFollowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/social-follow [get]
func (h *CoinsHandler) GetSocialFollows(w http.ResponseWriter, r *http.Request) {
	follows, err := h.follows.ListMine(r.Context(), respond.Actor(r).AccountID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SocialFollows(follows))
}

// GetReferrals godoc
//
//	@Summary		List accounts referred by the user
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/referrals [get]
func (h *CoinsHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.referrals.ListMine(r.Context(), respond.Actor(r).AccountID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Referrals(referrals))
}
