package winners

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/internal/handlers/respond"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

type Service interface {
	ListMine(ctx context.Context, accountID int) ([]domain.WinnerClaim, error)
	SubmitClaimDetails(ctx context.Context, accountID int, id int64, name, email string) (*domain.WinnerClaim, error)
}

type WinnersHandler struct {
	service Service
}

func New(service Service) *WinnersHandler {
	return &WinnersHandler{service: service}
}

// GetWinnings godoc
//
//	@Summary		List own event prizes
//	@Tags			Winners
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WinnerResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/winners [get]
func (h *WinnersHandler) GetWinnings(w http.ResponseWriter, r *http.Request) {
	winners, err := h.service.ListMine(r.Context(), respond.Actor(r).AccountID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Winners(winners))
}

// SubmitClaimDetails godoc
//
//	@Summary		Submit prize delivery details
//	@Description	Moves an unclaimed prize to pending so an administrator can issue it.
//	@Tags			Winners
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Winner claim ID"
//	@Param			request	body		dto.ClaimDetailsRequestDTO	true	"Delivery details"
//	@Success		200		{object}	dto.WinnerResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not your prize"
//	@Failure		404		{object}	utils.Response	"Winner claim not found"
//	@Failure		409		{object}	utils.Response	"Details already submitted"
//	@Failure		422		{object}	utils.Response	"Name and email are required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/winners/{id}/claim [post]
func (h *WinnersHandler) SubmitClaimDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}
	var req dto.ClaimDetailsRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	winner, err := h.service.SubmitClaimDetails(r.Context(), respond.Actor(r).AccountID, id, req.Name, req.Email)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Winner(winner))
}
