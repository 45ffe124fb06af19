package admin

import (
	"net/http"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/dto"
	"github.com/GlebRadaev/rewardhub/internal/handlers/respond"
	"github.com/GlebRadaev/rewardhub/pkg/utils"
)

// CreateWinner godoc
//
//	@Summary	Record an event winner
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.WinnerRequestDTO	true	"Winner"
//	@Success	201		{object}	dto.WinnerResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	409		{object}	utils.Response	"Position already awarded"
//	@Failure	422		{object}	utils.Response	"Invalid winner definition"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/winners [post]
func (h *AdminHandler) CreateWinner(w http.ResponseWriter, r *http.Request) {
	var req dto.WinnerRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	winner, err := h.winners.CreateWinner(r.Context(), respond.Actor(r), req.AccountID, req.EventID, req.SubmissionID, req.Position)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.Winner(winner))
}

// GetWinners godoc
//
//	@Summary	List winner claims by status
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"unclaimed, pending or issued"	default(pending)
//	@Param		limit	query		int		false	"Maximum number of claims"
//	@Success	200		{array}		dto.WinnerResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	422		{object}	utils.Response	"Unknown status"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/winners [get]
func (h *AdminHandler) GetWinners(w http.ResponseWriter, r *http.Request) {
	status := domain.WinnerStatus(statusParam(r, string(domain.WinnerPending)))
	winners, err := h.winners.ListByStatus(r.Context(), respond.Actor(r), status, respond.Limit(r))
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Winners(winners))
}

// IssueWinner godoc
//
//	@Summary	Mark a prize issued
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Winner claim ID"
//	@Param		request	body		dto.ReviewRequestDTO	false	"Notes"
//	@Success	200		{object}	dto.WinnerResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	404		{object}	utils.Response	"Winner claim not found"
//	@Failure	409		{object}	utils.Response	"Details not submitted yet"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/winners/{id}/issue [post]
func (h *AdminHandler) IssueWinner(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}
	var req dto.ReviewRequestDTO
	if r.ContentLength != 0 && !respond.Decode(w, r, &req) {
		return
	}
	winner, err := h.winners.Issue(r.Context(), respond.Actor(r), id, req.Notes)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.Winner(winner))
}
