package dto

import (
	"time"

	"github.com/GlebRadaev/rewardhub/internal/domain"
)

type WinnerRequestDTO struct {
	AccountID    int   `json:"account_id" example:"17"`
	EventID      int64 `json:"event_id" example:"4"`
	SubmissionID int64 `json:"submission_id" example:"88"`
	Position     int   `json:"position" example:"1"`
}

type ClaimDetailsRequestDTO struct {
	Name  string `json:"name" example:"Alice Smith"`
	Email string `json:"email" example:"alice@example.com"`
}

type WinnerResponseDTO struct {
	ID           int64      `json:"id"`
	AccountID    int        `json:"account_id"`
	EventID      int64      `json:"event_id"`
	SubmissionID int64      `json:"submission_id"`
	Position     int        `json:"position"`
	Status       string     `json:"status" example:"unclaimed"`
	ClaimName    string     `json:"claim_name,omitempty"`
	ClaimEmail   string     `json:"claim_email,omitempty"`
	AdminNotes   string     `json:"admin_notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ClaimedAt    *time.Time `json:"claimed_at,omitempty"`
	IssuedAt     *time.Time `json:"issued_at,omitempty"`
}

func Winner(w *domain.WinnerClaim) WinnerResponseDTO {
	return WinnerResponseDTO{
		ID:           w.ID,
		AccountID:    w.AccountID,
		EventID:      w.EventID,
		SubmissionID: w.SubmissionID,
		Position:     w.Position,
		Status:       string(w.Status),
		ClaimName:    w.ClaimName,
		ClaimEmail:   w.ClaimEmail,
		AdminNotes:   w.AdminNotes,
		CreatedAt:    w.CreatedAt,
		ClaimedAt:    w.ClaimedAt,
		IssuedAt:     w.IssuedAt,
	}
}

func Winners(winners []domain.WinnerClaim) []WinnerResponseDTO {
	out := make([]WinnerResponseDTO, len(winners))
	for i := range winners {
		out[i] = Winner(&winners[i])
	}
	return out
}
