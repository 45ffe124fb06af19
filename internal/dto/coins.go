package dto

import (
	"time"

	"github.com/GlebRadaev/rewardhub/internal/domain"
)

type BalanceResponseDTO struct {
	Balance            int64  `json:"balance" example:"120"`
	TotalEarned        int64  `json:"total_earned" example:"300"`
	TotalSpent         int64  `json:"total_spent" example:"180"`
	ReferralCode       string `json:"referral_code" example:"K7QH2MZP4X"`
	SignupBonusClaimed bool   `json:"signup_bonus_claimed"`
}

func Balance(a *domain.Account) BalanceResponseDTO {
	return BalanceResponseDTO{
		Balance:            a.Balance,
		TotalEarned:        a.TotalEarned,
		TotalSpent:         a.TotalSpent,
		ReferralCode:       a.ReferralCode,
		SignupBonusClaimed: a.SignupBonusClaimed,
	}
}

type TransactionResponseDTO struct {
	ID              int64     `json:"id"`
	Amount          int64     `json:"amount" example:"100"`
	Direction       string    `json:"direction" example:"earn"`
	Source          string    `json:"source" example:"signup"`
	SourceReference string    `json:"source_reference,omitempty" example:"reward:3"`
	Description     string    `json:"description" example:"Signup bonus"`
	CreatedAt       time.Time `json:"created_at"`
}

func Transaction(t *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:              t.ID,
		Amount:          t.Amount,
		Direction:       string(t.Direction),
		Source:          string(t.Source),
		SourceReference: t.SourceReference,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
	}
}

func Transactions(txs []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, len(txs))
	for i := range txs {
		out[i] = Transaction(&txs[i])
	}
	return out
}

type SocialFollowRequestDTO struct {
	Platform            string `json:"platform" example:"instagram"`
	ScreenshotReference string `json:"screenshot_reference" example:"uploads/follow-17.png"`
}

type SocialFollowResponseDTO struct {
	ID                  int64      `json:"id"`
	AccountID           int        `json:"account_id"`
	Platform            string     `json:"platform" example:"instagram"`
	CoinsEarned         int64      `json:"coins_earned" example:"20"`
	Status              string     `json:"status" example:"pending"`
	ScreenshotReference string     `json:"screenshot_reference"`
	ClaimedAt           time.Time  `json:"claimed_at"`
	ReviewedAt          *time.Time `json:"reviewed_at,omitempty"`
}

func SocialFollow(f *domain.SocialFollow) SocialFollowResponseDTO {
	return SocialFollowResponseDTO{
		ID:                  f.ID,
		AccountID:           f.AccountID,
		Platform:            string(f.Platform),
		CoinsEarned:         f.CoinsEarned,
		Status:              string(f.Status),
		ScreenshotReference: f.ScreenshotReference,
		ClaimedAt:           f.ClaimedAt,
		ReviewedAt:          f.ReviewedAt,
	}
}

func SocialFollows(follows []domain.SocialFollow) []SocialFollowResponseDTO {
	out := make([]SocialFollowResponseDTO, len(follows))
	for i := range follows {
		out[i] = SocialFollow(&follows[i])
	}
	return out
}

type ReferralResponseDTO struct {
	ID                int64      `json:"id"`
	ReferredAccountID int        `json:"referred_account_id"`
	ReferredEmail     string     `json:"referred_email,omitempty"`
	Status            string     `json:"status" example:"pending"`
	CoinsRewarded     int64      `json:"coins_rewarded" example:"0"`
	CreatedAt         time.Time  `json:"created_at"`
	QualifiedAt       *time.Time `json:"qualified_at,omitempty"`
}

func Referral(r *domain.Referral) ReferralResponseDTO {
	return ReferralResponseDTO{
		ID:                r.ID,
		ReferredAccountID: r.ReferredAccountID,
		ReferredEmail:     r.ReferredEmail,
		Status:            string(r.Status),
		CoinsRewarded:     r.CoinsRewarded,
		CreatedAt:         r.CreatedAt,
		QualifiedAt:       r.QualifiedAt,
	}
}

func Referrals(referrals []domain.Referral) []ReferralResponseDTO {
	out := make([]ReferralResponseDTO, len(referrals))
	for i := range referrals {
		out[i] = Referral(&referrals[i])
	}
	return out
}

type GrantRequestDTO struct {
	Amount      int64  `json:"amount" example:"250"`
	Description string `json:"description,omitempty" example:"Hackathon participation"`
}
