package dto

import (
	"time"

	"github.com/GlebRadaev/rewardhub/internal/domain"
)

type RewardRequestDTO struct {
	Name             string `json:"name" example:"30% discount"`
	Description      string `json:"description" example:"One-time discount on any plan"`
	CoinCost         int64  `json:"coin_cost" example:"500"`
	RewardType       string `json:"reward_type" example:"discount_30"`
	ExpiryDays       int    `json:"expiry_days" example:"30"`
	MaxClaimsPerUser int    `json:"max_claims_per_user" example:"1"`
	IsEnabled        bool   `json:"is_enabled" example:"true"`
}

func (r RewardRequestDTO) Reward(id int) *domain.Reward {
	return &domain.Reward{
		ID:               id,
		Name:             r.Name,
		Description:      r.Description,
		CoinCost:         r.CoinCost,
		RewardType:       domain.RewardType(r.RewardType),
		ExpiryDays:       r.ExpiryDays,
		MaxClaimsPerUser: r.MaxClaimsPerUser,
		IsEnabled:        r.IsEnabled,
	}
}

type RewardResponseDTO struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	CoinCost         int64  `json:"coin_cost"`
	RewardType       string `json:"reward_type"`
	ExpiryDays       int    `json:"expiry_days"`
	MaxClaimsPerUser int    `json:"max_claims_per_user"`
	IsEnabled        bool   `json:"is_enabled"`
}

func Reward(r *domain.Reward) RewardResponseDTO {
	return RewardResponseDTO{
		ID:               r.ID,
		Name:             r.Name,
		Description:      r.Description,
		CoinCost:         r.CoinCost,
		RewardType:       string(r.RewardType),
		ExpiryDays:       r.ExpiryDays,
		MaxClaimsPerUser: r.MaxClaimsPerUser,
		IsEnabled:        r.IsEnabled,
	}
}

func Rewards(rewards []domain.Reward) []RewardResponseDTO {
	out := make([]RewardResponseDTO, len(rewards))
	for i := range rewards {
		out[i] = Reward(&rewards[i])
	}
	return out
}

type ClaimResponseDTO struct {
	ID         int64     `json:"id"`
	AccountID  int       `json:"account_id"`
	RewardID   int       `json:"reward_id"`
	CoinsSpent int64     `json:"coins_spent" example:"500"`
	Status     string    `json:"status" example:"fulfilled"`
	CouponCode string    `json:"coupon_code,omitempty" example:"D30-483920174625"`
	AdminNotes string    `json:"admin_notes,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func Claim(c *domain.RewardClaim) ClaimResponseDTO {
	resp := ClaimResponseDTO{
		ID:         c.ID,
		AccountID:  c.AccountID,
		RewardID:   c.RewardID,
		CoinsSpent: c.CoinsSpent,
		Status:     string(c.Status),
		AdminNotes: c.AdminNotes,
		ExpiresAt:  c.ExpiresAt,
		CreatedAt:  c.CreatedAt,
	}
	if c.CouponCode != nil {
		resp.CouponCode = *c.CouponCode
	}
	return resp
}

func Claims(claims []domain.RewardClaim) []ClaimResponseDTO {
	out := make([]ClaimResponseDTO, len(claims))
	for i := range claims {
		out[i] = Claim(&claims[i])
	}
	return out
}

type ReviewRequestDTO struct {
	Notes string `json:"notes,omitempty" example:"Account credentials sent by email"`
}
