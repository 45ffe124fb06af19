package dto

import (
	"time"

	"github.com/GlebRadaev/rewardhub/internal/domain"
)

type ImportCouponsRequestDTO struct {
	RewardType string   `json:"reward_type" example:"discount_30"`
	Codes      []string `json:"codes" example:"SPRING-30-A,SPRING-30-B"`
}

type GenerateCouponsRequestDTO struct {
	RewardType string `json:"reward_type" example:"discount_50"`
	Count      int    `json:"count" example:"100"`
}

type CountResponseDTO struct {
	Inserted int64 `json:"inserted" example:"100"`
}

type CouponResponseDTO struct {
	ID         int64      `json:"id"`
	RewardType string     `json:"reward_type"`
	Code       string     `json:"coupon_code"`
	Status     string     `json:"status" example:"unused"`
	AssignedTo *int       `json:"assigned_to,omitempty"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

func Coupon(c *domain.Coupon) CouponResponseDTO {
	return CouponResponseDTO{
		ID:         c.ID,
		RewardType: string(c.RewardType),
		Code:       c.Code,
		Status:     string(c.Status),
		AssignedTo: c.AssignedTo,
		AssignedAt: c.AssignedAt,
		ExpiresAt:  c.ExpiresAt,
	}
}

func Coupons(coupons []domain.Coupon) []CouponResponseDTO {
	out := make([]CouponResponseDTO, len(coupons))
	for i := range coupons {
		out[i] = Coupon(&coupons[i])
	}
	return out
}
