package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionError(t *testing.T) {
	err := NewTransitionError("claim", ClaimFulfilled, ClaimRejected)
	wrapped := fmt.Errorf("reject claim: %w", err)

	assert.EqualError(t, err, "claim: cannot move from fulfilled to rejected")
	assert.True(t, errors.Is(wrapped, ErrInvalidTransition))
	assert.False(t, errors.Is(wrapped, ErrForbidden))

	var te *TransitionError
	assert.True(t, errors.As(wrapped, &te))
	assert.Equal(t, "fulfilled", te.From)
}

func TestActor_RequireAdmin(t *testing.T) {
	assert.NoError(t, Actor{AccountID: 1, Admin: true}.RequireAdmin())
	assert.ErrorIs(t, Actor{AccountID: 1}.RequireAdmin(), ErrForbidden)
}

func TestRewardType(t *testing.T) {
	tests := []struct {
		rewardType RewardType
		valid      bool
		coupon     bool
		manual     bool
	}{
		{RewardGeneric, true, false, false},
		{RewardDiscount30, true, true, false},
		{RewardDiscount50, true, true, false},
		{RewardFundedAccount, true, false, true},
		{RewardType("voucher"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.rewardType), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.rewardType.Valid())
			assert.Equal(t, tt.coupon, tt.rewardType.CouponBacked())
			assert.Equal(t, tt.manual, tt.rewardType.ManualFulfillment())
		})
	}
}

func TestSource_Valid(t *testing.T) {
	assert.True(t, SourceRefund.Valid())
	assert.True(t, SourceAdminGrant.Valid())
	assert.False(t, Source("lottery").Valid())
}

func TestPlatform_Valid(t *testing.T) {
	for _, p := range Platforms {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, Platform("myspace").Valid())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, ClaimPending.Valid())
	assert.False(t, ClaimStatus("lost").Valid())
	assert.True(t, FollowVerified.Valid())
	assert.False(t, FollowStatus("").Valid())
	assert.True(t, WinnerIssued.Valid())
	assert.True(t, CouponAssigned.Valid())
}
