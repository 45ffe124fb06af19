package domain

type Direction string

const (
	DirectionEarn  Direction = "earn"
	DirectionSpend Direction = "spend"
)

type Source string

const (
	SourceSignup             Source = "signup"
	SourceReferral           Source = "referral"
	SourceSocialFollow       Source = "social_follow"
	SourceEventParticipation Source = "event_participation"
	SourceEventWin           Source = "event_win"
	SourceRewardClaim        Source = "reward_claim"
	SourceRefund             Source = "refund"
	SourceAdminGrant         Source = "admin_grant"
)

func (s Source) Valid() bool {
	switch s {
	case SourceSignup, SourceReferral, SourceSocialFollow, SourceEventParticipation,
		SourceEventWin, SourceRewardClaim, SourceRefund, SourceAdminGrant:
		return true
	}
	return false
}

type RewardType string

const (
	RewardGeneric       RewardType = "generic"
	RewardDiscount30    RewardType = "discount_30"
	RewardDiscount50    RewardType = "discount_50"
	RewardFundedAccount RewardType = "funded_account"
)

// CouponBackedTypes lists the reward types fulfilled from the coupon pool.
var CouponBackedTypes = []RewardType{RewardDiscount30, RewardDiscount50}

func (t RewardType) Valid() bool {
	switch t {
	case RewardGeneric, RewardDiscount30, RewardDiscount50, RewardFundedAccount:
		return true
	}
	return false
}

func (t RewardType) CouponBacked() bool {
	return t == RewardDiscount30 || t == RewardDiscount50
}

// ManualFulfillment reports whether claims of this type wait for an administrator.
func (t RewardType) ManualFulfillment() bool {
	return t == RewardFundedAccount
}

type ClaimStatus string

const (
	ClaimPending   ClaimStatus = "pending"
	ClaimFulfilled ClaimStatus = "fulfilled"
	ClaimRejected  ClaimStatus = "rejected"
)

func (s ClaimStatus) Valid() bool {
	return s == ClaimPending || s == ClaimFulfilled || s == ClaimRejected
}

type CouponStatus string

const (
	CouponUnused   CouponStatus = "unused"
	CouponAssigned CouponStatus = "assigned"
)

func (s CouponStatus) Valid() bool {
	return s == CouponUnused || s == CouponAssigned
}

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformDiscord   Platform = "discord"
	PlatformTelegram  Platform = "telegram"
)

var Platforms = []Platform{
	PlatformInstagram,
	PlatformTwitter,
	PlatformFacebook,
	PlatformYouTube,
	PlatformTikTok,
	PlatformDiscord,
	PlatformTelegram,
}

func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

type FollowStatus string

const (
	FollowPending  FollowStatus = "pending"
	FollowVerified FollowStatus = "verified"
	FollowRejected FollowStatus = "rejected"
)

func (s FollowStatus) Valid() bool {
	return s == FollowPending || s == FollowVerified || s == FollowRejected
}

type WinnerStatus string

const (
	WinnerUnclaimed WinnerStatus = "unclaimed"
	WinnerPending   WinnerStatus = "pending"
	WinnerIssued    WinnerStatus = "issued"
)

func (s WinnerStatus) Valid() bool {
	return s == WinnerUnclaimed || s == WinnerPending || s == WinnerIssued
}

type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralQualified ReferralStatus = "qualified"
)

type IntentStatus string

const (
	IntentOpen        IntentStatus = "open"
	IntentCompleted   IntentStatus = "completed"
	IntentCompensated IntentStatus = "compensated"
)
