package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// Account holds the running totals derived from the ledger.
// Balance always equals TotalEarned - TotalSpent.
type Account struct {
	AccountID          int       `db:"account_id"`
	Balance            int64     `db:"balance"`
	TotalEarned        int64     `db:"total_earned"`
	TotalSpent         int64     `db:"total_spent"`
	ReferralCode       string    `db:"referral_code"`
	SignupBonusClaimed bool      `db:"signup_bonus_claimed"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type Transaction struct {
	ID              int64     `db:"id"`
	AccountID       int       `db:"account_id"`
	Amount          int64     `db:"amount"`
	Direction       Direction `db:"direction"`
	Source          Source    `db:"source"`
	SourceReference string    `db:"source_reference"`
	Description     string    `db:"description"`
	CreatedAt       time.Time `db:"created_at"`
}

type Reward struct {
	ID               int        `db:"id"`
	Name             string     `db:"name"`
	Description      string     `db:"description"`
	CoinCost         int64      `db:"coin_cost"`
	RewardType       RewardType `db:"reward_type"`
	ExpiryDays       int        `db:"expiry_days"`
	MaxClaimsPerUser int        `db:"max_claims_per_user"`
	IsEnabled        bool       `db:"is_enabled"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

type RewardClaim struct {
	ID         int64       `db:"id"`
	AccountID  int         `db:"account_id"`
	RewardID   int         `db:"reward_id"`
	CoinsSpent int64       `db:"coins_spent"`
	Status     ClaimStatus `db:"status"`
	CouponID   *int64      `db:"coupon_id"`
	CouponCode *string     `db:"coupon_code"`
	AdminNotes string      `db:"admin_notes"`
	ExpiresAt  time.Time   `db:"expires_at"`
	CreatedAt  time.Time   `db:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at"`
}

type Coupon struct {
	ID         int64        `db:"id"`
	RewardType RewardType   `db:"reward_type"`
	Code       string       `db:"coupon_code"`
	Status     CouponStatus `db:"status"`
	AssignedTo *int         `db:"assigned_to"`
	AssignedAt *time.Time   `db:"assigned_at"`
	ExpiresAt  *time.Time   `db:"expires_at"`
	CreatedAt  time.Time    `db:"created_at"`
}

type SocialFollow struct {
	ID                  int64        `db:"id"`
	AccountID           int          `db:"account_id"`
	Platform            Platform     `db:"platform"`
	CoinsEarned         int64        `db:"coins_earned"`
	Status              FollowStatus `db:"status"`
	ScreenshotReference string       `db:"screenshot_reference"`
	ClaimedAt           time.Time    `db:"claimed_at"`
	ReviewedAt          *time.Time   `db:"reviewed_at"`
}

type WinnerClaim struct {
	ID           int64        `db:"id"`
	AccountID    int          `db:"account_id"`
	EventID      int64        `db:"event_id"`
	SubmissionID int64        `db:"submission_id"`
	Position     int          `db:"position"`
	Status       WinnerStatus `db:"status"`
	ClaimName    string       `db:"claim_name"`
	ClaimEmail   string       `db:"claim_email"`
	AdminNotes   string       `db:"admin_notes"`
	CreatedAt    time.Time    `db:"created_at"`
	ClaimedAt    *time.Time   `db:"claimed_at"`
	IssuedAt     *time.Time   `db:"issued_at"`
}

type Referral struct {
	ID                int64          `db:"id"`
	ReferrerAccountID int            `db:"referrer_account_id"`
	ReferredAccountID int            `db:"referred_account_id"`
	ReferredEmail     string         `db:"referred_email"`
	Status            ReferralStatus `db:"status"`
	CoinsRewarded     int64          `db:"coins_rewarded"`
	CreatedAt         time.Time      `db:"created_at"`
	QualifiedAt       *time.Time     `db:"qualified_at"`
}

// ClaimIntent is written in the same transaction as a reward debit and
// closed in the same transaction that persists the claim. An intent that
// stays open means the coins were taken but no claim exists, so it must be
// refunded.
type ClaimIntent struct {
	ID        uuid.UUID    `db:"id"`
	AccountID int          `db:"account_id"`
	RewardID  int          `db:"reward_id"`
	Amount    int64        `db:"amount"`
	CouponID  *int64       `db:"coupon_id"`
	Status    IntentStatus `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	AccountID int
	Admin     bool
}

func (a Actor) RequireAdmin() error {
	if !a.Admin {
		return ErrForbidden
	}
	return nil
}
