package domain

import (
	"errors"
	"fmt"
)

// Expected business outcomes. Callers branch on them with errors.Is.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidSource       = errors.New("unknown ledger source")
	ErrSignupBonusClaimed  = errors.New("signup bonus already claimed")
	ErrAccountNotFound     = errors.New("account not found")

	ErrRewardNotFound     = errors.New("reward not found")
	ErrRewardDisabled     = errors.New("reward disabled")
	ErrInvalidReward      = errors.New("invalid reward definition")
	ErrClaimLimitReached  = errors.New("claim limit reached")
	ErrClaimNotFound      = errors.New("claim not found")
	ErrNoCouponsAvailable = errors.New("no coupons available")
	ErrCouponNotFound     = errors.New("coupon not found")

	ErrUnknownPlatform     = errors.New("unknown platform")
	ErrAlreadySubmitted    = errors.New("already submitted")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrWinnerNotFound      = errors.New("winner claim not found")
	ErrInvalidClaimDetails = errors.New("claim name and email are required")
	ErrInvalidSubmission   = errors.New("screenshot reference is required")
	ErrInvalidWinner       = errors.New("invalid winner definition")
	ErrDuplicateWinner     = errors.New("event position already awarded")

	ErrReferralNotFound = errors.New("referral not found")
	ErrSelfReferral     = errors.New("cannot use your own referral code")
	ErrAlreadyReferred  = errors.New("account already has a referrer")

	ErrInvalidTransition = errors.New("invalid state transition")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrForbidden         = errors.New("forbidden")

	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrIntegrityViolation marks a store write that contradicts a ledger or pool
// invariant. It is never a business outcome.
var ErrIntegrityViolation = errors.New("integrity violation")

// ErrIntentClosed reports a claim intent that was compensated while the claim
// was still in progress.
var ErrIntentClosed = errors.New("claim intent closed before completion")

// TransitionError describes a rejected state machine move.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", e.Entity, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func NewTransitionError(entity string, from, to fmt.Stringer) error {
	return &TransitionError{Entity: entity, From: from.String(), To: to.String()}
}

func (s ClaimStatus) String() string    { return string(s) }
func (s FollowStatus) String() string   { return string(s) }
func (s WinnerStatus) String() string   { return string(s) }
func (s ReferralStatus) String() string { return string(s) }
func (s CouponStatus) String() string   { return string(s) }
