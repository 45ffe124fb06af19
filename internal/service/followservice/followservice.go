package followservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/config"
	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/metrics"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

const DefaultListLimit = 100

type Repo interface {
	Submit(ctx context.Context, follow *domain.SocialFollow) (*domain.SocialFollow, error)
	Lock(ctx context.Context, id int64) (*domain.SocialFollow, error)
	Transition(ctx context.Context, id int64, from, to domain.FollowStatus) (bool, error)
	ListByAccount(ctx context.Context, accountID int) ([]domain.SocialFollow, error)
	ListByStatus(ctx context.Context, status domain.FollowStatus, limit int) ([]domain.SocialFollow, error)
}

type Ledger interface {
	Credit(ctx context.Context, accountID int, amount int64, source domain.Source, reference, description string) (*domain.Transaction, error)
	Debit(ctx context.Context, accountID int, amount int64, source domain.Source, reference, description string) (bool, error)
}

type Referrals interface {
	QualifyReferred(ctx context.Context, accountID int) (*domain.Referral, error)
}

type Service struct {
	repo      Repo
	ledger    Ledger
	referrals Referrals
	txManager pg.TXManager
	rules     config.SocialFollowRewards
	metrics   *metrics.EngineMetrics
}

func New(repo Repo, ledger Ledger, referrals Referrals, txManager pg.TXManager, rules config.SocialFollowRewards) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		referrals: referrals,
		txManager: txManager,
		rules:     rules,
		metrics:   metrics.Engine(),
	}
}

// Submit queues a follow for review with the coin value in force right now.
func (s *Service) Submit(ctx context.Context, accountID int, platform domain.Platform, screenshot string) (*domain.SocialFollow, error) {
	coins, enabled := s.rules.CoinsFor(platform)
	if !enabled {
		return nil, domain.ErrUnknownPlatform
	}
	screenshot = strings.TrimSpace(screenshot)
	if screenshot == "" {
		return nil, domain.ErrInvalidSubmission
	}
	follow, err := s.repo.Submit(ctx, &domain.SocialFollow{
		AccountID:           accountID,
		Platform:            platform,
		CoinsEarned:         coins,
		ScreenshotReference: screenshot,
	})
	if err != nil {
		return nil, fmt.Errorf("submit social follow: %w", err)
	}
	if follow == nil {
		return nil, domain.ErrAlreadySubmitted
	}
	zap.L().Info("social follow submitted", zap.Int("account_id", accountID), zap.String("platform", string(platform)))
	return follow, nil
}

// Approve verifies a pending submission and credits its snapshot. The
// submitter's pending referral, if any, qualifies in the same transaction.
func (s *Service) Approve(ctx context.Context, actor domain.Actor, id int64) (*domain.SocialFollow, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	var follow *domain.SocialFollow
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		follow, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		if err := s.move(ctx, follow, domain.FollowVerified); err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, follow.AccountID, follow.CoinsEarned, domain.SourceSocialFollow,
			reference(id), "Followed on "+string(follow.Platform)); err != nil {
			return err
		}
		_, err = s.referrals.QualifyReferred(ctx, follow.AccountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.metrics.RecordReview("social_follow", "approved")
	zap.L().Info("social follow approved", zap.Int("admin_id", actor.AccountID), zap.Int64("id", id))
	return follow, nil
}

// Reject closes a submission. A verified one gives its coins back first; the
// rejection fails when the account has already spent them.
func (s *Service) Reject(ctx context.Context, actor domain.Actor, id int64) (*domain.SocialFollow, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	var follow *domain.SocialFollow
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		follow, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		if follow.Status == domain.FollowVerified {
			debited, err := s.ledger.Debit(ctx, follow.AccountID, follow.CoinsEarned, domain.SourceSocialFollow,
				reference(id), "Follow on "+string(follow.Platform)+" revoked")
			if err != nil {
				return err
			}
			if !debited {
				return domain.ErrInsufficientBalance
			}
		}
		return s.move(ctx, follow, domain.FollowRejected)
	})
	if err != nil {
		return nil, err
	}
	s.metrics.RecordReview("social_follow", "rejected")
	zap.L().Info("social follow rejected", zap.Int("admin_id", actor.AccountID), zap.Int64("id", id))
	return follow, nil
}

func (s *Service) ListMine(ctx context.Context, accountID int) ([]domain.SocialFollow, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *Service) ListByStatus(ctx context.Context, actor domain.Actor, status domain.FollowStatus, limit int) ([]domain.SocialFollow, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListByStatus(ctx, status, limit)
}

func (s *Service) lock(ctx context.Context, id int64) (*domain.SocialFollow, error) {
	follow, err := s.repo.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	if follow == nil {
		return nil, domain.ErrSubmissionNotFound
	}
	return follow, nil
}

// move applies one review step. Only pending submissions can be verified;
// anything not already rejected can be rejected.
func (s *Service) move(ctx context.Context, follow *domain.SocialFollow, to domain.FollowStatus) error {
	from := follow.Status
	legal := from == domain.FollowPending || (to == domain.FollowRejected && from == domain.FollowVerified)
	if !legal {
		return domain.NewTransitionError("social follow", from, to)
	}
	moved, err := s.repo.Transition(ctx, follow.ID, from, to)
	if err != nil {
		return err
	}
	if !moved {
		return domain.NewTransitionError("social follow", from, to)
	}
	follow.Status = to
	return nil
}

func reference(id int64) string {
	return fmt.Sprintf("social_follow:%d", id)
}
