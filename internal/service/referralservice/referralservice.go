package referralservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error)
	Get(ctx context.Context, id int64) (*domain.Referral, error)
	FindByReferred(ctx context.Context, accountID int) (*domain.Referral, error)
	MarkQualified(ctx context.Context, id int64, coins int64) (bool, error)
	ListByReferrer(ctx context.Context, referrerID int) ([]domain.Referral, error)
}

type Accounts interface {
	FindByReferralCode(ctx context.Context, code string) (*domain.Account, error)
}

type Ledger interface {
	Credit(ctx context.Context, accountID int, amount int64, source domain.Source, reference, description string) (*domain.Transaction, error)
}

type Service struct {
	repo      Repo
	accounts  Accounts
	ledger    Ledger
	txManager pg.TXManager
	bonus     int64
}

func New(repo Repo, accounts Accounts, ledger Ledger, txManager pg.TXManager, bonus int64) *Service {
	return &Service{
		repo:      repo,
		accounts:  accounts,
		ledger:    ledger,
		txManager: txManager,
		bonus:     bonus,
	}
}

// Attach links a new account to the owner of code. An empty or unknown code
// is ignored and yields nil.
func (s *Service) Attach(ctx context.Context, accountID int, email, code string) (*domain.Referral, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, nil
	}
	referrer, err := s.accounts.FindByReferralCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if referrer == nil {
		zap.L().Debug("unknown referral code", zap.String("code", code))
		return nil, nil
	}
	if referrer.AccountID == accountID {
		return nil, domain.ErrSelfReferral
	}
	referral, err := s.repo.Create(ctx, &domain.Referral{
		ReferrerAccountID: referrer.AccountID,
		ReferredAccountID: accountID,
		ReferredEmail:     email,
	})
	if err != nil {
		return nil, fmt.Errorf("attach referral: %w", err)
	}
	if referral == nil {
		return nil, domain.ErrAlreadyReferred
	}
	zap.L().Info("referral attached", zap.Int("referrer_id", referrer.AccountID), zap.Int("referred_id", accountID))
	return referral, nil
}

// Qualify pays the referrer. Qualifying twice is a no-op.
func (s *Service) Qualify(ctx context.Context, actor domain.Actor, id int64) (*domain.Referral, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	var referral *domain.Referral
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		referral, err = s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if referral == nil {
			return domain.ErrReferralNotFound
		}
		return s.qualify(ctx, referral)
	})
	if err != nil {
		return nil, err
	}
	return referral, nil
}

// QualifyReferred qualifies the pending referral that brought accountID in.
// It returns nil when the account was not referred.
func (s *Service) QualifyReferred(ctx context.Context, accountID int) (*domain.Referral, error) {
	var referral *domain.Referral
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		referral, err = s.repo.FindByReferred(ctx, accountID)
		if err != nil || referral == nil {
			return err
		}
		return s.qualify(ctx, referral)
	})
	if err != nil {
		return nil, err
	}
	return referral, nil
}

func (s *Service) qualify(ctx context.Context, referral *domain.Referral) error {
	if referral.Status == domain.ReferralQualified {
		return nil
	}
	moved, err := s.repo.MarkQualified(ctx, referral.ID, s.bonus)
	if err != nil || !moved {
		return err
	}
	if _, err := s.ledger.Credit(ctx, referral.ReferrerAccountID, s.bonus, domain.SourceReferral,
		fmt.Sprintf("referral:%d", referral.ID), "Referral bonus"); err != nil {
		return err
	}
	referral.Status = domain.ReferralQualified
	referral.CoinsRewarded = s.bonus
	zap.L().Info("referral qualified", zap.Int64("referral_id", referral.ID),
		zap.Int("referrer_id", referral.ReferrerAccountID), zap.Int64("coins", s.bonus))
	return nil
}

func (s *Service) ListMine(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	return s.repo.ListByReferrer(ctx, referrerID)
}
