package ledgerservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/metrics"
	"github.com/GlebRadaev/rewardhub/internal/pg"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

type Repo interface {
	CreateAccount(ctx context.Context, accountID int) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID int) (*domain.Account, error)
	LockAccount(ctx context.Context, accountID int) (*domain.Account, error)
	MarkSignupBonusClaimed(ctx context.Context, accountID int) (bool, error)
	Credit(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error)
	Debit(ctx context.Context, entry *domain.Transaction) (*domain.Transaction, error)
	History(ctx context.Context, accountID int, limit int) ([]domain.Transaction, error)
}

type Service struct {
	repo        Repo
	txManager   pg.TXManager
	signupBonus int64
	metrics     *metrics.EngineMetrics
}

func New(repo Repo, txManager pg.TXManager, signupBonus int64) *Service {
	return &Service{
		repo:        repo,
		txManager:   txManager,
		signupBonus: signupBonus,
		metrics:     metrics.Engine(),
	}
}

func (s *Service) OpenAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	account, err := s.repo.CreateAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("open account %d: %w", accountID, err)
	}
	return account, nil
}

func (s *Service) Balance(ctx context.Context, accountID int) (*domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// LockAccount serializes composite operations on one account. It must run
// inside a transaction started by the caller.
func (s *Service) LockAccount(ctx context.Context, accountID int) (*domain.Account, error) {
	account, err := s.repo.LockAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// Credit adds coins and appends the earn entry atomically. The account is
// created on first credit.
func (s *Service) Credit(ctx context.Context, accountID int, amount int64, source domain.Source, reference, description string) (*domain.Transaction, error) {
	if err := checkEntry(amount, source); err != nil {
		return nil, err
	}
	entry, err := s.repo.Credit(ctx, &domain.Transaction{
		AccountID:       accountID,
		Amount:          amount,
		Source:          source,
		SourceReference: reference,
		Description:     description,
	})
	if err != nil {
		s.metrics.RecordLedger(string(domain.DirectionEarn), string(source), "error")
		return nil, fmt.Errorf("credit account %d: %w", accountID, err)
	}
	s.metrics.RecordLedger(string(domain.DirectionEarn), string(source), "ok")
	zap.L().Debug("ledger credit", zap.Int("account_id", accountID), zap.Int64("amount", amount),
		zap.String("source", string(source)))
	return entry, nil
}

// Debit removes coins only when the balance covers the amount. It returns
// false, with nothing written, when it does not.
func (s *Service) Debit(ctx context.Context, accountID int, amount int64, source domain.Source, reference, description string) (bool, error) {
	if err := checkEntry(amount, source); err != nil {
		return false, err
	}
	entry, err := s.repo.Debit(ctx, &domain.Transaction{
		AccountID:       accountID,
		Amount:          amount,
		Source:          source,
		SourceReference: reference,
		Description:     description,
	})
	if err != nil {
		s.metrics.RecordLedger(string(domain.DirectionSpend), string(source), "error")
		return false, fmt.Errorf("debit account %d: %w", accountID, err)
	}
	if entry == nil {
		s.metrics.RecordLedger(string(domain.DirectionSpend), string(source), "insufficient")
		return false, nil
	}
	s.metrics.RecordLedger(string(domain.DirectionSpend), string(source), "ok")
	return true, nil
}

// History returns the most recent entries first. Non-positive limits fall
// back to the default, larger ones are capped.
func (s *Service) History(ctx context.Context, accountID int, limit int) ([]domain.Transaction, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.History(ctx, accountID, limit)
}

func (s *Service) ClaimSignupBonus(ctx context.Context, accountID int) (*domain.Transaction, error) {
	var entry *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		marked, err := s.repo.MarkSignupBonusClaimed(ctx, accountID)
		if err != nil {
			return err
		}
		if !marked {
			return domain.ErrSignupBonusClaimed
		}
		entry, err = s.Credit(ctx, accountID, s.signupBonus, domain.SourceSignup, "", "Signup bonus")
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Grant credits coins on behalf of an administrator.
func (s *Service) Grant(ctx context.Context, actor domain.Actor, accountID int, amount int64, description string) (*domain.Transaction, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if _, err := s.Balance(ctx, accountID); err != nil {
		return nil, err
	}
	if description == "" {
		description = "Granted by administrator"
	}
	entry, err := s.Credit(ctx, accountID, amount, domain.SourceAdminGrant, fmt.Sprintf("admin:%d", actor.AccountID), description)
	if err != nil {
		return nil, err
	}
	zap.L().Info("admin grant", zap.Int("admin_id", actor.AccountID), zap.Int("account_id", accountID),
		zap.Int64("amount", amount))
	return entry, nil
}

func checkEntry(amount int64, source domain.Source) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if !source.Valid() {
		return domain.ErrInvalidSource
	}
	return nil
}
