package winnerservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/metrics"
	"github.com/GlebRadaev/rewardhub/pkg/validate"
)

const DefaultListLimit = 100

type Repo interface {
	Create(ctx context.Context, winner *domain.WinnerClaim) (*domain.WinnerClaim, error)
	Get(ctx context.Context, id int64) (*domain.WinnerClaim, error)
	SubmitDetails(ctx context.Context, id int64, accountID int, name, email string) (bool, error)
	Issue(ctx context.Context, id int64, notes string) (bool, error)
	ListByAccount(ctx context.Context, accountID int) ([]domain.WinnerClaim, error)
	ListByStatus(ctx context.Context, status domain.WinnerStatus, limit int) ([]domain.WinnerClaim, error)
}

// Service tracks prizes from the moment a winner is declared until the
// prize is handed over. It never touches the ledger.
type Service struct {
	repo    Repo
	metrics *metrics.EngineMetrics
}

func New(repo Repo) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics.Engine(),
	}
}

func (s *Service) CreateWinner(ctx context.Context, actor domain.Actor, accountID int, eventID, submissionID int64, position int) (*domain.WinnerClaim, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if accountID <= 0 || eventID <= 0 || submissionID <= 0 || position < 1 {
		return nil, domain.ErrInvalidWinner
	}
	winner, err := s.repo.Create(ctx, &domain.WinnerClaim{
		AccountID:    accountID,
		EventID:      eventID,
		SubmissionID: submissionID,
		Position:     position,
	})
	if err != nil {
		return nil, fmt.Errorf("create winner: %w", err)
	}
	if winner == nil {
		return nil, domain.ErrDuplicateWinner
	}
	zap.L().Info("winner declared", zap.Int64("event_id", eventID), zap.Int("position", position),
		zap.Int("account_id", accountID))
	return winner, nil
}

// SubmitClaimDetails records where the prize should go. Only the winner may
// submit, and only once.
func (s *Service) SubmitClaimDetails(ctx context.Context, accountID int, id int64, name, email string) (*domain.WinnerClaim, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || !validate.Email(email) {
		return nil, domain.ErrInvalidClaimDetails
	}
	winner, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if winner.AccountID != accountID {
		return nil, domain.ErrForbidden
	}
	if winner.Status != domain.WinnerUnclaimed {
		return nil, domain.NewTransitionError("winner claim", winner.Status, domain.WinnerPending)
	}
	moved, err := s.repo.SubmitDetails(ctx, id, accountID, name, email)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, domain.NewTransitionError("winner claim", winner.Status, domain.WinnerPending)
	}
	winner.Status = domain.WinnerPending
	winner.ClaimName = name
	winner.ClaimEmail = email
	return winner, nil
}

func (s *Service) Issue(ctx context.Context, actor domain.Actor, id int64, notes string) (*domain.WinnerClaim, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	winner, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if winner.Status != domain.WinnerPending {
		return nil, domain.NewTransitionError("winner claim", winner.Status, domain.WinnerIssued)
	}
	moved, err := s.repo.Issue(ctx, id, notes)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, domain.NewTransitionError("winner claim", winner.Status, domain.WinnerIssued)
	}
	winner.Status = domain.WinnerIssued
	winner.AdminNotes = notes
	s.metrics.RecordReview("winner_claim", "issued")
	zap.L().Info("winner prize issued", zap.Int("admin_id", actor.AccountID), zap.Int64("id", id))
	return winner, nil
}

func (s *Service) ListMine(ctx context.Context, accountID int) ([]domain.WinnerClaim, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *Service) ListByStatus(ctx context.Context, actor domain.Actor, status domain.WinnerStatus, limit int) ([]domain.WinnerClaim, error) {
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

func (s *Service) get(ctx context.Context, id int64) (*domain.WinnerClaim, error) {
	winner, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if winner == nil {
		return nil, domain.ErrWinnerNotFound
	}
	return winner, nil
}
