package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardhub/internal/domain"
	"github.com/GlebRadaev/rewardhub/internal/pg"
	"github.com/GlebRadaev/rewardhub/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Accounts interface {
	OpenAccount(ctx context.Context, accountID int) (*domain.Account, error)
}

type Referrals interface {
	Attach(ctx context.Context, accountID int, email, code string) (*domain.Referral, error)
}

type Service struct {
	userRepo    Repo
	accounts    Accounts
	referrals   Referrals
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
	admins      map[string]struct{}
}

func New(repo Repo, accounts Accounts, referrals Referrals, txManager pg.TXManager,
	hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		accounts:    accounts,
		referrals:   referrals,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

// WithAdmins marks the given logins as administrators when they register.
func (s *Service) WithAdmins(logins []string) *Service {
	s.admins = make(map[string]struct{}, len(logins))
	for _, login := range logins {
		if login = strings.TrimSpace(login); login != "" {
			s.admins[login] = struct{}{}
		}
	}
	return s
}

// Register creates the user and its coin account in one transaction. A
// referral code that cannot be attached never blocks the signup.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, domain.ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	var user *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		_, admin := s.admins[login]
		user, err = s.userRepo.Create(ctx, &domain.User{Login: login, PasswordHash: hashedPassword, IsAdmin: admin})
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrLoginTaken
		}
		if _, err := s.accounts.OpenAccount(ctx, user.ID); err != nil {
			return err
		}
		_, err = s.referrals.Attach(ctx, user.ID, login, referralCode)
		if errors.Is(err, domain.ErrSelfReferral) || errors.Is(err, domain.ErrAlreadyReferred) {
			zap.L().Info("referral code ignored", zap.Int("user_id", user.ID), zap.Error(err))
			return nil
		}
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrLoginTaken) {
			zap.L().Error("can't register user", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login), zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.ID, user.IsAdmin, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
