package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/pg"
	"github.com/nightfable/nightfable/pkg/auth"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type TxLogRepo interface {
	Append(ctx context.Context, t *domain.Transaction) error
}

type Service struct {
	userRepo        Repo
	txLogRepo       TxLogRepo
	txManager       pg.TXManager
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
	startingCredits int64
}

func New(repo Repo, txLogRepo TxLogRepo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, startingCredits int64) *Service {
	return &Service{
		userRepo:        repo,
		txLogRepo:       txLogRepo,
		txManager:       txManager,
		hashService:     hashService,
		jwtService:      jwtService,
		startingCredits: startingCredits,
	}
}

func (s *Service) Register(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
		Credits:      s.startingCredits,
	}

	var newUser *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.userRepo.Create(ctx, user)
		if err != nil {
			return err
		}
		newUser = created
		if s.startingCredits > 0 {
			return s.txLogRepo.Append(ctx, &domain.Transaction{
				UserID: created.ID,
				Type:   domain.TxnCredit,
				Amount: s.startingCredits,
				Title:  "Welcome credits",
			})
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
