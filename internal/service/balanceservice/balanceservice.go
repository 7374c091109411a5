package balanceservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type TxLogRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type Service struct {
	userRepo  UserRepo
	txLogRepo TxLogRepo
}

func New(userRepo UserRepo, txLogRepo TxLogRepo) *Service {
	return &Service{
		userRepo:  userRepo,
		txLogRepo: txLogRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.Credits, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	entries, err := s.txLogRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
