package balanceservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nightfable/nightfable/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockTxLogRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	txLogRepo := NewMockTxLogRepo(ctrl)
	service := New(userRepo, txLogRepo)
	defer ctrl.Finish()
	return service, userRepo, txLogRepo
}

func TestService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Balance returned", func(t *testing.T) {
		service, userRepo, _ := NewMock(t)
		userRepo.EXPECT().GetByID(ctx, "user-1").
			Return(&domain.User{ID: "user-1", Credits: 12}, nil)

		credits, err := service.GetBalance(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(12), credits)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, userRepo, _ := NewMock(t)
		userRepo.EXPECT().GetByID(ctx, "user-1").Return(nil, nil)

		_, err := service.GetBalance(ctx, "user-1")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Database error", func(t *testing.T) {
		service, userRepo, _ := NewMock(t)
		userRepo.EXPECT().GetByID(ctx, "user-1").Return(nil, errors.New("database error"))

		_, err := service.GetBalance(ctx, "user-1")
		assert.Error(t, err)
	})
}

func TestService_GetTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("Transactions listed newest first", func(t *testing.T) {
		service, _, txLogRepo := NewMock(t)
		storyID := "story-1"
		entries := []domain.Transaction{
			{UserID: "user-1", Type: domain.TxnDebit, Amount: 5, StoryID: &storyID, Title: "Story purchase", CreatedAt: time.Now()},
			{UserID: "user-1", Type: domain.TxnCredit, Amount: 5, Title: "Welcome credits", CreatedAt: time.Now().Add(-time.Hour)},
		}
		txLogRepo.EXPECT().ListByUser(ctx, "user-1").Return(entries, nil)

		result, err := service.GetTransactions(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, entries, result)
	})

	t.Run("Database error", func(t *testing.T) {
		service, _, txLogRepo := NewMock(t)
		txLogRepo.EXPECT().ListByUser(ctx, "user-1").Return(nil, errors.New("database error"))

		result, err := service.GetTransactions(ctx, "user-1")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
