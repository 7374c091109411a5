package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/pg"
	"github.com/nightfable/nightfable/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTxLogRepo, *pg.MockTXManager, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txLogRepo := NewMockTxLogRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, txLogRepo, txManager, hashService, jwtService, 5)
	defer ctrl.Finish()
	return service, repo, txLogRepo, txManager, hashService, jwtService
}

func TestService_Register(t *testing.T) {
	service, repo, txLogRepo, txManager, hashService, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		email       string
		password    string
		displayName string
		prepareMock func()
		expectedErr error
		checkUser   func(t *testing.T, user *domain.User)
	}{
		{
			name:        "Successful registration grants welcome credits",
			email:       "luna@example.com",
			password:    "password123",
			displayName: "Luna",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "luna@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashed", nil)
				txManager.EXPECT().Begin(ctx, gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				repo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.NotEmpty(t, u.ID)
						assert.Equal(t, int64(5), u.Credits)
						return u, nil
					})
				txLogRepo.EXPECT().Append(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Transaction) error {
						assert.Equal(t, domain.TxnCredit, tr.Type)
						assert.Equal(t, int64(5), tr.Amount)
						assert.Equal(t, "Welcome credits", tr.Title)
						return nil
					})
			},
			expectedErr: nil,
			checkUser: func(t *testing.T, user *domain.User) {
				assert.Equal(t, "Luna", user.DisplayName)
				assert.Equal(t, int64(5), user.Credits)
			},
		},
		{
			name:     "Display name defaults to email local part",
			email:    "stardust@example.com",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "stardust@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashed", nil)
				txManager.EXPECT().Begin(ctx, gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				repo.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						return u, nil
					})
				txLogRepo.EXPECT().Append(ctx, gomock.Any()).Return(nil)
			},
			expectedErr: nil,
			checkUser: func(t *testing.T, user *domain.User) {
				assert.Equal(t, "stardust", user.DisplayName)
			},
		},
		{
			name:     "Email already taken",
			email:    "luna@example.com",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "luna@example.com").
					Return(&domain.User{ID: "user-1", Email: "luna@example.com"}, nil)
			},
			expectedErr: ErrEmailTaken,
		},
		{
			name:     "Create fails inside transaction",
			email:    "luna@example.com",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "luna@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashed", nil)
				txManager.EXPECT().Begin(ctx, gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(ctx, tt.email, tt.password, tt.displayName)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				if tt.checkUser != nil {
					tt.checkUser(t, user)
				}
			}
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	service, repo, _, _, hashService, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Successful authentication",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "luna@example.com").
					Return(&domain.User{ID: "user-1", Email: "luna@example.com", PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "password123").Return(true)
			},
			expectedErr: nil,
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "luna@example.com").Return(nil, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "luna@example.com").
					Return(&domain.User{ID: "user-1", Email: "luna@example.com", PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "password123").Return(false)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(ctx, "luna@example.com", "password123")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "user-1", user.ID)
			}
		})
	}
}

func TestService_GenerateToken(t *testing.T) {
	service, _, _, _, _, jwtService := NewMock(t)

	t.Run("Token generated", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT("user-1", gomock.Any()).Return("some-jwt-token", nil)
		token, err := service.GenerateToken("user-1")
		assert.NoError(t, err)
		assert.Equal(t, "some-jwt-token", token)
	})

	t.Run("Generation error", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT("user-1", gomock.Any()).Return("", errors.New("token generation error"))
		token, err := service.GenerateToken("user-1")
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
