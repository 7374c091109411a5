package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, display_name, credits, created_at
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.Credits, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, display_name, credits, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.Credits, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, email, password_hash, display_name, credits)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, email, password_hash, display_name, credits, created_at
    `
	row := r.db.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash, user.DisplayName, user.Credits)
	var created domain.User
	err := row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.DisplayName, &created.Credits, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) UpdateCredits(ctx context.Context, userID string, credits int64) error {
	query := `
        UPDATE users
        SET credits = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, credits, userID)
	if err != nil {
		zap.L().Error("failed to update user credits", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddCredits(ctx context.Context, userID string, amount int64) (int64, error) {
	query := `
        UPDATE users
        SET credits = credits + $1
        WHERE id = $2
        RETURNING credits
    `
	row := r.db.QueryRow(ctx, query, amount, userID)
	var credits int64
	if err := row.Scan(&credits); err != nil {
		zap.L().Error("failed to add user credits", zap.Error(err))
		return 0, err
	}
	return credits, nil
}
