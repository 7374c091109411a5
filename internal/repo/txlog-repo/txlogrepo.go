package txlogrepo

import (
	"context"

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

// Append writes one audit entry. The log is append-only.
func (r *Repository) Append(ctx context.Context, t *domain.Transaction) error {
	query := `
        INSERT INTO transactions (user_id, type, amount, story_id, title)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, t.UserID, t.Type, t.Amount, t.StoryID, t.Title)
	if err != nil {
		zap.L().Error("failed to append transaction entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, amount, story_id, title, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.StoryID, &t.Title, &t.CreatedAt); err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, t)
	}
	return entries, nil
}
