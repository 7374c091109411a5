package eventrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// MarkProcessed records a webhook event id. It returns false when the id was
// seen before, so a redelivered event can be dropped without side effects.
func (r *Repository) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	query := `
        INSERT INTO processed_events (event_id)
        VALUES ($1)
        ON CONFLICT (event_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, eventID)
	if err != nil {
		zap.L().Error("failed to mark event processed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
