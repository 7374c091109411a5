package storyrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/pg"
)

const storyColumns = `id, owner_id, projection, title, author_name, topic, direction, length_minutes,
        voice, music, cost, status, visibility, text, audio_path, audio_url,
        cover_path, cover_url, source, original_owner_id, sales_count,
        likes_count, comments_count, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanStory(row pgx.Row) (*domain.Story, error) {
	var s domain.Story
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Projection, &s.Title, &s.AuthorName, &s.Topic, &s.Direction, &s.LengthMinutes,
		&s.Voice, &s.Music, &s.Cost, &s.Status, &s.Visibility, &s.Text, &s.AudioPath, &s.AudioURL,
		&s.CoverPath, &s.CoverURL, &s.Source, &s.OriginalOwnerID, &s.SalesCount,
		&s.LikesCount, &s.CommentsCount, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateProjections inserts the owner-private and catalog copies of a new
// story in one statement, so neither can exist without the other.
func (r *Repository) CreateProjections(ctx context.Context, story *domain.Story) error {
	query := `
        INSERT INTO stories (id, owner_id, projection, title, author_name, topic, direction,
            length_minutes, voice, music, cost, status, visibility, source)
        VALUES
            ($1, $2, 'owner',   $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13),
            ($1, $2, 'catalog', $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err := r.db.Exec(ctx, query,
		story.ID, story.OwnerID, story.Title, story.AuthorName, story.Topic, story.Direction,
		story.LengthMinutes, story.Voice, story.Music, story.Cost,
		story.Status, story.Visibility, story.Source,
	)
	if err != nil {
		zap.L().Error("failed to create story projections", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetProjection(ctx context.Context, storyID, ownerID, projection string) (*domain.Story, error) {
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE id = $1 AND owner_id = $2 AND projection = $3
    `
	story, err := scanStory(r.db.QueryRow(ctx, query, storyID, ownerID, projection))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get story projection", zap.Error(err))
		return nil, err
	}
	return story, nil
}

// GetCatalog returns the single catalog projection of a story regardless of owner.
func (r *Repository) GetCatalog(ctx context.Context, storyID string) (*domain.Story, error) {
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE id = $1 AND projection = 'catalog'
    `
	story, err := scanStory(r.db.QueryRow(ctx, query, storyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get catalog story", zap.Error(err))
		return nil, err
	}
	return story, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Story, error) {
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE owner_id = $1 AND projection = 'owner'
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, ownerID)
}

func (r *Repository) ListPublicReady(ctx context.Context) ([]domain.Story, error) {
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE projection = 'catalog' AND visibility = 'public' AND status = 'ready'
        ORDER BY created_at DESC
    `
	return r.list(ctx, query)
}

// FindStalled returns owner projections left generating for longer than
// the given cutoff, oldest first.
func (r *Repository) FindStalled(ctx context.Context, cutoff time.Time, limit int) ([]domain.Story, error) {
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE projection = 'owner' AND source = 'generated'
            AND status = 'generating' AND updated_at < $1
        ORDER BY updated_at ASC
        LIMIT $2
    `
	return r.list(ctx, query, cutoff, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Story, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list stories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stories []domain.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			zap.L().Error("failed to scan story row", zap.Error(err))
			return nil, err
		}
		stories = append(stories, *story)
	}
	return stories, nil
}

// UpdateContent patches both projections of a story with the final generated
// content inside one transaction, so no projection is finalized alone.
func (r *Repository) UpdateContent(ctx context.Context, storyID, ownerID, text, audioPath, audioURL, coverPath, coverURL string) error {
	query := `
        UPDATE stories
        SET text = $1, audio_path = $2, audio_url = $3, cover_path = $4, cover_url = $5,
            status = 'ready', updated_at = now()
        WHERE id = $6 AND owner_id = $7
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, text, audioPath, audioURL, coverPath, coverURL, storyID, ownerID)
		if err != nil {
			zap.L().Error("failed to update story content", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) SetStatus(ctx context.Context, storyID, ownerID, status string) error {
	query := `
        UPDATE stories
        SET status = $1, updated_at = now()
        WHERE id = $2 AND owner_id = $3
    `
	_, err := r.db.Exec(ctx, query, status, storyID, ownerID)
	if err != nil {
		zap.L().Error("failed to set story status", zap.Error(err))
		return err
	}
	return nil
}

// SetVisibility patches both projections and reports whether any row matched.
func (r *Repository) SetVisibility(ctx context.Context, storyID, ownerID, visibility string) (bool, error) {
	query := `
        UPDATE stories
        SET visibility = $1, updated_at = now()
        WHERE id = $2 AND owner_id = $3
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, visibility, storyID, ownerID)
		if err != nil {
			zap.L().Error("failed to set story visibility", zap.Error(err))
			return err
		}
		updated = tag.RowsAffected() > 0
		return nil
	})
	return updated, err
}

// CreateClone inserts the buyer's private copy of a purchased story.
func (r *Repository) CreateClone(ctx context.Context, story *domain.Story) error {
	query := `
        INSERT INTO stories (id, owner_id, projection, title, author_name, topic, direction,
            length_minutes, voice, music, cost, status, visibility, text,
            audio_path, audio_url, cover_path, cover_url, source, original_owner_id)
        VALUES ($1, $2, 'owner', $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    `
	_, err := r.db.Exec(ctx, query,
		story.ID, story.OwnerID, story.Title, story.AuthorName, story.Topic, story.Direction,
		story.LengthMinutes, story.Voice, story.Music, story.Cost,
		story.Status, story.Visibility, story.Text,
		story.AudioPath, story.AudioURL, story.CoverPath, story.CoverURL,
		story.Source, story.OriginalOwnerID,
	)
	if err != nil {
		zap.L().Error("failed to create story clone", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementSales(ctx context.Context, storyID string) error {
	query := `
        UPDATE stories
        SET sales_count = sales_count + 1, updated_at = now()
        WHERE id = $1 AND projection = 'catalog'
    `
	_, err := r.db.Exec(ctx, query, storyID)
	if err != nil {
		zap.L().Error("failed to increment sales count", zap.Error(err))
		return err
	}
	return nil
}
