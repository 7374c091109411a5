package storyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	txManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, txManager)
	defer mockDB.Close()

	return repo, mockDB, txManager
}

var storyRowColumns = []string{
	"id", "owner_id", "projection", "title", "author_name", "topic", "direction", "length_minutes",
	"voice", "music", "cost", "status", "visibility", "text", "audio_path", "audio_url",
	"cover_path", "cover_url", "source", "original_owner_id", "sales_count",
	"likes_count", "comments_count", "created_at", "updated_at",
}

func storyRow(s *domain.Story) []any {
	return []any{
		s.ID, s.OwnerID, s.Projection, s.Title, s.AuthorName, s.Topic, s.Direction, s.LengthMinutes,
		s.Voice, s.Music, s.Cost, s.Status, s.Visibility, s.Text, s.AudioPath, s.AudioURL,
		s.CoverPath, s.CoverURL, s.Source, s.OriginalOwnerID, s.SalesCount,
		s.LikesCount, s.CommentsCount, s.CreatedAt, s.UpdatedAt,
	}
}

func sampleStory() *domain.Story {
	now := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	return &domain.Story{
		ID:            "story-1",
		OwnerID:       "user-1",
		Projection:    domain.ProjectionOwner,
		Title:         "The Sleepy Comet",
		AuthorName:    "Luna",
		Topic:         "Space",
		Direction:     "a comet who is afraid of the dark",
		LengthMinutes: 5,
		Voice:         "Female",
		Music:         "Ambient",
		Cost:          5,
		Status:        domain.StatusGenerating,
		Visibility:    domain.VisibilityPrivate,
		Source:        domain.SourceGenerated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRepository_CreateProjections(t *testing.T) {
	repo, mock, _ := NewMock(t)
	story := sampleStory()
	query := `
        INSERT INTO stories (id, owner_id, projection, title, author_name, topic, direction,
            length_minutes, voice, music, cost, status, visibility, source)
        VALUES
            ($1, $2, 'owner',   $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13),
            ($1, $2, 'catalog', $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Both projections inserted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(story.ID, story.OwnerID, story.Title, story.AuthorName, story.Topic, story.Direction,
						story.LengthMinutes, story.Voice, story.Music, story.Cost,
						story.Status, story.Visibility, story.Source).
					WillReturnResult(pgxmock.NewResult("INSERT", 2))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(story.ID, story.OwnerID, story.Title, story.AuthorName, story.Topic, story.Direction,
						story.LengthMinutes, story.Voice, story.Music, story.Cost,
						story.Status, story.Visibility, story.Source).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreateProjections(context.Background(), story)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_GetProjection(t *testing.T) {
	repo, mock, _ := NewMock(t)
	story := sampleStory()
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE id = $1 AND owner_id = $2 AND projection = $3
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Story
	}{
		{
			name: "Story found",
			mockSetup: func() {
				rows := pgxmock.NewRows(storyRowColumns).AddRow(storyRow(story)...)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("story-1", "user-1", domain.ProjectionOwner).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    story,
		},
		{
			name: "Story not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("story-1", "user-1", domain.ProjectionOwner).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("story-1", "user-1", domain.ProjectionOwner).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetProjection(context.Background(), "story-1", "user-1", domain.ProjectionOwner)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetCatalog(t *testing.T) {
	repo, mock, _ := NewMock(t)
	story := sampleStory()
	story.Projection = domain.ProjectionCatalog
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE id = $1 AND projection = 'catalog'
    `

	t.Run("Catalog row found", func(t *testing.T) {
		rows := pgxmock.NewRows(storyRowColumns).AddRow(storyRow(story)...)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("story-1").
			WillReturnRows(rows)

		result, err := repo.GetCatalog(context.Background(), "story-1")
		assert.NoError(t, err)
		assert.Equal(t, story, result)
	})

	t.Run("Catalog row missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("story-1").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.GetCatalog(context.Background(), "story-1")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_ListByOwner(t *testing.T) {
	repo, mock, _ := NewMock(t)
	story := sampleStory()
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE owner_id = $1 AND projection = 'owner'
        ORDER BY created_at DESC
    `

	t.Run("Owner has stories", func(t *testing.T) {
		rows := pgxmock.NewRows(storyRowColumns).AddRow(storyRow(story)...)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("user-1").
			WillReturnRows(rows)

		result, err := repo.ListByOwner(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, *story, result[0])
	})

	t.Run("Owner has no stories", func(t *testing.T) {
		rows := pgxmock.NewRows(storyRowColumns)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("user-1").
			WillReturnRows(rows)

		result, err := repo.ListByOwner(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("user-1").
			WillReturnError(errors.New("database error"))

		result, err := repo.ListByOwner(context.Background(), "user-1")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindStalled(t *testing.T) {
	repo, mock, _ := NewMock(t)
	story := sampleStory()
	cutoff := time.Date(2026, 3, 1, 19, 50, 0, 0, time.UTC)
	query := `
        SELECT ` + storyColumns + `
        FROM stories
        WHERE projection = 'owner' AND source = 'generated'
            AND status = 'generating' AND updated_at < $1
        ORDER BY updated_at ASC
        LIMIT $2
    `

	t.Run("Stalled stories found", func(t *testing.T) {
		rows := pgxmock.NewRows(storyRowColumns).AddRow(storyRow(story)...)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(cutoff, 100).
			WillReturnRows(rows)

		result, err := repo.FindStalled(context.Background(), cutoff, 100)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func TestRepository_UpdateContent(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	query := `
        UPDATE stories
        SET text = $1, audio_path = $2, audio_url = $3, cover_path = $4, cover_url = $5,
            status = 'ready', updated_at = now()
        WHERE id = $6 AND owner_id = $7
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Content updated in one transaction",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("once upon a time", "stories/user-1/story-1.mp3", "https://audio", "stories/user-1/story-1.jpg", "https://cover", "story-1", "user-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
			},
			expectErr: false,
		},
		{
			name: "Database error rolls back",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs("once upon a time", "stories/user-1/story-1.mp3", "https://audio", "stories/user-1/story-1.jpg", "https://cover", "story-1", "user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateContent(context.Background(), "story-1", "user-1",
				"once upon a time", "stories/user-1/story-1.mp3", "https://audio",
				"stories/user-1/story-1.jpg", "https://cover")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_SetStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := `
        UPDATE stories
        SET status = $1, updated_at = now()
        WHERE id = $2 AND owner_id = $3
    `

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(domain.StatusFailed, "story-1", "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	err := repo.SetStatus(context.Background(), "story-1", "user-1", domain.StatusFailed)
	assert.NoError(t, err)
}

func TestRepository_SetVisibility(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	query := `
        UPDATE stories
        SET visibility = $1, updated_at = now()
        WHERE id = $2 AND owner_id = $3
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		updated   bool
	}{
		{
			name: "Both projections updated",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.VisibilityPublic, "story-1", "user-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
			},
			expectErr: false,
			updated:   true,
		},
		{
			name: "No rows matched",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.VisibilityPublic, "story-1", "user-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			updated:   false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(domain.VisibilityPublic, "story-1", "user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			updated:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.SetVisibility(context.Background(), "story-1", "user-1", domain.VisibilityPublic)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestRepository_CreateClone(t *testing.T) {
	repo, mock, _ := NewMock(t)
	text := "once upon a time"
	originalOwner := "user-1"
	clone := sampleStory()
	clone.OwnerID = "buyer-1"
	clone.Status = domain.StatusReady
	clone.Source = domain.SourcePurchase
	clone.Text = &text
	clone.OriginalOwnerID = &originalOwner
	query := `
        INSERT INTO stories (id, owner_id, projection, title, author_name, topic, direction,
            length_minutes, voice, music, cost, status, visibility, text,
            audio_path, audio_url, cover_path, cover_url, source, original_owner_id)
        VALUES ($1, $2, 'owner', $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    `

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(clone.ID, clone.OwnerID, clone.Title, clone.AuthorName, clone.Topic, clone.Direction,
			clone.LengthMinutes, clone.Voice, clone.Music, clone.Cost,
			clone.Status, clone.Visibility, clone.Text,
			clone.AudioPath, clone.AudioURL, clone.CoverPath, clone.CoverURL,
			clone.Source, clone.OriginalOwnerID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateClone(context.Background(), clone)
	assert.NoError(t, err)
}

func TestRepository_IncrementSales(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := `
        UPDATE stories
        SET sales_count = sales_count + 1, updated_at = now()
        WHERE id = $1 AND projection = 'catalog'
    `

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("story-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementSales(context.Background(), "story-1")
	assert.NoError(t, err)
}
