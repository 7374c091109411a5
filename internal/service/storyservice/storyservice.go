package storyservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/blob"
	"github.com/nightfable/nightfable/internal/cover"
	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/pg"
	"github.com/nightfable/nightfable/internal/textgen"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrStoryNotFound       = errors.New("story not found")
	ErrGenerationFailed    = errors.New("story generation failed")
	ErrNarrationFailed     = errors.New("narration failed")
	ErrInvalidVisibility   = errors.New("invalid visibility")
)

type UserRepo interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateCredits(ctx context.Context, userID string, credits int64) error
}

type StoryRepo interface {
	CreateProjections(ctx context.Context, story *domain.Story) error
	GetProjection(ctx context.Context, storyID, ownerID, projection string) (*domain.Story, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Story, error)
	UpdateContent(ctx context.Context, storyID, ownerID, text, audioPath, audioURL, coverPath, coverURL string) error
	SetStatus(ctx context.Context, storyID, ownerID, status string) error
	SetVisibility(ctx context.Context, storyID, ownerID, visibility string) (bool, error)
}

type TxLogRepo interface {
	Append(ctx context.Context, t *domain.Transaction) error
}

type TextGenerator interface {
	Generate(ctx context.Context, p textgen.Prompt) (string, error)
}

type Narrator interface {
	Synthesize(ctx context.Context, text, voiceChoice string) ([]byte, error)
}

type CoverMaker interface {
	Make(ctx context.Context, topic string) cover.Image
}

type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType, cacheControl, token string) error
	DownloadURL(key, token string) string
}

// Enqueuer hands a reserved story to the fulfillment engine.
type Enqueuer interface {
	Enqueue(storyID, ownerID string)
}

type GenerateInput struct {
	Title     string
	Direction string
	Topic     string
	LengthMin int
	Voice     string
	Music     string
}

type Service struct {
	userRepo  UserRepo
	storyRepo StoryRepo
	txLogRepo TxLogRepo
	txManager pg.TXManager

	textGen  TextGenerator
	narrator Narrator
	covers   CoverMaker
	blobs    BlobStore

	enqueuer Enqueuer
	cost     int64
}

func New(userRepo UserRepo, storyRepo StoryRepo, txLogRepo TxLogRepo, txManager pg.TXManager,
	textGen TextGenerator, narrator Narrator, covers CoverMaker, blobs BlobStore, cost int64) *Service {
	return &Service{
		userRepo:  userRepo,
		storyRepo: storyRepo,
		txLogRepo: txLogRepo,
		txManager: txManager,
		textGen:   textGen,
		narrator:  narrator,
		covers:    covers,
		blobs:     blobs,
		cost:      cost,
	}
}

// SetEnqueuer wires the fulfillment engine after construction; the engine
// itself calls back into Fulfill.
func (s *Service) SetEnqueuer(e Enqueuer) {
	s.enqueuer = e
}

// Generate runs the credit reservation and hands the story to the
// fulfillment engine. The debit and both placeholder projections commit in
// one transaction; on any failure before commit the ledger stays untouched.
func (s *Service) Generate(ctx context.Context, userID string, in GenerateInput) (string, int64, error) {
	storyID := uuid.NewString()
	var remaining int64

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.Credits < s.cost {
			return ErrInsufficientCredits
		}

		if err := s.userRepo.UpdateCredits(ctx, userID, user.Credits-s.cost); err != nil {
			return err
		}

		title := in.Title
		if title == "" {
			title = "Untitled"
		}
		length := in.LengthMin
		if length <= 0 {
			length = 5
		}
		voice := in.Voice
		if voice == "" {
			voice = "Female"
		}

		if err := s.storyRepo.CreateProjections(ctx, &domain.Story{
			ID:            storyID,
			OwnerID:       userID,
			Title:         title,
			AuthorName:    user.DisplayName,
			Topic:         in.Topic,
			Direction:     in.Direction,
			LengthMinutes: length,
			Voice:         voice,
			Music:         in.Music,
			Cost:          s.cost,
			Status:        domain.StatusGenerating,
			Visibility:    domain.VisibilityPrivate,
			Source:        domain.SourceGenerated,
		}); err != nil {
			return err
		}

		remaining = user.Credits - s.cost
		return nil
	})
	if err != nil {
		zap.L().Error("story reservation failed", zap.String("user_id", userID), zap.Error(err))
		return "", 0, err
	}

	zap.L().Info("story reserved",
		zap.String("story_id", storyID),
		zap.String("user_id", userID),
		zap.Int64("remaining_credits", remaining))

	if s.enqueuer != nil {
		s.enqueuer.Enqueue(storyID, userID)
	}
	return storyID, remaining, nil
}

// Fulfill runs the generation pipeline for a reserved story and patches both
// projections with the result. It is idempotent on storyID: stories no
// longer in the generating state are skipped. A terminal pipeline failure
// refunds the reservation and marks the story failed.
func (s *Service) Fulfill(ctx context.Context, storyID, ownerID string) error {
	story, err := s.storyRepo.GetProjection(ctx, storyID, ownerID, domain.ProjectionOwner)
	if err != nil {
		return err
	}
	if story == nil {
		return ErrStoryNotFound
	}
	if story.Status != domain.StatusGenerating {
		return nil
	}

	if err := s.fulfill(ctx, story); err != nil {
		zap.L().Error("fulfillment failed, refunding",
			zap.String("story_id", storyID), zap.Error(err))
		if refundErr := s.refund(ctx, story); refundErr != nil {
			zap.L().Error("refund failed", zap.String("story_id", storyID), zap.Error(refundErr))
			return errors.Join(err, refundErr)
		}
		return err
	}
	return nil
}

func (s *Service) fulfill(ctx context.Context, story *domain.Story) error {
	text, err := s.textGen.Generate(ctx, textgen.Prompt{
		Title:     story.Title,
		Direction: story.Direction,
		Topic:     story.Topic,
		LengthMin: story.LengthMinutes,
		Music:     story.Music,
		Voice:     story.Voice,
	})
	if err != nil {
		return errors.Join(ErrGenerationFailed, err)
	}

	audio, err := s.narrator.Synthesize(ctx, text, story.Voice)
	if err != nil {
		return errors.Join(ErrNarrationFailed, err)
	}

	img := s.covers.Make(ctx, story.Topic)

	audioKey := blob.AudioKey(story.OwnerID, story.ID)
	audioToken := uuid.NewString()
	if err := s.blobs.Put(ctx, audioKey, audio, "audio/mpeg", "public,max-age=3600", audioToken); err != nil {
		return err
	}
	audioURL := s.blobs.DownloadURL(audioKey, audioToken)

	coverKey := blob.CoverKey(story.OwnerID, story.ID, img.Extension)
	coverToken := uuid.NewString()
	if err := s.blobs.Put(ctx, coverKey, img.Data, img.ContentType, "public,max-age=86400", coverToken); err != nil {
		return err
	}
	coverURL := s.blobs.DownloadURL(coverKey, coverToken)

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.storyRepo.UpdateContent(ctx, story.ID, story.OwnerID, text, audioKey, audioURL, coverKey, coverURL); err != nil {
			return err
		}
		return s.txLogRepo.Append(ctx, &domain.Transaction{
			UserID:  story.OwnerID,
			Type:    domain.TxnDebit,
			Amount:  story.Cost,
			StoryID: &story.ID,
			Title:   "Story generation",
		})
	})
	if err != nil {
		return err
	}

	zap.L().Info("story fulfilled", zap.String("story_id", story.ID))
	return nil
}

// refund restores the reserved credits and marks both projections failed so
// a client can tell a dead story apart from one still generating.
func (s *Service) refund(ctx context.Context, story *domain.Story) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, story.OwnerID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if err := s.userRepo.UpdateCredits(ctx, story.OwnerID, user.Credits+story.Cost); err != nil {
			return err
		}
		if err := s.storyRepo.SetStatus(ctx, story.ID, story.OwnerID, domain.StatusFailed); err != nil {
			return err
		}
		return s.txLogRepo.Append(ctx, &domain.Transaction{
			UserID:  story.OwnerID,
			Type:    domain.TxnRefund,
			Amount:  story.Cost,
			StoryID: &story.ID,
			Title:   "Story generation refund",
		})
	})
}

func (s *Service) Get(ctx context.Context, ownerID, storyID string) (*domain.Story, error) {
	story, err := s.storyRepo.GetProjection(ctx, storyID, ownerID, domain.ProjectionOwner)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	return story, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]domain.Story, error) {
	stories, err := s.storyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to list stories", zap.Error(err))
		return nil, err
	}
	return stories, nil
}

// SetVisibility toggles a story between private and public. Only the owner's
// projections are touched; both are patched in one transaction.
func (s *Service) SetVisibility(ctx context.Context, ownerID, storyID, visibility string) error {
	if visibility != domain.VisibilityPrivate && visibility != domain.VisibilityPublic {
		return ErrInvalidVisibility
	}
	updated, err := s.storyRepo.SetVisibility(ctx, storyID, ownerID, visibility)
	if err != nil {
		return err
	}
	if !updated {
		return ErrStoryNotFound
	}
	return nil
}
