package marketservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nightfable/nightfable/internal/domain"
	"github.com/nightfable/nightfable/internal/pg"
)

var (
	ErrStoryNotFound       = errors.New("story not found")
	ErrNotPublic           = errors.New("story is not public")
	ErrNoAuthor            = errors.New("story has no author")
	ErrCannotBuyOwnStory   = errors.New("cannot buy own story")
	ErrAlreadyPurchased    = errors.New("story already purchased")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrUserNotFound        = errors.New("user not found")
)

type UserRepo interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateCredits(ctx context.Context, userID string, credits int64) error
}

type StoryRepo interface {
	GetCatalog(ctx context.Context, storyID string) (*domain.Story, error)
	GetProjection(ctx context.Context, storyID, ownerID, projection string) (*domain.Story, error)
	ListPublicReady(ctx context.Context) ([]domain.Story, error)
	CreateClone(ctx context.Context, story *domain.Story) error
	IncrementSales(ctx context.Context, storyID string) error
}

type ReceiptRepo interface {
	GetPurchase(ctx context.Context, buyerID, storyID string) (*domain.Purchase, error)
	CreatePurchase(ctx context.Context, p *domain.Purchase) error
	CreateSale(ctx context.Context, s *domain.Sale) error
	ListPurchasesByBuyer(ctx context.Context, buyerID string) ([]domain.Purchase, error)
	ListSalesByAuthor(ctx context.Context, authorID string) ([]domain.Sale, error)
}

type TxLogRepo interface {
	Append(ctx context.Context, t *domain.Transaction) error
}

type Service struct {
	userRepo    UserRepo
	storyRepo   StoryRepo
	receiptRepo ReceiptRepo
	txLogRepo   TxLogRepo
	txManager   pg.TXManager
	price       int64
}

func New(userRepo UserRepo, storyRepo StoryRepo, receiptRepo ReceiptRepo, txLogRepo TxLogRepo, txManager pg.TXManager, price int64) *Service {
	return &Service{
		userRepo:    userRepo,
		storyRepo:   storyRepo,
		receiptRepo: receiptRepo,
		txLogRepo:   txLogRepo,
		txManager:   txManager,
		price:       price,
	}
}

func (s *Service) ListStore(ctx context.Context) ([]domain.Story, error) {
	stories, err := s.storyRepo.ListPublicReady(ctx)
	if err != nil {
		zap.L().Error("failed to list store", zap.Error(err))
		return nil, err
	}
	return stories, nil
}

func (s *Service) ListPurchases(ctx context.Context, buyerID string) ([]domain.Purchase, error) {
	purchases, err := s.receiptRepo.ListPurchasesByBuyer(ctx, buyerID)
	if err != nil {
		zap.L().Error("failed to list purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}

func (s *Service) ListSales(ctx context.Context, authorID string) ([]domain.Sale, error) {
	sales, err := s.receiptRepo.ListSalesByAuthor(ctx, authorID)
	if err != nil {
		zap.L().Error("failed to list sales", zap.Error(err))
		return nil, err
	}
	return sales, nil
}

// Purchase transfers the price from buyer to author, clones the story into
// the buyer's private collection, writes both receipts and bumps the sales
// counter, all in one serializable transaction. All reads happen before any
// write, so two racing buyers each pay exactly once; the purchase receipt
// key blocks the same buyer from paying twice.
func (s *Service) Purchase(ctx context.Context, buyerID, storyID string) (int64, error) {
	var remaining int64

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		catalog, err := s.storyRepo.GetCatalog(ctx, storyID)
		if err != nil {
			return err
		}
		if catalog == nil {
			return ErrStoryNotFound
		}
		if catalog.Visibility != domain.VisibilityPublic {
			return ErrNotPublic
		}
		authorID := catalog.OwnerID
		if authorID == "" {
			return ErrNoAuthor
		}
		if authorID == buyerID {
			return ErrCannotBuyOwnStory
		}

		receipt, err := s.receiptRepo.GetPurchase(ctx, buyerID, storyID)
		if err != nil {
			return err
		}
		if receipt != nil {
			return ErrAlreadyPurchased
		}

		buyer, err := s.userRepo.GetByID(ctx, buyerID)
		if err != nil {
			return err
		}
		if buyer == nil {
			return ErrUserNotFound
		}
		if buyer.Credits < s.price {
			return ErrInsufficientCredits
		}

		author, err := s.userRepo.GetByID(ctx, authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return ErrNoAuthor
		}

		authorCopy, err := s.storyRepo.GetProjection(ctx, storyID, authorID, domain.ProjectionOwner)
		if err != nil {
			return err
		}

		clone := mergeClone(catalog, authorCopy, buyerID)

		if err := s.userRepo.UpdateCredits(ctx, buyerID, buyer.Credits-s.price); err != nil {
			return err
		}
		if err := s.userRepo.UpdateCredits(ctx, authorID, author.Credits+s.price); err != nil {
			return err
		}
		if err := s.storyRepo.CreateClone(ctx, clone); err != nil {
			return err
		}
		if err := s.receiptRepo.CreatePurchase(ctx, &domain.Purchase{
			BuyerID:  buyerID,
			StoryID:  storyID,
			AuthorID: authorID,
			Price:    s.price,
			Title:    clone.Title,
		}); err != nil {
			return err
		}
		if err := s.receiptRepo.CreateSale(ctx, &domain.Sale{
			AuthorID: authorID,
			StoryID:  storyID,
			BuyerID:  buyerID,
			Price:    s.price,
			Title:    clone.Title,
		}); err != nil {
			return err
		}
		if err := s.storyRepo.IncrementSales(ctx, storyID); err != nil {
			return err
		}
		if err := s.txLogRepo.Append(ctx, &domain.Transaction{
			UserID:  buyerID,
			Type:    domain.TxnDebit,
			Amount:  s.price,
			StoryID: &storyID,
			Title:   "Story purchase",
		}); err != nil {
			return err
		}
		if err := s.txLogRepo.Append(ctx, &domain.Transaction{
			UserID:  authorID,
			Type:    domain.TxnCredit,
			Amount:  s.price,
			StoryID: &storyID,
			Title:   "Story sale",
		}); err != nil {
			return err
		}

		remaining = buyer.Credits - s.price
		return nil
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("story purchased",
		zap.String("story_id", storyID),
		zap.String("buyer_id", buyerID),
		zap.Int64("remaining_credits", remaining))
	return remaining, nil
}

// mergeClone builds the buyer's private copy: catalog fields win, the
// author's private projection backfills anything the catalog is missing.
func mergeClone(catalog, authorCopy *domain.Story, buyerID string) *domain.Story {
	clone := &domain.Story{
		ID:              catalog.ID,
		OwnerID:         buyerID,
		Projection:      domain.ProjectionOwner,
		Title:           catalog.Title,
		AuthorName:      catalog.AuthorName,
		Topic:           catalog.Topic,
		Direction:       catalog.Direction,
		LengthMinutes:   catalog.LengthMinutes,
		Voice:           catalog.Voice,
		Music:           catalog.Music,
		Cost:            catalog.Cost,
		Status:          domain.StatusReady,
		Visibility:      domain.VisibilityPrivate,
		Text:            catalog.Text,
		AudioPath:       catalog.AudioPath,
		AudioURL:        catalog.AudioURL,
		CoverPath:       catalog.CoverPath,
		CoverURL:        catalog.CoverURL,
		Source:          domain.SourcePurchase,
		OriginalOwnerID: &catalog.OwnerID,
	}
	if authorCopy == nil {
		return clone
	}
	if clone.Title == "" {
		clone.Title = authorCopy.Title
	}
	if clone.AuthorName == "" {
		clone.AuthorName = authorCopy.AuthorName
	}
	if clone.Topic == "" {
		clone.Topic = authorCopy.Topic
	}
	if clone.Music == "" {
		clone.Music = authorCopy.Music
	}
	if clone.Voice == "" {
		clone.Voice = authorCopy.Voice
	}
	if clone.LengthMinutes == 0 {
		clone.LengthMinutes = authorCopy.LengthMinutes
	}
	if clone.Text == nil {
		clone.Text = authorCopy.Text
	}
	if clone.AudioPath == nil {
		clone.AudioPath = authorCopy.AudioPath
	}
	if clone.AudioURL == nil {
		clone.AudioURL = authorCopy.AudioURL
	}
	if clone.CoverPath == nil {
		clone.CoverPath = authorCopy.CoverPath
	}
	if clone.CoverURL == nil {
		clone.CoverURL = authorCopy.CoverURL
	}
	return clone
}
