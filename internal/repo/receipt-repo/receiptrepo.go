package receiptrepo

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

// GetPurchase looks up the receipt keyed by (buyer, story). Its existence is
// the guard against a double purchase.
func (r *Repository) GetPurchase(ctx context.Context, buyerID, storyID string) (*domain.Purchase, error) {
	query := `
        SELECT buyer_id, story_id, author_id, price, title, created_at
        FROM purchases
        WHERE buyer_id = $1 AND story_id = $2
    `
	row := r.db.QueryRow(ctx, query, buyerID, storyID)
	var p domain.Purchase
	err := row.Scan(&p.BuyerID, &p.StoryID, &p.AuthorID, &p.Price, &p.Title, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get purchase receipt", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreatePurchase(ctx context.Context, p *domain.Purchase) error {
	query := `
        INSERT INTO purchases (buyer_id, story_id, author_id, price, title)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, p.BuyerID, p.StoryID, p.AuthorID, p.Price, p.Title)
	if err != nil {
		zap.L().Error("failed to create purchase receipt", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateSale(ctx context.Context, s *domain.Sale) error {
	query := `
        INSERT INTO sales (author_id, story_id, buyer_id, price, title)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, s.AuthorID, s.StoryID, s.BuyerID, s.Price, s.Title)
	if err != nil {
		zap.L().Error("failed to create sale receipt", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListPurchasesByBuyer(ctx context.Context, buyerID string) ([]domain.Purchase, error) {
	query := `
        SELECT buyer_id, story_id, author_id, price, title, created_at
        FROM purchases
        WHERE buyer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, buyerID)
	if err != nil {
		zap.L().Error("failed to list purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(&p.BuyerID, &p.StoryID, &p.AuthorID, &p.Price, &p.Title, &p.CreatedAt); err != nil {
			zap.L().Error("failed to scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *Repository) ListSalesByAuthor(ctx context.Context, authorID string) ([]domain.Sale, error) {
	query := `
        SELECT id, author_id, story_id, buyer_id, price, title, created_at
        FROM sales
        WHERE author_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		zap.L().Error("failed to list sales", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.AuthorID, &s.StoryID, &s.BuyerID, &s.Price, &s.Title, &s.CreatedAt); err != nil {
			zap.L().Error("failed to scan sale row", zap.Error(err))
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, nil
}
