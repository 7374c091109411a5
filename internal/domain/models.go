package domain

import "time"

const (
	// ProjectionOwner is the owner-scoped private copy of a story.
	ProjectionOwner = "owner"
	// ProjectionCatalog is the global copy shown in the public store.
	ProjectionCatalog = "catalog"
)

const (
	StatusGenerating = "generating"
	StatusReady      = "ready"
	StatusFailed     = "failed"
)

const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

const (
	SourceGenerated = "generated"
	SourcePurchase  = "purchase"
)

const (
	TxnDebit    = "debit"
	TxnCredit   = "credit"
	TxnPurchase = "purchase"
	TxnRefund   = "refund"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Credits      int64     `db:"credits"`
	CreatedAt    time.Time `db:"created_at"`
}

type Story struct {
	ID              string    `db:"id"`
	OwnerID         string    `db:"owner_id"`
	Projection      string    `db:"projection"`
	Title           string    `db:"title"`
	AuthorName      string    `db:"author_name"`
	Topic           string    `db:"topic"`
	Direction       string    `db:"direction"`
	LengthMinutes   int       `db:"length_minutes"`
	Voice           string    `db:"voice"`
	Music           string    `db:"music"`
	Cost            int64     `db:"cost"`
	Status          string    `db:"status"`
	Visibility      string    `db:"visibility"`
	Text            *string   `db:"text"`
	AudioPath       *string   `db:"audio_path"`
	AudioURL        *string   `db:"audio_url"`
	CoverPath       *string   `db:"cover_path"`
	CoverURL        *string   `db:"cover_url"`
	Source          string    `db:"source"`
	OriginalOwnerID *string   `db:"original_owner_id"`
	SalesCount      int       `db:"sales_count"`
	LikesCount      int       `db:"likes_count"`
	CommentsCount   int       `db:"comments_count"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Purchase struct {
	BuyerID   string    `db:"buyer_id"`
	StoryID   string    `db:"story_id"`
	AuthorID  string    `db:"author_id"`
	Price     int64     `db:"price"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}

type Sale struct {
	ID        int64     `db:"id"`
	AuthorID  string    `db:"author_id"`
	StoryID   string    `db:"story_id"`
	BuyerID   string    `db:"buyer_id"`
	Price     int64     `db:"price"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}

type Transaction struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Type      string    `db:"type"`
	Amount    int64     `db:"amount"`
	StoryID   *string   `db:"story_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}
