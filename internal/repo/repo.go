package repo

import (
	"github.com/nightfable/nightfable/internal/pg"
	eventrepo "github.com/nightfable/nightfable/internal/repo/event-repo"
	receiptrepo "github.com/nightfable/nightfable/internal/repo/receipt-repo"
	storyrepo "github.com/nightfable/nightfable/internal/repo/story-repo"
	txlogrepo "github.com/nightfable/nightfable/internal/repo/txlog-repo"
	userrepo "github.com/nightfable/nightfable/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	StoryRepo   *storyrepo.Repository
	ReceiptRepo *receiptrepo.Repository
	TxLogRepo   *txlogrepo.Repository
	EventRepo   *eventrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		StoryRepo:   storyrepo.New(conn, txManager),
		ReceiptRepo: receiptrepo.New(conn),
		TxLogRepo:   txlogrepo.New(conn),
		EventRepo:   eventrepo.New(conn),
	}
}
