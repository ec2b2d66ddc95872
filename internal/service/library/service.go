// Package library implements the use cases of the book-collection bot:
// viewing and editing one's own collection, searching the catalog and
// finding teammates who own or lend a book.
package library

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/floating-librarian/internal/domain"
	"github.com/heartmarshall/floating-librarian/pkg/ctxutil"
)

// DefaultMaxItems is the collection size at which adding and searching stop.
const DefaultMaxItems = 30

//go:generate moq -out store_mock_test.go -pkg library . collectionStore
//go:generate moq -out tx_mock_test.go -pkg library . txManager
//go:generate moq -out catalog_mock_test.go -pkg library . catalog

type collectionStore interface {
	GetCollection(ctx context.Context, teamID, memberID string) ([]domain.CollectionItem, error)
	CountCollection(ctx context.Context, teamID, memberID string) (int, error)
	GetAggregateInfo(ctx context.Context, teamID string, isbns []string) ([]domain.AggregateInfo, error)
	GetUserRatings(ctx context.Context, teamID, memberID, isbn string) ([]domain.UserRating, error)
	GetPotentialLenders(ctx context.Context, teamID, memberID, isbn string) ([]string, error)
	AddEntry(ctx context.Context, e domain.Entry) error
	RemoveEntry(ctx context.Context, teamID, memberID, isbn string) error
	SetRating(ctx context.Context, teamID, memberID, isbn string, rating int) error
	SetLendOut(ctx context.Context, teamID, memberID, isbn string, lendOut bool) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type catalog interface {
	Search(ctx context.Context, query string) ([]domain.Book, error)
}

// Service provides the collection use cases.
type Service struct {
	store    collectionStore
	tx       txManager
	catalog  catalog
	maxItems int
	log      *slog.Logger
}

// NewService creates a new library service.
func NewService(
	log *slog.Logger,
	store collectionStore,
	tx txManager,
	catalog catalog,
	maxItems int,
) *Service {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &Service{
		store:    store,
		tx:       tx,
		catalog:  catalog,
		maxItems: maxItems,
		log:      log.With("service", "library"),
	}
}

// HomeResult is what the home tab shows.
type HomeResult struct {
	Items []domain.CollectionItem
	Full  bool
}

// SearchResult is what the search page shows.
type SearchResult struct {
	Query       string
	Items       []domain.SearchItem
	Unavailable bool
	Full        bool
}

func identity(ctx context.Context) (ctxutil.Identity, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}
