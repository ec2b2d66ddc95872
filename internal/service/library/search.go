package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// Search queries the catalog and reconciles the results with the team's
// aggregates and the caller's own collection. The catalog call runs
// concurrently with the collection reads. A catalog failure does not fail
// the search: the result is marked Unavailable instead. Store failures do.
func (s *Service) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	query := domain.Truncate(domain.NormalizeQuery(input.Query), maxQueryLen)
	result := &SearchResult{Query: query, Items: []domain.SearchItem{}}

	var (
		books     []domain.Book
		owned     []domain.CollectionItem
		count     int
		searchErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	if query != "" {
		g.Go(func() error {
			books, searchErr = s.catalog.Search(gctx, query)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		owned, err = s.store.GetCollection(gctx, id.TeamID, id.MemberID)
		if err != nil {
			return fmt.Errorf("get collection: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		count, err = s.store.CountCollection(gctx, id.TeamID, id.MemberID)
		if err != nil {
			return fmt.Errorf("count collection: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	result.Full = count >= s.maxItems

	if searchErr != nil {
		if !errors.Is(searchErr, domain.ErrSearchUnavailable) && ctx.Err() != nil {
			return nil, searchErr
		}
		s.log.WarnContext(ctx, "catalog search failed",
			slog.String("query", query),
			slog.String("error", searchErr.Error()),
		)
		result.Unavailable = true
		return result, nil
	}
	if len(books) == 0 {
		return result, nil
	}

	isbns := make([]string, len(books))
	for i, b := range books {
		isbns[i] = b.ISBN
	}
	infos, err := s.store.GetAggregateInfo(ctx, id.TeamID, isbns)
	if err != nil {
		return nil, fmt.Errorf("get aggregate info: %w", err)
	}

	result.Items = Reconcile(books, infos, owned)
	return result, nil
}
