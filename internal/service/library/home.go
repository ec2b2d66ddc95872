package library

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// Home returns the caller's collection and whether it reached the size limit.
func (s *Service) Home(ctx context.Context) (*HomeResult, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	var (
		items []domain.CollectionItem
		count int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.store.GetCollection(gctx, id.TeamID, id.MemberID)
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

	return &HomeResult{Items: items, Full: count >= s.maxItems}, nil
}

// MemberCollection returns another member's collection in the caller's team.
func (s *Service) MemberCollection(ctx context.Context, memberID string) ([]domain.CollectionItem, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if memberID == "" {
		return nil, domain.NewValidationError("member_id", "required")
	}

	items, err := s.store.GetCollection(ctx, id.TeamID, memberID)
	if err != nil {
		return nil, fmt.Errorf("get member collection: %w", err)
	}
	return items, nil
}
