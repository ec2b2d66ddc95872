package library

import (
	"context"
	"fmt"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// FindLenders returns the teammates who own isbn and would lend it.
func (s *Service) FindLenders(ctx context.Context, isbn string) ([]string, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	isbn = domain.NormalizeISBN(isbn)
	if err := validateISBN(isbn); err != nil {
		return nil, err
	}

	lenders, err := s.store.GetPotentialLenders(ctx, id.TeamID, id.MemberID, isbn)
	if err != nil {
		return nil, fmt.Errorf("find lenders: %w", err)
	}
	return lenders, nil
}

// FindOwners returns the other owners of isbn with their ratings, best first.
func (s *Service) FindOwners(ctx context.Context, isbn string) ([]domain.UserRating, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	isbn = domain.NormalizeISBN(isbn)
	if err := validateISBN(isbn); err != nil {
		return nil, err
	}

	ratings, err := s.store.GetUserRatings(ctx, id.TeamID, id.MemberID, isbn)
	if err != nil {
		return nil, fmt.Errorf("find owners: %w", err)
	}
	return ratings, nil
}
