package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// AddBook adds a search result to the caller's collection and returns the
// refreshed home. The size check and the insert share one transaction.
// Adding a book already in the collection creates a second entry.
func (s *Service) AddBook(ctx context.Context, input AddBookInput) (*HomeResult, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		count, err := s.store.CountCollection(ctx, id.TeamID, id.MemberID)
		if err != nil {
			return fmt.Errorf("count collection: %w", err)
		}
		if count >= s.maxItems {
			return domain.NewValidationError("collection", fmt.Sprintf("collection is full (max %d books)", s.maxItems))
		}

		return s.store.AddEntry(ctx, domain.Entry{
			TeamID:     id.TeamID,
			MemberID:   id.MemberID,
			ISBN:       input.ISBN,
			Title:      input.Title,
			AuthorName: input.AuthorName,
			CoverID:    input.CoverID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("add book: %w", err)
	}

	s.log.InfoContext(ctx, "book added",
		slog.String("team_id", id.TeamID),
		slog.String("member_id", id.MemberID),
		slog.String("isbn", input.ISBN),
	)

	return s.Home(ctx)
}

// RemoveBook removes every entry of isbn from the caller's collection.
func (s *Service) RemoveBook(ctx context.Context, isbn string) (*HomeResult, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	isbn = domain.NormalizeISBN(isbn)
	if err := validateISBN(isbn); err != nil {
		return nil, err
	}

	if err := s.store.RemoveEntry(ctx, id.TeamID, id.MemberID, isbn); err != nil {
		return nil, fmt.Errorf("remove book: %w", err)
	}

	s.log.InfoContext(ctx, "book removed",
		slog.String("team_id", id.TeamID),
		slog.String("member_id", id.MemberID),
		slog.String("isbn", isbn),
	)

	return s.Home(ctx)
}

// RateBook sets the caller's rating (0 clears it) of a book they own.
func (s *Service) RateBook(ctx context.Context, input RateBookInput) (*HomeResult, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	input.ISBN = domain.NormalizeISBN(input.ISBN)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.SetRating(ctx, id.TeamID, id.MemberID, input.ISBN, input.Rating); err != nil {
		return nil, fmt.Errorf("rate book: %w", err)
	}

	return s.Home(ctx)
}

// SetLendOut sets whether the caller would lend a book they own.
func (s *Service) SetLendOut(ctx context.Context, input LendOutInput) (*HomeResult, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	input.ISBN = domain.NormalizeISBN(input.ISBN)
	if err := validateISBN(input.ISBN); err != nil {
		return nil, err
	}

	if err := s.store.SetLendOut(ctx, id.TeamID, id.MemberID, input.ISBN, input.LendOut); err != nil {
		return nil, fmt.Errorf("set lend out: %w", err)
	}

	return s.Home(ctx)
}
