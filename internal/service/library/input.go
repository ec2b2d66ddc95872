package library

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// Column sizes of the collection table.
const (
	maxISBNLen  = 13
	maxTextLen  = 100
	maxCoverLen = 50
)

// maxQueryLen caps what is sent to the catalog.
const maxQueryLen = 200

// SearchInput holds the parameters of a catalog search.
type SearchInput struct {
	Query string
}

// AddBookInput holds the book to add, as carried by the search result.
type AddBookInput struct {
	ISBN       string
	Title      string
	AuthorName string
	CoverID    *string
}

// normalized trims the fields and truncates title and author to the
// column size. Catalog titles can be longer than what is stored.
func (i AddBookInput) normalized() AddBookInput {
	i.ISBN = domain.NormalizeISBN(i.ISBN)
	i.Title = domain.Truncate(strings.TrimSpace(i.Title), maxTextLen)
	i.AuthorName = domain.Truncate(strings.TrimSpace(i.AuthorName), maxTextLen)
	if i.CoverID != nil {
		cover := strings.TrimSpace(*i.CoverID)
		if cover == "" {
			i.CoverID = nil
		} else {
			i.CoverID = &cover
		}
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i AddBookInput) Validate() error {
	var errs []domain.FieldError

	if fe := isbnError(i.ISBN); fe != nil {
		errs = append(errs, *fe)
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.AuthorName == "" {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "required"})
	}
	if i.CoverID != nil && len(*i.CoverID) > maxCoverLen {
		errs = append(errs, domain.FieldError{Field: "cover_id", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RateBookInput holds a new rating for an owned book.
type RateBookInput struct {
	ISBN   string
	Rating int
}

// Validate checks all fields and collects all errors.
func (i RateBookInput) Validate() error {
	var errs []domain.FieldError
	if fe := isbnError(i.ISBN); fe != nil {
		errs = append(errs, *fe)
	}
	if err := domain.ValidateRating(i.Rating); err != nil {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 0 and 5"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LendOutInput holds a new lend-out flag for an owned book.
type LendOutInput struct {
	ISBN    string
	LendOut bool
}

func validateISBN(isbn string) error {
	if fe := isbnError(isbn); fe != nil {
		return domain.NewValidationError(fe.Field, fe.Message)
	}
	return nil
}

func isbnError(isbn string) *domain.FieldError {
	switch {
	case isbn == "":
		return &domain.FieldError{Field: "isbn", Message: "required"}
	case utf8.RuneCountInString(isbn) > maxISBNLen:
		return &domain.FieldError{Field: "isbn", Message: "max 13 characters"}
	}
	return nil
}
