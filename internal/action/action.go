// Package action defines the interactive action ids of the bot and the
// codec for the values carried by buttons and select options.
//
// A value is a list of fields joined by '|'. Inside a field, '|' and '\'
// are escaped with a backslash, so titles containing a pipe survive the
// round trip. Values produced before escaping existed decode unchanged as
// long as they contain no backslash.
package action

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// Action ids without an encoded value.
const (
	BookSearchSubmitID     = "book_search_submit"
	ShowHomeID             = "show_home"
	OtherUsersCollectionID = "other_users_collection"
)

// Action ids of the payload variants.
const (
	AddItemID       = "collection_add_item"
	RemoveItemID    = "collection_remove_item"
	FindLendersID   = "collection_item_find_lenders"
	UpdateRatingID  = "collection_item_update_rating"
	UpdateLendOutID = "collection_item_update_lend_out"
	FindOwnersID    = "collection_item_find_other_ratings"
)

const (
	separator = '|'
	escape    = '\\'
)

// Payload is one of the value variants below.
type Payload interface {
	ActionID() string
	fields() []string
}

// AddItem adds a search result to the viewer's collection.
type AddItem struct {
	ISBN       string
	Title      string
	AuthorName string
	CoverID    *string
}

// RemoveItem removes a book from the viewer's collection.
type RemoveItem struct {
	ISBN string
}

// FindLenders lists teammates who would lend the book.
type FindLenders struct {
	ISBN  string
	Title string
}

// UpdateRating sets the viewer's rating of a book they own.
type UpdateRating struct {
	ISBN   string
	Rating int
}

// UpdateLendOut sets whether the viewer would lend a book they own.
type UpdateLendOut struct {
	ISBN    string
	LendOut bool
}

// FindOwners lists teammates who own the book with their ratings.
// ViewerOwns only changes the wording of the result.
type FindOwners struct {
	ISBN       string
	Title      string
	ViewerOwns bool
}

func (AddItem) ActionID() string       { return AddItemID }
func (RemoveItem) ActionID() string    { return RemoveItemID }
func (FindLenders) ActionID() string   { return FindLendersID }
func (UpdateRating) ActionID() string  { return UpdateRatingID }
func (UpdateLendOut) ActionID() string { return UpdateLendOutID }
func (FindOwners) ActionID() string    { return FindOwnersID }

func (p AddItem) fields() []string {
	cover := ""
	if p.CoverID != nil {
		cover = *p.CoverID
	}
	return []string{p.ISBN, p.Title, p.AuthorName, cover}
}

func (p RemoveItem) fields() []string  { return []string{p.ISBN} }
func (p FindLenders) fields() []string { return []string{p.ISBN, p.Title} }

func (p UpdateRating) fields() []string {
	return []string{p.ISBN, strconv.Itoa(p.Rating)}
}

func (p UpdateLendOut) fields() []string {
	return []string{p.ISBN, strconv.FormatBool(p.LendOut)}
}

func (p FindOwners) fields() []string {
	return []string{p.ISBN, p.Title, strconv.FormatBool(p.ViewerOwns)}
}

// Encode renders p as a button or option value.
func Encode(p Payload) string {
	fields := p.fields()
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteRune(separator)
		}
		for _, r := range f {
			if r == separator || r == escape {
				b.WriteRune(escape)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Decode parses the value raw received for actionID. Unknown ids, a wrong
// number of fields or unparsable numbers and booleans yield
// domain.ErrMalformedPayload.
func Decode(actionID, raw string) (Payload, error) {
	fields := split(raw)

	switch actionID {
	case AddItemID:
		if err := expect(actionID, fields, 4); err != nil {
			return nil, err
		}
		return AddItem{ISBN: fields[0], Title: fields[1], AuthorName: fields[2], CoverID: coverID(fields[3])}, nil

	case RemoveItemID:
		if err := expect(actionID, fields, 1); err != nil {
			return nil, err
		}
		return RemoveItem{ISBN: fields[0]}, nil

	case FindLendersID:
		if err := expect(actionID, fields, 2); err != nil {
			return nil, err
		}
		return FindLenders{ISBN: fields[0], Title: fields[1]}, nil

	case UpdateRatingID:
		if err := expect(actionID, fields, 2); err != nil {
			return nil, err
		}
		rating, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, malformed(actionID, "rating %q is not a number", fields[1])
		}
		return UpdateRating{ISBN: fields[0], Rating: rating}, nil

	case UpdateLendOutID:
		if err := expect(actionID, fields, 2); err != nil {
			return nil, err
		}
		lendOut, err := parseBool(fields[1])
		if err != nil {
			return nil, malformed(actionID, "lend out flag %q", fields[1])
		}
		return UpdateLendOut{ISBN: fields[0], LendOut: lendOut}, nil

	case FindOwnersID:
		if err := expect(actionID, fields, 3); err != nil {
			return nil, err
		}
		owns, err := parseBool(fields[2])
		if err != nil {
			return nil, malformed(actionID, "ownership flag %q", fields[2])
		}
		return FindOwners{ISBN: fields[0], Title: fields[1], ViewerOwns: owns}, nil
	}

	return nil, malformed(actionID, "unknown action")
}

// split cuts raw at unescaped separators and removes the escapes.
func split(raw string) []string {
	var (
		fields  []string
		b       strings.Builder
		escaped bool
	)
	for _, r := range raw {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == escape:
			escaped = true
		case r == separator:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(fields, b.String())
}

func expect(actionID string, fields []string, n int) error {
	if len(fields) != n {
		return malformed(actionID, "got %d fields, want %d", len(fields), n)
	}
	if fields[0] == "" {
		return malformed(actionID, "empty isbn")
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.New("not a boolean")
}

// coverID maps the empty field back to "no cover". "null" is what older
// views wrote for a missing cover.
func coverID(s string) *string {
	if s == "" || s == "null" {
		return nil
	}
	return &s
}

func malformed(actionID, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", actionID, fmt.Sprintf(format, args...), domain.ErrMalformedPayload)
}
