package domain

// Entry is one (team, member, book) ownership record of the collection store.
// At most one entry is expected per (TeamID, MemberID, ISBN); the store does not
// enforce it.
type Entry struct {
	TeamID     string
	MemberID   string
	ISBN       string
	Title      string
	AuthorName string
	CoverID    *string // opaque, only used to build cover image URLs
	LendOut    bool
	Rating     int // 0 = unrated, 1..5 stars
}

// AggregateInfo holds team-scoped statistics for one book. It is derived from
// the current entries on every read and never stored.
type AggregateInfo struct {
	ISBN        string
	OwnerCount  int
	LenderCount int
	// AvgRating is the mean over owners with a non-zero rating, 0 when nobody rated.
	AvgRating float64
}

// ZeroAggregate is the info of a book nobody in the team owns yet.
func ZeroAggregate(isbn string) AggregateInfo {
	return AggregateInfo{ISBN: isbn}
}

// CollectionItem is a member's entry joined with the team aggregate for its ISBN.
type CollectionItem struct {
	Entry
	Info AggregateInfo
}

// UserRating is another member's rating of a book, as shown in the owners list.
type UserRating struct {
	MemberID string
	Rating   int
}

// Book is a catalog search result. It becomes an Entry only when a member adds it.
type Book struct {
	Title      string
	AuthorName string
	ISBN       string
	CoverID    *string
}

// SearchItem is a catalog result reconciled with the team aggregate and the
// viewer's own collection.
type SearchItem struct {
	Book  Book
	Info  AggregateInfo
	Owned bool
}
