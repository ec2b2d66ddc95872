package library

import "github.com/heartmarshall/floating-librarian/internal/domain"

// Reconcile joins catalog results with the team aggregates by isbn and marks
// the books the viewer already owns. A book without an aggregate row gets
// the zero aggregate. Order and length follow books.
func Reconcile(books []domain.Book, infos []domain.AggregateInfo, owned []domain.CollectionItem) []domain.SearchItem {
	byISBN := make(map[string]domain.AggregateInfo, len(infos))
	for _, info := range infos {
		byISBN[info.ISBN] = info
	}

	ownedISBNs := make(map[string]struct{}, len(owned))
	for _, it := range owned {
		ownedISBNs[it.ISBN] = struct{}{}
	}

	items := make([]domain.SearchItem, len(books))
	for i, b := range books {
		info, ok := byISBN[b.ISBN]
		if !ok {
			info = domain.ZeroAggregate(b.ISBN)
		}
		_, isOwned := ownedISBNs[b.ISBN]
		items[i] = domain.SearchItem{Book: b, Info: info, Owned: isOwned}
	}
	return items
}
