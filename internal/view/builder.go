// Package view builds the Slack Block Kit surfaces of the bot: the home tab
// and the lender, owner and teammate modals. Everything here is pure.
package view

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/heartmarshall/floating-librarian/internal/action"
	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// Builder renders domain values as blocks. The zero value renders no cover images.
type Builder struct {
	coversURL string
	maxItems  int
}

// NewBuilder creates a Builder. coversURL is the base of the covers API,
// maxItems the collection size limit mentioned when search is disabled.
func NewBuilder(coversURL string, maxItems int) *Builder {
	return &Builder{coversURL: strings.TrimRight(coversURL, "/"), maxItems: maxItems}
}

// CoverURL returns the medium-size cover image URL for coverID.
func (b *Builder) CoverURL(coverID string) string {
	return fmt.Sprintf("%s/b/id/%s-M.jpg", b.coversURL, coverID)
}

// ---------------------------------------------------------------------------
// Home tab
// ---------------------------------------------------------------------------

// HomeHeader renders the welcome text, the teammate picker and the search
// input. The search input is replaced by a notice once the collection is full.
func (b *Builder) HomeHeader(memberID string, collectionFull bool) []slack.Block {
	picker := slack.NewInputBlock("",
		plain("Check out another user's collection:"),
		nil,
		slack.NewOptionsSelectBlockElement(slack.OptTypeUser, plain("Select user"), action.OtherUsersCollectionID),
	)
	picker.DispatchAction = true

	var search slack.Block
	if collectionFull {
		search = textSection(fmt.Sprintf(
			"*Sorry! No search* \n Your collection has reached the size limit of %d books! "+
				"If you want to add books you'll have to remove some others first.", b.maxItems))
	} else {
		input := slack.NewInputBlock("",
			plain("Search books to borrow or add to your collection: 📖🔎"),
			nil,
			slack.NewPlainTextInputBlockElement(nil, action.BookSearchSubmitID),
		)
		input.DispatchAction = true
		search = input
	}

	return []slack.Block{
		textSection(fmt.Sprintf("*Welcome to your own private collection in the floating library %s*", mention(memberID))),
		textSection("This is where you enter all your favorite books to chat about them with your colleagues. \n You can also lend them out if you want!"),
		slack.NewDividerBlock(),
		picker,
		slack.NewDividerBlock(),
		search,
	}
}

// HomeView renders the header followed by the member's own collection.
func (b *Builder) HomeView(memberID string, items []domain.CollectionItem, collectionFull bool) []slack.Block {
	blocks := b.HomeHeader(memberID, collectionFull)
	for _, it := range items {
		blocks = append(blocks, b.CollectionItem(it, true)...)
	}
	return blocks
}

// SearchView renders the header, the query line and one group per result.
// When the catalog was unreachable a notice replaces the results.
func (b *Builder) SearchView(memberID, query string, results []domain.SearchItem, unavailable, collectionFull bool) []slack.Block {
	blocks := b.HomeHeader(memberID, collectionFull)
	blocks = append(blocks, b.SearchQueryInfo(query))

	switch {
	case unavailable:
		blocks = append(blocks, slack.NewDividerBlock(), SearchUnavailable())
	case len(results) == 0:
		blocks = append(blocks, slack.NewDividerBlock(), textSection("No books found, try another search."))
	}

	for _, r := range results {
		blocks = append(blocks, b.SearchResult(r)...)
	}
	return blocks
}

// SearchQueryInfo echoes the query with a button back to the home view.
func (b *Builder) SearchQueryInfo(query string) slack.Block {
	closeBtn := slack.NewButtonBlockElement(action.ShowHomeID, "", plain("close"))
	return slack.NewSectionBlock(
		markdown(fmt.Sprintf("You searched for: *%s*", esc(query))),
		nil,
		slack.NewAccessory(closeBtn),
	)
}

// SearchUnavailable tells the member the catalog could not be reached.
func SearchUnavailable() slack.Block {
	return textSection(":warning: *Search unavailable* \n The book catalog did not answer. Please try again in a moment.")
}

// NoticeBlockID marks notice blocks so a redisplayed view carries at most one.
const NoticeBlockID = "notice"

// Notice renders a message shown above the current view.
func Notice(text string) slack.Block {
	s := textSection(text)
	s.BlockID = NoticeBlockID
	return s
}

// FailureNotice is prepended to the last known view when an interaction failed.
func FailureNotice() slack.Block {
	return Notice(":x: Sorry, something went wrong and your last action was not saved. Please try again.")
}

// WithNotice puts notice on top of blocks and drops any earlier notice.
func WithNotice(notice slack.Block, blocks []slack.Block) []slack.Block {
	out := make([]slack.Block, 0, len(blocks)+1)
	out = append(out, notice)
	for _, b := range blocks {
		if s, ok := b.(*slack.SectionBlock); ok && s.BlockID == NoticeBlockID {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SearchResult renders one catalog result. "Borrow" requires a lender in
// the team, "Find owners" an owner. Books the member already owns get a
// marker instead of actions.
func (b *Builder) SearchResult(item domain.SearchItem) []slack.Block {
	book := item.Book
	details := b.bookSection(
		fmt.Sprintf("*%s* \n Author: %s \n ISBN: %s", esc(book.Title), esc(book.AuthorName), esc(book.ISBN)),
		item.Info, book.CoverID,
	)

	if item.Owned {
		return []slack.Block{slack.NewDividerBlock(), details, textSection("✅ Already in your collection")}
	}

	elements := []slack.BlockElement{
		slack.NewButtonBlockElement(action.AddItemID,
			action.Encode(action.AddItem{ISBN: book.ISBN, Title: book.Title, AuthorName: book.AuthorName, CoverID: book.CoverID}),
			plain("Add to collection"),
		).WithStyle(slack.StylePrimary),
	}
	if item.Info.LenderCount > 0 {
		elements = append(elements, slack.NewButtonBlockElement(action.FindLendersID,
			action.Encode(action.FindLenders{ISBN: book.ISBN, Title: book.Title}),
			plain("Borrow"),
		))
	}
	if item.Info.OwnerCount > 0 {
		elements = append(elements, slack.NewButtonBlockElement(action.FindOwnersID,
			action.Encode(action.FindOwners{ISBN: book.ISBN, Title: book.Title, ViewerOwns: false}),
			plain("Find owners"),
		))
	}

	return []slack.Block{slack.NewDividerBlock(), details, slack.NewActionBlock("", elements...)}
}

// CollectionItem renders one owned book. Interactive items get the rating
// and lend-out selects, the remove button and, when somebody else owns the
// book too, "Find other owners".
func (b *Builder) CollectionItem(item domain.CollectionItem, interactive bool) []slack.Block {
	details := b.bookSection(
		fmt.Sprintf("*%s*  \n *Author:* %s \n *ISBN:* %s", esc(item.Title), esc(item.AuthorName), esc(item.ISBN)),
		item.Info, item.CoverID,
	)
	blocks := []slack.Block{slack.NewDividerBlock(), details}
	if !interactive {
		return blocks
	}

	elements := []slack.BlockElement{
		b.ratingSelect(item),
		b.lendOutSelect(item),
		slack.NewButtonBlockElement(action.RemoveItemID,
			action.Encode(action.RemoveItem{ISBN: item.ISBN}),
			plain("Remove from collection"),
		).WithStyle(slack.StyleDanger),
	}
	if item.Info.OwnerCount > 1 {
		elements = append(elements, slack.NewButtonBlockElement(action.FindOwnersID,
			action.Encode(action.FindOwners{ISBN: item.ISBN, Title: item.Title, ViewerOwns: true}),
			plain("Find other owners"),
		))
	}

	return append(blocks, slack.NewActionBlock("", elements...))
}

func (b *Builder) ratingSelect(item domain.CollectionItem) *slack.SelectBlockElement {
	options := make([]*slack.OptionBlockObject, 0, domain.MaxRating+1)
	for r := domain.NoRating; r <= domain.MaxRating; r++ {
		options = append(options, slack.NewOptionBlockObject(
			action.Encode(action.UpdateRating{ISBN: item.ISBN, Rating: r}),
			plain(Stars(r)), nil,
		))
	}
	return slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, plain(Stars(item.Rating)), action.UpdateRatingID, options...)
}

func (b *Builder) lendOutSelect(item domain.CollectionItem) *slack.SelectBlockElement {
	placeholder := "No lending out"
	if item.LendOut {
		placeholder = "Open to lend out"
	}
	return slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, plain(placeholder), action.UpdateLendOutID,
		slack.NewOptionBlockObject(action.Encode(action.UpdateLendOut{ISBN: item.ISBN, LendOut: false}), plain("No lending out"), nil),
		slack.NewOptionBlockObject(action.Encode(action.UpdateLendOut{ISBN: item.ISBN, LendOut: true}), plain("Open to lend out"), nil),
	)
}

// bookSection appends the team statistics to text and attaches the cover.
func (b *Builder) bookSection(text string, info domain.AggregateInfo, coverID *string) *slack.SectionBlock {
	var sb strings.Builder
	sb.WriteString(text)
	if info.OwnerCount > 0 {
		fmt.Fprintf(&sb, "\n Owners in your team: %d", info.OwnerCount)
	}
	if info.AvgRating != 0 {
		sb.WriteString(" \n Average rating in your team: " + AvgStars(info.AvgRating))
	}
	if info.LenderCount > 0 {
		fmt.Fprintf(&sb, "\n Potential lenders in your team: %d", info.LenderCount)
	}

	var accessory *slack.Accessory
	if coverID != nil && *coverID != "" && b.coversURL != "" {
		accessory = slack.NewAccessory(slack.NewImageBlockElement(b.CoverURL(*coverID), "book cover"))
	}
	return slack.NewSectionBlock(markdown(sb.String()), nil, accessory)
}

// HomeTab wraps blocks into a publishable home tab view.
func HomeTab(blocks []slack.Block) slack.HomeTabViewRequest {
	return slack.HomeTabViewRequest{
		Type:   slack.VTHomeTab,
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}
