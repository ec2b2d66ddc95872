package view

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// Modal titles.
const (
	LendersTitle   = "Potential lenders"
	OwnersTitle    = "Other owners in the team"
	TeammateTitle  = "Your teammate's books"
	modalCloseText = "Back"
)

// Modal wraps blocks into a modal with a "Back" close button.
func Modal(title string, blocks []slack.Block) slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:   slack.VTModal,
		Title:  plain(title),
		Close:  plain(modalCloseText),
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}

// LenderList renders the teammates who would lend the book.
func LenderList(lenders []string, title string) []slack.Block {
	if len(lenders) == 0 {
		return []slack.Block{
			header(fmt.Sprintf("Unfortunately it seems there's nobody who could lend you %s right now 😞", title)),
		}
	}

	who := "people"
	if len(lenders) == 1 {
		who = "person"
	}
	mentions := make([]string, len(lenders))
	for i, id := range lenders {
		mentions[i] = mention(id)
	}

	return []slack.Block{
		header(fmt.Sprintf(":tada: We found %d %s who could lend you %s", len(lenders), who, title)),
		slack.NewDividerBlock(),
		textSection(strings.Join(mentions, ", ")),
	}
}

// UserRatings renders the other owners of a book as a user/rating grid.
// Slack allows at most ten fields per section, so the grid is split over
// as many sections as needed.
func UserRatings(ratings []domain.UserRating, title string, viewerOwns bool) []slack.Block {
	if len(ratings) == 0 {
		return []slack.Block{
			header(fmt.Sprintf("Looks like nobody else in your team owns %s 😞", title)),
		}
	}

	other := " "
	if viewerOwns {
		other = " other "
	}
	who := "people who own"
	if len(ratings) == 1 {
		who = "person who owns"
	}

	fields := make([]*slack.TextBlockObject, 0, 2*len(ratings)+2)
	fields = append(fields, markdown("*User*"), markdown("*Rating*"))
	for _, r := range ratings {
		fields = append(fields, markdown(mention(r.MemberID)), markdown(Stars(r.Rating)))
	}

	blocks := []slack.Block{
		header(fmt.Sprintf(":tada: We found %d%s%s %s", len(ratings), other, who, title)),
	}
	for start := 0; start < len(fields); start += maxFields {
		end := min(start+maxFields, len(fields))
		blocks = append(blocks, slack.NewSectionBlock(nil, fields[start:end], nil))
	}
	return blocks
}

// TeammateCollection renders another member's collection read-only.
func (b *Builder) TeammateCollection(memberID string, items []domain.CollectionItem) []slack.Block {
	if len(items) == 0 {
		return []slack.Block{
			textSection(fmt.Sprintf("Looks like %s doesn't have any books in their collection yet 😟", mention(memberID))),
		}
	}

	blocks := []slack.Block{textSection(fmt.Sprintf("Have a look at %s's collection", mention(memberID)))}
	for _, it := range items {
		blocks = append(blocks, b.CollectionItem(it, false)...)
	}
	return blocks
}
