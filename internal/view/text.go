package view

import (
	"math"
	"strings"

	"github.com/slack-go/slack"
)

const (
	noRating     = "No rating"
	star         = "⭐"
	headerMaxLen = 150
	maxFields    = 10
)

// Stars renders a rating: 0 is "No rating", 1..5 that many stars.
func Stars(rating int) string {
	if rating <= 0 {
		return noRating
	}
	return strings.Repeat(star, rating)
}

// AvgStars renders an average rating rounded to the nearest star.
func AvgStars(avg float64) string {
	return Stars(int(math.Round(avg)))
}

var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// esc escapes user or catalog text for mrkdwn.
func esc(s string) string {
	return mrkdwnEscaper.Replace(s)
}

func mention(memberID string) string {
	return "<@" + memberID + ">"
}

func plain(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

func textSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(markdown(text), nil, nil)
}

func header(text string) *slack.HeaderBlock {
	return slack.NewHeaderBlock(plain(truncate(text, headerMaxLen)))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
