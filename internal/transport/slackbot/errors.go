package slackbot

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"

	"github.com/heartmarshall/floating-librarian/internal/domain"
	"github.com/heartmarshall/floating-librarian/internal/view"
	"github.com/heartmarshall/floating-librarian/pkg/ctxutil"
)

// slackError is a failed Slack Web API call.
type slackError struct {
	op  string
	err error
}

func (e *slackError) Error() string { return e.op + ": " + e.err.Error() }
func (e *slackError) Unwrap() error { return e.err }

// redisplay publishes the last known home view after a failed interaction.
// A malformed payload changes nothing, so the view comes back as it was.
// Rejected input and failures get a notice on top.
func (h *Handler) redisplay(ctx context.Context, memberID string, current slack.View, cause error) error {
	blocks := current.Blocks.BlockSet
	if current.Type != slack.VTHomeTab || len(blocks) == 0 {
		blocks = h.views.HomeHeader(memberID, false)
	}

	var ve *domain.ValidationError
	switch {
	case errors.Is(cause, domain.ErrMalformedPayload):
	case errors.As(cause, &ve):
		blocks = view.WithNotice(view.Notice(":warning: Sorry, "+validationMessage(ve)), blocks)
	default:
		blocks = view.WithNotice(view.FailureNotice(), blocks)
	}
	return h.publish(ctx, memberID, blocks)
}

func validationMessage(ve *domain.ValidationError) string {
	if len(ve.Errors) == 1 && ve.Errors[0].Field == "collection" {
		return ve.Errors[0].Message
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "that did not work: " + strings.Join(parts, ", ")
}

// logFailure logs a failed background job. Bad input is expected traffic
// and logged at warn level.
func (h *Handler) logFailure(ctx context.Context, job string, err error) {
	attrs := []slog.Attr{
		slog.String("job", job),
		slog.String("error", err.Error()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	}

	level := slog.LevelError
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrMalformedPayload) {
		level = slog.LevelWarn
	}
	h.log.LogAttrs(ctx, level, "slack job failed", attrs...)
}
