// Package slackbot receives Slack Events API and interactivity requests,
// runs the matching library use case and publishes the resulting view.
//
// Slack expects an acknowledgement within three seconds, so both endpoints
// answer immediately and do the work in the background.
package slackbot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/slack-go/slack"

	"github.com/heartmarshall/floating-librarian/internal/domain"
	"github.com/heartmarshall/floating-librarian/internal/observability"
	"github.com/heartmarshall/floating-librarian/internal/service/library"
	"github.com/heartmarshall/floating-librarian/internal/view"
)

//go:generate moq -out librarian_mock_test.go -pkg slackbot . librarian
//go:generate moq -out slack_api_mock_test.go -pkg slackbot . slackAPI

type librarian interface {
	Home(ctx context.Context) (*library.HomeResult, error)
	MemberCollection(ctx context.Context, memberID string) ([]domain.CollectionItem, error)
	Search(ctx context.Context, input library.SearchInput) (*library.SearchResult, error)
	AddBook(ctx context.Context, input library.AddBookInput) (*library.HomeResult, error)
	RemoveBook(ctx context.Context, isbn string) (*library.HomeResult, error)
	RateBook(ctx context.Context, input library.RateBookInput) (*library.HomeResult, error)
	SetLendOut(ctx context.Context, input library.LendOutInput) (*library.HomeResult, error)
	FindLenders(ctx context.Context, isbn string) ([]string, error)
	FindOwners(ctx context.Context, isbn string) ([]domain.UserRating, error)
}

// slackAPI is the part of *slack.Client the bot calls.
type slackAPI interface {
	PublishViewContext(ctx context.Context, userID string, view slack.HomeTabViewRequest, hash string) (*slack.ViewResponse, error)
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
}

// DefaultTimeout bounds the background work of one request.
const DefaultTimeout = 20 * time.Second

// Handler serves the Slack endpoints.
type Handler struct {
	svc     librarian
	views   *view.Builder
	api     slackAPI
	log     *slog.Logger
	timeout time.Duration

	wg sync.WaitGroup
}

// NewHandler creates a Handler. timeout bounds each background job.
func NewHandler(log *slog.Logger, svc librarian, views *view.Builder, api slackAPI, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{
		svc:     svc,
		views:   views,
		api:     api,
		log:     log.With("transport", "slack"),
		timeout: timeout,
	}
}

// Routes mounts the event and interaction endpoints behind signature
// verification.
func (h *Handler) Routes(signingSecret string) func(r chi.Router) {
	return func(r chi.Router) {
		r.Use(VerifySignature(signingSecret, h.log))
		r.Post("/events", h.Events)
		r.Post("/interactions", h.Interactions)
	}
}

// Wait blocks until all background jobs have finished.
func (h *Handler) Wait() {
	h.wg.Wait()
}

// background runs fn after the response has been written. The job keeps
// the request's values (request id, trace) but not its cancellation.
func (h *Handler) background(r *http.Request, name string, fn func(ctx context.Context) error) {
	ctx := context.WithoutCancel(r.Context())

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, h.timeout)
		defer cancel()
		ctx, span := observability.StartSpan(ctx, "slack."+name)

		var err error
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("panic: %v", rec)
				h.log.ErrorContext(ctx, "panic recovered",
					slog.String("job", name),
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
				)
			}
			observability.End(span, err)
		}()

		err = fn(ctx)
		if err != nil {
			h.logFailure(ctx, name, err)
		}
	}()
}

func (h *Handler) publish(ctx context.Context, memberID string, blocks []slack.Block) error {
	if _, err := h.api.PublishViewContext(ctx, memberID, view.HomeTab(blocks), ""); err != nil {
		return &slackError{op: "views.publish", err: err}
	}
	return nil
}

func (h *Handler) openModal(ctx context.Context, triggerID, title string, blocks []slack.Block) error {
	if _, err := h.api.OpenViewContext(ctx, triggerID, view.Modal(title, blocks)); err != nil {
		return &slackError{op: "views.open", err: err}
	}
	return nil
}

func (h *Handler) publishHome(ctx context.Context, memberID string, res *library.HomeResult) error {
	return h.publish(ctx, memberID, h.views.HomeView(memberID, res.Items, res.Full))
}
