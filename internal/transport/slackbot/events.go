package slackbot

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/slack-go/slack/slackevents"

	"github.com/heartmarshall/floating-librarian/internal/view"
	"github.com/heartmarshall/floating-librarian/pkg/ctxutil"
)

const homeTab = "home"

// Events handles POST /slack/events: the URL verification handshake and
// app_home_opened, which publishes the member's home view.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.log.WarnContext(r.Context(), "parse event", slog.String("error", err.Error()))
		http.Error(w, "invalid event", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			http.Error(w, "invalid challenge", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge)) //nolint:errcheck
		return

	case slackevents.CallbackEvent:
		w.WriteHeader(http.StatusOK)

		opened, ok := event.InnerEvent.Data.(*slackevents.AppHomeOpenedEvent)
		if !ok || opened.Tab != homeTab {
			return
		}
		id := ctxutil.Identity{TeamID: event.TeamID, MemberID: opened.User}
		h.background(r, "app_home_opened", func(ctx context.Context) error {
			return h.HomeOpened(ctxutil.WithIdentity(ctx, id), id.MemberID)
		})
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HomeOpened publishes the member's home view. When the collection cannot
// be read the header is published with a failure notice.
func (h *Handler) HomeOpened(ctx context.Context, memberID string) error {
	res, err := h.svc.Home(ctx)
	if err != nil {
		blocks := view.WithNotice(view.FailureNotice(), h.views.HomeHeader(memberID, false))
		if perr := h.publish(ctx, memberID, blocks); perr != nil {
			h.log.ErrorContext(ctx, "publish failure notice", slog.String("error", perr.Error()))
		}
		return err
	}
	return h.publishHome(ctx, memberID, res)
}
