package slackbot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/slack-go/slack"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/floating-librarian/internal/action"
	"github.com/heartmarshall/floating-librarian/internal/domain"
	"github.com/heartmarshall/floating-librarian/internal/service/library"
	"github.com/heartmarshall/floating-librarian/internal/view"
	"github.com/heartmarshall/floating-librarian/pkg/ctxutil"
)

// Interactions handles POST /slack/interactions. The form field "payload"
// carries the interaction as JSON.
func (h *Handler) Interactions(w http.ResponseWriter, r *http.Request) {
	var cb slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &cb); err != nil {
		h.log.WarnContext(r.Context(), "decode interaction", slog.String("error", err.Error()))
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	h.background(r, "interaction", func(ctx context.Context) error {
		return h.HandleInteraction(ctx, cb)
	})
}

// HandleInteraction runs the block action of cb and updates the member's
// view. On failure the last known view is redisplayed and the cause is
// returned.
func (h *Handler) HandleInteraction(ctx context.Context, cb slack.InteractionCallback) error {
	if cb.Type != slack.InteractionTypeBlockActions || len(cb.ActionCallback.BlockActions) == 0 {
		return nil
	}
	act := cb.ActionCallback.BlockActions[0]

	id := identityOf(cb)
	if id.MemberID == "" || id.TeamID == "" {
		return domain.ErrUnauthorized
	}
	ctx = ctxutil.WithIdentity(ctx, id)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("slack.team_id", id.TeamID),
		attribute.String("slack.action_id", act.ActionID),
	)

	err := h.dispatch(ctx, cb, act)
	if err == nil {
		return nil
	}
	if rerr := h.redisplay(ctx, id.MemberID, cb.View, err); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}

func (h *Handler) dispatch(ctx context.Context, cb slack.InteractionCallback, act *slack.BlockAction) error {
	memberID := cb.User.ID

	switch act.ActionID {
	case action.BookSearchSubmitID:
		res, err := h.svc.Search(ctx, library.SearchInput{Query: act.Value})
		if err != nil {
			return err
		}
		return h.publish(ctx, memberID, h.views.SearchView(memberID, res.Query, res.Items, res.Unavailable, res.Full))

	case action.ShowHomeID:
		res, err := h.svc.Home(ctx)
		if err != nil {
			return err
		}
		return h.publishHome(ctx, memberID, res)

	case action.OtherUsersCollectionID:
		items, err := h.svc.MemberCollection(ctx, act.SelectedUser)
		if err != nil {
			return err
		}
		return h.openModal(ctx, cb.TriggerID, view.TeammateTitle, h.views.TeammateCollection(act.SelectedUser, items))
	}

	payload, err := action.Decode(act.ActionID, actionValue(act))
	if err != nil {
		return err
	}

	switch p := payload.(type) {
	case action.AddItem:
		res, err := h.svc.AddBook(ctx, library.AddBookInput{
			ISBN:       p.ISBN,
			Title:      p.Title,
			AuthorName: p.AuthorName,
			CoverID:    p.CoverID,
		})
		if err != nil {
			return err
		}
		return h.publishHome(ctx, memberID, res)

	case action.RemoveItem:
		res, err := h.svc.RemoveBook(ctx, p.ISBN)
		if err != nil {
			return err
		}
		return h.publishHome(ctx, memberID, res)

	case action.UpdateRating:
		res, err := h.svc.RateBook(ctx, library.RateBookInput{ISBN: p.ISBN, Rating: p.Rating})
		if err != nil {
			return err
		}
		return h.publishHome(ctx, memberID, res)

	case action.UpdateLendOut:
		res, err := h.svc.SetLendOut(ctx, library.LendOutInput{ISBN: p.ISBN, LendOut: p.LendOut})
		if err != nil {
			return err
		}
		return h.publishHome(ctx, memberID, res)

	case action.FindLenders:
		lenders, err := h.svc.FindLenders(ctx, p.ISBN)
		if err != nil {
			return err
		}
		return h.openModal(ctx, cb.TriggerID, view.LendersTitle, view.LenderList(lenders, p.Title))

	case action.FindOwners:
		ratings, err := h.svc.FindOwners(ctx, p.ISBN)
		if err != nil {
			return err
		}
		return h.openModal(ctx, cb.TriggerID, view.OwnersTitle, view.UserRatings(ratings, p.Title, p.ViewerOwns))
	}

	return nil
}

// identityOf reads the workspace and member of an interaction. Older
// payloads carry the team only at the top level.
func identityOf(cb slack.InteractionCallback) ctxutil.Identity {
	teamID := cb.User.TeamID
	if teamID == "" {
		teamID = cb.Team.ID
	}
	return ctxutil.Identity{TeamID: teamID, MemberID: cb.User.ID}
}

// actionValue returns the value of a button or of the selected option.
func actionValue(act *slack.BlockAction) string {
	if act.Value != "" {
		return act.Value
	}
	return act.SelectedOption.Value
}
