package collection

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/floating-librarian/internal/domain"
	"github.com/heartmarshall/floating-librarian/internal/observability"
)

// Store is the set of collection operations. Repo implements it.
type Store interface {
	GetCollection(ctx context.Context, teamID, memberID string) ([]domain.CollectionItem, error)
	CountCollection(ctx context.Context, teamID, memberID string) (int, error)
	GetAggregateInfo(ctx context.Context, teamID string, isbns []string) ([]domain.AggregateInfo, error)
	GetUserRatings(ctx context.Context, teamID, memberID, isbn string) ([]domain.UserRating, error)
	GetPotentialLenders(ctx context.Context, teamID, memberID, isbn string) ([]string, error)
	AddEntry(ctx context.Context, e domain.Entry) error
	RemoveEntry(ctx context.Context, teamID, memberID, isbn string) error
	SetRating(ctx context.Context, teamID, memberID, isbn string, rating int) error
	SetLendOut(ctx context.Context, teamID, memberID, isbn string, lendOut bool) error
}

// Traced wraps a Store with a span and query metrics per call.
type Traced struct {
	next    Store
	metrics *observability.DatabaseMetrics
}

// NewTraced decorates next. A nil metrics disables metric recording.
func NewTraced(next Store, metrics *observability.DatabaseMetrics) *Traced {
	return &Traced{next: next, metrics: metrics}
}

func (t *Traced) observe(ctx context.Context, operation, teamID string, fn func(ctx context.Context) error) error {
	ctx, span := observability.StartDBSpan(ctx, operation, table)
	span.SetAttributes(attribute.String("slack.team_id", teamID))

	start := time.Now()
	err := fn(ctx)
	if t.metrics != nil {
		t.metrics.RecordQuery(ctx, operation, table, time.Since(start), err)
	}

	observability.End(span, err)
	return err
}

func (t *Traced) GetCollection(ctx context.Context, teamID, memberID string) (items []domain.CollectionItem, err error) {
	err = t.observe(ctx, "GetCollection", teamID, func(ctx context.Context) error {
		items, err = t.next.GetCollection(ctx, teamID, memberID)
		return err
	})
	return items, err
}

func (t *Traced) CountCollection(ctx context.Context, teamID, memberID string) (n int, err error) {
	err = t.observe(ctx, "CountCollection", teamID, func(ctx context.Context) error {
		n, err = t.next.CountCollection(ctx, teamID, memberID)
		return err
	})
	return n, err
}

func (t *Traced) GetAggregateInfo(ctx context.Context, teamID string, isbns []string) (infos []domain.AggregateInfo, err error) {
	err = t.observe(ctx, "GetAggregateInfo", teamID, func(ctx context.Context) error {
		infos, err = t.next.GetAggregateInfo(ctx, teamID, isbns)
		return err
	})
	return infos, err
}

func (t *Traced) GetUserRatings(ctx context.Context, teamID, memberID, isbn string) (ratings []domain.UserRating, err error) {
	err = t.observe(ctx, "GetUserRatings", teamID, func(ctx context.Context) error {
		ratings, err = t.next.GetUserRatings(ctx, teamID, memberID, isbn)
		return err
	})
	return ratings, err
}

func (t *Traced) GetPotentialLenders(ctx context.Context, teamID, memberID, isbn string) (lenders []string, err error) {
	err = t.observe(ctx, "GetPotentialLenders", teamID, func(ctx context.Context) error {
		lenders, err = t.next.GetPotentialLenders(ctx, teamID, memberID, isbn)
		return err
	})
	return lenders, err
}

func (t *Traced) AddEntry(ctx context.Context, e domain.Entry) error {
	return t.observe(ctx, "AddEntry", e.TeamID, func(ctx context.Context) error {
		return t.next.AddEntry(ctx, e)
	})
}

func (t *Traced) RemoveEntry(ctx context.Context, teamID, memberID, isbn string) error {
	return t.observe(ctx, "RemoveEntry", teamID, func(ctx context.Context) error {
		return t.next.RemoveEntry(ctx, teamID, memberID, isbn)
	})
}

func (t *Traced) SetRating(ctx context.Context, teamID, memberID, isbn string, rating int) error {
	return t.observe(ctx, "SetRating", teamID, func(ctx context.Context) error {
		return t.next.SetRating(ctx, teamID, memberID, isbn, rating)
	})
}

func (t *Traced) SetLendOut(ctx context.Context, teamID, memberID, isbn string, lendOut bool) error {
	return t.observe(ctx, "SetLendOut", teamID, func(ctx context.Context) error {
		return t.next.SetLendOut(ctx, teamID, memberID, isbn, lendOut)
	})
}

var (
	_ Store = (*Repo)(nil)
	_ Store = (*Traced)(nil)
)
