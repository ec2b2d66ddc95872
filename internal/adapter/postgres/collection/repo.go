// Package collection implements the team book-collection store on PostgreSQL.
// Aggregates (owners, lenders, average rating) are computed on every read,
// nothing derived is stored.
package collection

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/floating-librarian/internal/adapter/postgres"
	"github.com/heartmarshall/floating-librarian/internal/domain"
)

const table = "collection_items"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Limits caps the size of list reads.
type Limits struct {
	Collection int
	Ratings    int
	Lenders    int
}

// DefaultLimits are the caps used by the bot.
var DefaultLimits = Limits{Collection: 30, Ratings: 30, Lenders: 50}

// Repo provides collection persistence backed by PostgreSQL.
type Repo struct {
	db     postgres.Querier
	limits Limits
}

// New creates a new collection repository.
func New(db postgres.Querier, limits Limits) *Repo {
	return &Repo{db: db, limits: limits}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// aggregateQuery groups the team's entries by isbn. avg_rating ignores unrated
// entries and is 0 when nobody rated.
func aggregateQuery(teamID string) sq.SelectBuilder {
	return psql.
		Select(
			"isbn",
			"COUNT(*) AS owner_count",
			"COUNT(*) FILTER (WHERE lend_out) AS lender_count",
			"COALESCE(AVG(rating) FILTER (WHERE rating <> 0), 0)::float8 AS avg_rating",
		).
		From(table).
		Where(sq.Eq{"team_id": teamID})
}

// GetCollection returns the member's entries, most recently added first,
// each joined with the team aggregate for its isbn.
func (r *Repo) GetCollection(ctx context.Context, teamID, memberID string) ([]domain.CollectionItem, error) {
	agg := aggregateQuery(teamID).GroupBy("isbn").
		Prefix("JOIN (").
		Suffix(") a ON a.isbn = c.isbn")

	query, args, err := psql.
		Select(
			"c.team_id", "c.member_id", "c.isbn", "c.title", "c.author_name",
			"c.cover_id", "c.lend_out", "c.rating",
			"a.owner_count", "a.lender_count", "a.avg_rating",
		).
		From(table + " c").
		JoinClause(agg).
		Where(sq.Eq{"c.team_id": teamID}).
		Where(sq.Eq{"c.member_id": memberID}).
		OrderBy("c.id DESC").
		Limit(uint64(r.limits.Collection)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get collection query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "get collection")
	}
	defer rows.Close()

	items := make([]domain.CollectionItem, 0)
	for rows.Next() {
		var it domain.CollectionItem
		if err := rows.Scan(
			&it.TeamID, &it.MemberID, &it.ISBN, &it.Title, &it.AuthorName,
			&it.CoverID, &it.LendOut, &it.Rating,
			&it.Info.OwnerCount, &it.Info.LenderCount, &it.Info.AvgRating,
		); err != nil {
			return nil, postgres.MapError(err, "scan collection item")
		}
		it.Info.ISBN = it.ISBN
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "get collection")
	}

	return items, nil
}

// CountCollection returns the exact number of entries the member owns.
func (r *Repo) CountCollection(ctx context.Context, teamID, memberID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"team_id": teamID}).
		Where(sq.Eq{"member_id": memberID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count collection query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "count collection")
	}
	return n, nil
}

// GetAggregateInfo returns one AggregateInfo per isbn owned by anybody in the
// team. Isbns nobody owns are absent from the result.
func (r *Repo) GetAggregateInfo(ctx context.Context, teamID string, isbns []string) ([]domain.AggregateInfo, error) {
	if len(isbns) == 0 {
		return []domain.AggregateInfo{}, nil
	}

	query, args, err := aggregateQuery(teamID).
		Where(sq.Eq{"isbn": isbns}).
		GroupBy("isbn").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build aggregate query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "get aggregate info")
	}
	defer rows.Close()

	infos := make([]domain.AggregateInfo, 0, len(isbns))
	for rows.Next() {
		var info domain.AggregateInfo
		if err := rows.Scan(&info.ISBN, &info.OwnerCount, &info.LenderCount, &info.AvgRating); err != nil {
			return nil, postgres.MapError(err, "scan aggregate info")
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "get aggregate info")
	}

	return infos, nil
}

// GetUserRatings returns the ratings of the other owners of isbn, best first.
func (r *Repo) GetUserRatings(ctx context.Context, teamID, memberID, isbn string) ([]domain.UserRating, error) {
	query, args, err := psql.
		Select("member_id", "rating").
		From(table).
		Where(sq.Eq{"team_id": teamID}).
		Where(sq.Eq{"isbn": isbn}).
		Where(sq.NotEq{"member_id": memberID}).
		OrderBy("rating DESC", "id").
		Limit(uint64(r.limits.Ratings)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user ratings query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "get user ratings")
	}

	ratings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserRating, error) {
		var ur domain.UserRating
		err := row.Scan(&ur.MemberID, &ur.Rating)
		return ur, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "get user ratings")
	}
	return ratings, nil
}

// GetPotentialLenders returns the other members who own isbn and marked it as
// available to lend.
func (r *Repo) GetPotentialLenders(ctx context.Context, teamID, memberID, isbn string) ([]string, error) {
	query, args, err := psql.
		Select("member_id").
		From(table).
		Where(sq.Eq{"team_id": teamID}).
		Where(sq.Eq{"isbn": isbn}).
		Where(sq.Eq{"lend_out": true}).
		Where(sq.NotEq{"member_id": memberID}).
		OrderBy("id").
		Limit(uint64(r.limits.Lenders)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build potential lenders query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "get potential lenders")
	}

	lenders, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "get potential lenders")
	}
	return lenders, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// AddEntry inserts a new unrated, not-lent entry. Duplicates are not checked.
func (r *Repo) AddEntry(ctx context.Context, e domain.Entry) error {
	query, args, err := psql.
		Insert(table).
		Columns("team_id", "member_id", "isbn", "title", "author_name", "cover_id", "lend_out", "rating").
		Values(e.TeamID, e.MemberID, e.ISBN, e.Title, e.AuthorName, e.CoverID, false, domain.NoRating).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add entry query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "add entry")
	}
	return nil
}

// RemoveEntry deletes every entry of the member for isbn.
func (r *Repo) RemoveEntry(ctx context.Context, teamID, memberID, isbn string) error {
	query, args, err := psql.
		Delete(table).
		Where(sq.Eq{"team_id": teamID}).
		Where(sq.Eq{"member_id": memberID}).
		Where(sq.Eq{"isbn": isbn}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove entry query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "remove entry")
	}
	return nil
}

// SetRating overwrites the member's rating of isbn. The caller validates the range.
func (r *Repo) SetRating(ctx context.Context, teamID, memberID, isbn string, rating int) error {
	return r.update(ctx, "set rating", teamID, memberID, isbn, "rating", rating)
}

// SetLendOut overwrites the member's lend-out flag for isbn.
func (r *Repo) SetLendOut(ctx context.Context, teamID, memberID, isbn string, lendOut bool) error {
	return r.update(ctx, "set lend out", teamID, memberID, isbn, "lend_out", lendOut)
}

func (r *Repo) update(ctx context.Context, op, teamID, memberID, isbn, column string, value any) error {
	query, args, err := psql.
		Update(table).
		Set(column, value).
		Where(sq.Eq{"team_id": teamID}).
		Where(sq.Eq{"member_id": memberID}).
		Where(sq.Eq{"isbn": isbn}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s query: %w", op, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, op)
	}
	return nil
}
