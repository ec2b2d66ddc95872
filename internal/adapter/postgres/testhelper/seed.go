package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/floating-librarian/internal/domain"
)

// NewTeamID returns a short unique Slack-like team id so parallel tests
// never see each other's rows.
func NewTeamID() string {
	return "T" + uuid.New().String()[:8]
}

// SeedEntry inserts a collection row directly and returns it.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, e domain.Entry) domain.Entry {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO collection_items (team_id, member_id, isbn, title, author_name, cover_id, lend_out, rating)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.TeamID, e.MemberID, e.ISBN, e.Title, e.AuthorName, e.CoverID, e.LendOut, e.Rating,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return e
}
