package daily

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	schema, err := os.ReadFile(filepath.Join("..", "..", "sql", "0001_init.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return NewStore(db)
}

func TestStore_AlreadyPlayed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	played, err := s.AlreadyPlayed(ctx, "u1", "2024-03-01")
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, s.InsertResult(ctx, Result{
		UserID: "u1", Date: "2024-03-01", WordIndex: 7, Guesses: 4, ElapsedMs: 61000,
	}))

	played, err = s.AlreadyPlayed(ctx, "u1", "2024-03-01")
	require.NoError(t, err)
	assert.True(t, played)

	// Other dates and other users are unaffected.
	played, err = s.AlreadyPlayed(ctx, "u1", "2024-03-02")
	require.NoError(t, err)
	assert.False(t, played)
	played, err = s.AlreadyPlayed(ctx, "u2", "2024-03-01")
	require.NoError(t, err)
	assert.False(t, played)
}

func TestStore_InsertResult_KeepsFirstPerDay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.InsertResult(ctx, Result{
		UserID: "u1", Date: "2024-03-01", WordIndex: 7, Guesses: 3, ElapsedMs: 40000,
	}))
	// Replay attempt is ignored, not an error.
	require.NoError(t, s.InsertResult(ctx, Result{
		UserID: "u1", Date: "2024-03-01", WordIndex: 7, Guesses: 1, ElapsedMs: 1000,
	}))

	rows, err := s.Leaderboard(ctx, "2024-03-01", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Guesses)
	assert.Equal(t, 40000, rows[0].ElapsedMs)
}

func TestStore_LeaderboardOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.InsertResult(ctx, Result{UserID: "slow", Date: "2024-03-01", Guesses: 4, ElapsedMs: 90000}))
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "fast-sloppy", Date: "2024-03-01", Guesses: 5, ElapsedMs: 50000}))
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "fast-sharp", Date: "2024-03-01", Guesses: 3, ElapsedMs: 50000}))

	rows, err := s.Leaderboard(ctx, "2024-03-01", 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Elapsed wins; guesses break the tie.
	assert.Equal(t, "fast-sharp", rows[0].UserID)
	assert.Equal(t, "fast-sloppy", rows[1].UserID)
	assert.Equal(t, "slow", rows[2].UserID)

	top2, err := s.Leaderboard(ctx, "2024-03-01", 2)
	require.NoError(t, err)
	require.Len(t, top2, 2)
	assert.Equal(t, "fast-sharp", top2[0].UserID)

	empty, err := s.Leaderboard(ctx, "2024-03-02", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_LeaderboardDefaultLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.InsertResult(ctx, Result{UserID: "u1", Date: "2024-03-01", Guesses: 3, ElapsedMs: 1000}))
	require.NoError(t, s.InsertResult(ctx, Result{UserID: "u2", Date: "2024-03-01", Guesses: 4, ElapsedMs: 2000}))

	rows, err := s.Leaderboard(ctx, "2024-03-01", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
