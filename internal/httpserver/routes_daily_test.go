package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordplaylabs/wordle-ai/internal/daily"
	"github.com/wordplaylabs/wordle-ai/internal/words"
)

// todaysAnswer mirrors the handler's word selection so tests can win on demand.
func todaysAnswer(t *testing.T) (string, string) {
	t.Helper()
	require.NoError(t, words.Init())
	date, _, answer := daily.Pick(time.Now(), getEnv("DAILY_SALT", "local_dev_salt"), words.Answers())
	require.NotEmpty(t, answer)
	return date, answer
}

func TestDaily_WinFlow(t *testing.T) {
	srv := newTestServer(t)
	date, answer := todaysAnswer(t)

	rec := doJSON(t, srv, http.MethodPost, "/daily/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody(t, rec)
	gameID, _ := res["gameId"].(string)
	require.NotEmpty(t, gameID)
	assert.Equal(t, date, res["date"])
	assert.Equal(t, false, res["played"])
	anon := cookieNamed(t, rec, "wordle_anon")

	// Same cookie, same day: the session is reused.
	rec = doJSON(t, srv, http.MethodPost, "/daily/new", nil, anon)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gameID, decodeBody(t, rec)["gameId"])

	rec = doJSON(t, srv, http.MethodPost, "/daily/guess",
		map[string]string{"gameId": gameID, "word": answer}, anon)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res = decodeBody(t, rec)
	assert.Equal(t, "won", res["state"])
	assert.Equal(t, float64(1), res["guesses"])
	marks := res["marks"].([]any)
	require.Len(t, marks, 5)
	for _, m := range marks {
		assert.Equal(t, float64(2), m)
	}

	// Replay is refused: the result is already persisted.
	rec = doJSON(t, srv, http.MethodPost, "/daily/new", nil, anon)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decodeBody(t, rec)
	assert.Equal(t, true, res["played"])
	assert.Empty(t, res["gameId"])

	// The win shows on today's leaderboard.
	rec = doJSON(t, srv, http.MethodGet, "/daily/leaderboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decodeBody(t, rec)
	assert.Equal(t, date, res["date"])
	top := res["top"].([]any)
	require.Len(t, top, 1)
	entry := top[0].(map[string]any)
	assert.Equal(t, anon.Value, entry["userId"])
	assert.Equal(t, float64(1), entry["guesses"])
}

func TestDaily_WrongGuessStaysInProgress(t *testing.T) {
	srv := newTestServer(t)
	_, answer := todaysAnswer(t)

	rec := doJSON(t, srv, http.MethodPost, "/daily/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	gameID := decodeBody(t, rec)["gameId"].(string)
	anon := cookieNamed(t, rec, "wordle_anon")

	guess := "sheep"
	if guess == answer {
		guess = "sheet"
	}
	rec = doJSON(t, srv, http.MethodPost, "/daily/guess",
		map[string]string{"gameId": gameID, "word": guess}, anon)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody(t, rec)
	assert.Equal(t, "in_progress", res["state"])
	assert.Equal(t, float64(1), res["guesses"])

	// A second player's session gets its own id but the same date.
	rec = doJSON(t, srv, http.MethodPost, "/daily/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	otherID := decodeBody(t, rec)["gameId"].(string)
	assert.NotEqual(t, gameID, otherID)
}

func TestDaily_GuessValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/daily/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	gameID := decodeBody(t, rec)["gameId"].(string)
	anon := cookieNamed(t, rec, "wordle_anon")

	// Unknown word
	rec = doJSON(t, srv, http.MethodPost, "/daily/guess",
		map[string]string{"gameId": gameID, "word": "zzzzz"}, anon)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong length
	rec = doJSON(t, srv, http.MethodPost, "/daily/guess",
		map[string]string{"gameId": gameID, "word": "abc"}, anon)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Stale game id
	rec = doJSON(t, srv, http.MethodPost, "/daily/guess",
		map[string]string{"gameId": "stale", "word": "sheep"}, anon)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// No session at all (fresh anonymous id)
	rec = doJSON(t, srv, http.MethodPost, "/daily/guess",
		map[string]string{"gameId": gameID, "word": "sheep"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDaily_LeaderboardDateParam(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/daily/leaderboard?date=1999-12-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody(t, rec)
	assert.Equal(t, "1999-12-31", res["date"])
	assert.Empty(t, res["top"])
}
