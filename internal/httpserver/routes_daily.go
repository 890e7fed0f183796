// internal/httpserver/routes_daily.go
//
// HTTP routes for the Daily Challenge.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start a daily game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's daily game
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user plays once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on win.
// Word selection is deterministic per date + salt, so every player gets the
// same secret.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wordplaylabs/wordle-ai/internal/daily"
	"github.com/wordplaylabs/wordle-ai/internal/solver"
	"github.com/wordplaylabs/wordle-ai/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	GameID    string
	UserID    string
	Date      string
	WordIndex int
	Answer    string
	Start     time.Time
	Guesses   int
	Finished  bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// todayChallenge resolves the current date key, word index, and answer.
func (d *dailyServer) todayChallenge() (date string, idx int, answer string) {
	return daily.Pick(time.Now(), d.salt, words.Answers())
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// A user with a persisted result for today gets Played=true and no session.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, idx, answer := d.todayChallenge()
	if answer == "" {
		http.Error(w, `{"error":"no_answers"}`, http.StatusInternalServerError)
		return
	}

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: "", Date: date, Played: true})
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	if sess, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: sess.GameID, Date: date, Played: false})
		return
	}
	sess := &dailySession{
		GameID:    genID(),
		UserID:    uid,
		Date:      date,
		WordIndex: idx,
		Answer:    answer,
		Start:     time.Now(),
	}
	d.sessions[key] = sess
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: sess.GameID, Date: date, Played: false})
}

// -----------------------------------------------------------------------------
// /daily/guess

type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

type dailyGuessRes struct {
	Marks   []int  `json:"marks"` // per letter: 0=miss, 1=present, 2=hit
	State   string `json:"state"` // in_progress | won | locked
	Guesses int    `json:"guesses"`
}

// handleGuess validates and applies a guess for today's daily session,
// persisting the result to the DB on a win.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	p.Word = strings.ToLower(strings.TrimSpace(p.Word))
	if p.GameID == "" || len(p.Word) != solver.WordLen {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	date, _, _ := d.todayChallenge()

	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.GameID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	if sess.Finished {
		_ = json.NewEncoder(w).Encode(dailyGuessRes{Marks: []int{}, State: "locked", Guesses: sess.Guesses})
		return
	}

	if !words.IsAllowed(p.Word) {
		http.Error(w, `{"error":"word_not_allowed"}`, http.StatusBadRequest)
		return
	}

	pattern, err := solver.Compute(p.Word, sess.Answer)
	if err != nil {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	d.mu.Lock()
	sess.Guesses++
	won := pattern.AllHit()
	if won {
		sess.Finished = true
	}
	guesses := sess.Guesses
	d.mu.Unlock()

	if won {
		elapsed := int(time.Since(sess.Start).Milliseconds())
		_ = d.store.InsertResult(r.Context(), daily.Result{
			UserID: uid, Date: date, WordIndex: sess.WordIndex, Guesses: guesses, ElapsedMs: elapsed,
		})
		_ = json.NewEncoder(w).Encode(dailyGuessRes{Marks: marksOf(pattern), State: "won", Guesses: guesses})
		return
	}
	_ = json.NewEncoder(w).Encode(dailyGuessRes{Marks: marksOf(pattern), State: "in_progress", Guesses: guesses})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

type dailyLeaderboardRes struct {
	Date string                 `json:"date"`
	Top  []daily.LeaderboardRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _, _ = d.todayChallenge()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(dailyLeaderboardRes{Date: date, Top: rows})
}
