// internal/httpserver/routes_solver.go
//
// HTTP routes for the AI solver.
// Exposes two endpoints under /solver:
//   - POST /solver/suggest → recommend the next guess for a live game
//   - POST /solver/compare → self-play all strategies and report statistics
//
// Suggestions run against the game's current candidate pool, so they reflect
// every guess made so far. Comparisons are pure compute over fresh pools and
// need no session.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/wordplaylabs/wordle-ai/internal/game"
	"github.com/wordplaylabs/wordle-ai/internal/sim"
	"github.com/wordplaylabs/wordle-ai/internal/solver"
	"github.com/wordplaylabs/wordle-ai/internal/words"
)

// Comparison runs are bounded so one request cannot occupy the server.
const (
	compareDefaultGames = 20
	compareMaxGames     = 200
)

// mountSolver registers all /solver routes.
func (s *Server) mountSolver(r chi.Router) {
	r.Route("/solver", func(r chi.Router) {
		r.Post("/suggest", s.handleSuggest)
		r.Post("/compare", s.handleCompare)
	})
}

// -----------------------------------------------------------------------------
// /solver/suggest

type suggestReq struct {
	GameID   string `json:"gameId"`
	Strategy string `json:"strategy"` // entropy | positional | hybrid (default entropy)
	TopN     int    `json:"topN"`     // entropy ranking length (default 5)
}

type suggestRes struct {
	Strategy            string              `json:"strategy"`
	Word                string              `json:"word"`
	CandidatesRemaining int                 `json:"candidatesRemaining"`
	Rankings            []solver.ScoredWord `json:"rankings,omitempty"`
	Breakdown           *solver.Breakdown   `json:"breakdown,omitempty"`
}

// handleSuggest asks one strategy for its next-guess recommendation for an
// in-progress game. An empty word means the candidate pool is empty and no
// recommendation is possible.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if req.Strategy == "" {
		req.Strategy = game.StrategyEntropy
	}

	sug, err := g.Suggest(req.Strategy, req.TopN, s.guessCap)
	if err != nil {
		http.Error(w, `{"error":"unknown_strategy"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(suggestRes{
		Strategy:            sug.Strategy,
		Word:                sug.Word,
		CandidatesRemaining: len(g.Candidates),
		Rankings:            sug.Rankings,
		Breakdown:           sug.Breakdown,
	})
}

// -----------------------------------------------------------------------------
// /solver/compare

type compareReq struct {
	Games      int      `json:"games"`      // per strategy; clamped to compareMaxGames
	Strategies []string `json:"strategies"` // default: all
	MaxGuesses int      `json:"maxGuesses"` // default: sim.DefaultMaxGuesses
	Seed       int64    `json:"seed"`       // 0 draws from the clock
}

type compareSummary struct {
	Strategy    string  `json:"strategy"`
	Games       int     `json:"games"`
	Mean        float64 `json:"mean"`
	Median      float64 `json:"median"`
	StdDev      float64 `json:"stdDev"`
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	SuccessRate float64 `json:"successRate"`
}

type compareRes struct {
	Games      int              `json:"games"`
	MaxGuesses int              `json:"maxGuesses"`
	Summaries  []compareSummary `json:"summaries"`
}

// handleCompare self-plays the requested strategies over a shared set of
// random secrets and reports per-strategy statistics.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Games <= 0 {
		req.Games = compareDefaultGames
	}
	if req.Games > compareMaxGames {
		req.Games = compareMaxGames
	}

	var strategies []sim.Strategy
	for _, name := range req.Strategies {
		st, err := sim.ParseStrategy(name)
		if err != nil {
			http.Error(w, `{"error":"unknown_strategy"}`, http.StatusBadRequest)
			return
		}
		strategies = append(strategies, st)
	}

	cfg := sim.Config{
		Games:      req.Games,
		MaxGuesses: req.MaxGuesses,
		Strategies: strategies,
		Seed:       req.Seed,
	}
	summaries, err := sim.Run(r.Context(), words.Answers(), words.Allowed(), cfg)
	if err != nil {
		log.Warn().Err(err).Int("games", req.Games).Msg("comparison run failed")
		http.Error(w, `{"error":"simulation_failed"}`, http.StatusInternalServerError)
		return
	}

	maxGuesses := req.MaxGuesses
	if maxGuesses <= 0 {
		maxGuesses = sim.DefaultMaxGuesses
	}
	res := compareRes{Games: req.Games, MaxGuesses: maxGuesses}
	for _, sum := range summaries {
		res.Summaries = append(res.Summaries, compareSummary{
			Strategy:    string(sum.Strategy),
			Games:       sum.Games,
			Mean:        sum.Mean,
			Median:      sum.Median,
			StdDev:      sum.StdDev,
			Min:         sum.Min,
			Max:         sum.Max,
			SuccessRate: sum.SuccessRate,
		})
	}
	_ = json.NewEncoder(w).Encode(res)
}
