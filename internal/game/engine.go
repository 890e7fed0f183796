// internal/game/engine.go
//
// Orchestrator for a single game session.
// Responsibilities:
//   - Create new games with deterministic dimensions (6x5) and a candidate
//     pool seeded from the full answer list.
//   - Validate and apply guesses (length, alphabetic, allowed list), then
//     narrow the candidate pool and record solver metrics.
//   - Track state transitions: playing → won/lost.
//   - Dispatch Suggest calls to the AI strategies.
//
// Notes:
//   - Answers/allowed lists are provided by the words package.
//   - Scoring and narrowing live in the solver package; this layer owns the
//     vocabulary policy (a guess must be in the allowed list) per the
//     division of labor with the core.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/wordplaylabs/wordle-ai/internal/solver"
	"github.com/wordplaylabs/wordle-ai/internal/words"
)

const (
	defaultRows = 6
	defaultCols = 5

	// defaultSuggestions is how many ranked words Suggest returns when the
	// caller does not say.
	defaultSuggestions = 5
)

// New constructs a new game instance.
// If withAnswer is empty, a random answer is chosen from the words package.
func New(withAnswer string) *Game {
	ans := withAnswer
	if ans == "" {
		ans = words.RandomAnswer()
	}
	return &Game{
		ID:         randomID(),
		Answer:     strings.ToLower(ans),
		Rows:       defaultRows,
		Cols:       defaultCols,
		Guesses:    []string{},
		Candidates: append([]string(nil), words.Answers()...),
		Keyboard:   make(map[string]solver.Mark),
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the feedback pattern, the new state string ("playing"/"won"/"lost"),
// or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters and alphabetic a–z.
//   - Guess must be present in the allowed list.
//
// State transitions:
//   - If all tiles are Hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (solver.Pattern, string, error) {
	if g.Finished {
		return solver.Pattern{}, g.state(), errors.New("game finished")
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return solver.Pattern{}, g.state(), errors.New("invalid guess")
	}
	if !words.IsAllowed(guess) {
		return solver.Pattern{}, g.state(), errors.New("not in word list")
	}

	pattern, err := solver.Compute(guess, g.Answer)
	if err != nil {
		return solver.Pattern{}, g.state(), errors.New("invalid guess")
	}

	// The pool is replaced, never mutated: concurrent readers of the old
	// slice stay valid.
	before := len(g.Candidates)
	next, err := solver.Filter(g.Candidates, guess, pattern)
	if err != nil {
		return solver.Pattern{}, g.state(), errors.New("invalid guess")
	}
	g.Candidates = next

	g.Guesses = append(g.Guesses, guess)
	g.Patterns = append(g.Patterns, pattern)
	g.recordAnalysis(guess, pattern, before)
	g.updateKeyboard(guess, pattern)

	if pattern.AllHit() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return pattern, g.state(), nil
}

// Suggest asks one AI strategy for a recommendation over the game's
// surviving candidates. topN bounds the entropy strategy's ranking list
// (<= 0 picks a small default). guessCap tunes how much of the allowed
// list the entropy/hybrid strategies score: 0 keeps each solver's default,
// a negative value lifts the cap entirely, a positive value overrides it.
//
// An empty candidate pool is not an error; the suggestion comes back empty.
func (g *Game) Suggest(strategy string, topN, guessCap int) (*Suggestion, error) {
	if topN <= 0 {
		topN = defaultSuggestions
	}
	entropyCap, hybridCap := solver.DefaultEntropyGuessCap, solver.DefaultHybridGuessCap
	switch {
	case guessCap > 0:
		entropyCap, hybridCap = guessCap, guessCap
	case guessCap < 0:
		entropyCap, hybridCap = 0, 0
	}

	sug := &Suggestion{Strategy: strategy}
	switch strategy {
	case StrategyEntropy:
		sug.Rankings = solver.BestEntropyGuessesCapped(g.Candidates, words.Allowed(), true, topN, entropyCap)
		if len(sug.Rankings) > 0 {
			sug.Word = sug.Rankings[0].Word
		}
	case StrategyPositional:
		sug.Word = solver.BestPositionalGuess(g.Candidates, words.Allowed())
	case StrategyHybrid:
		word, bd := solver.BestHybridGuessCapped(g.Candidates, words.Allowed(), solver.DefaultWeights(), hybridCap)
		sug.Word = word
		if word != "" {
			sug.Breakdown = &bd
		}
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
	return sug, nil
}

// state reports a coarse string representation of the current game state.
func (g *Game) state() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// recordAnalysis appends the solver metrics for a just-applied guess.
// beforeCount is the candidate pool size the guess was played against.
func (g *Game) recordAnalysis(guess string, pattern solver.Pattern, beforeCount int) {
	entropy, _ := solver.EntropyOf(guess, words.Answers())
	remaining := len(g.Candidates)
	gain := math.Log2(float64(max(beforeCount, 1))) - math.Log2(float64(max(remaining, 1)))
	g.Analysis = append(g.Analysis, GuessAnalysis{
		Word:                guess,
		Pattern:             pattern,
		Entropy:             entropy,
		CandidatesRemaining: remaining,
		InformationGain:     gain,
	})
}

// updateKeyboard folds a guess's marks into the per-letter keyboard state.
// A letter only ever upgrades: miss < present < hit.
func (g *Game) updateKeyboard(guess string, pattern solver.Pattern) {
	for i := 0; i < len(guess) && i < solver.WordLen; i++ {
		key := string(guess[i])
		if cur, ok := g.Keyboard[key]; !ok || pattern[i] > cur {
			g.Keyboard[key] = pattern[i]
		}
	}
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
