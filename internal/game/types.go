// internal/game/types.go
//
// Core type definitions for a single game session.
// Defines:
//   - Game: state for one in-progress or finished game, including the
//     solver-facing candidate pool and per-guess analysis records.
//   - GuessAnalysis: solver metrics captured when a guess is applied.
//   - Suggestion: the result of asking an AI strategy for a recommendation.

package game

import "github.com/wordplaylabs/wordle-ai/internal/solver"

// Strategy names accepted by Suggest.
const (
	StrategyEntropy    = "entropy"
	StrategyPositional = "positional"
	StrategyHybrid     = "hybrid"
)

// Game holds the state of a single game session.
type Game struct {
	ID         string                 // Unique game identifier (random hex string).
	Answer     string                 // The solution word (always lowercase).
	Rows       int                    // Maximum number of guesses allowed (typically 6).
	Cols       int                    // Number of letters per word (typically 5).
	Guesses    []string               // Guesses made so far (lowercased, chronological).
	Patterns   []solver.Pattern       // Feedback for each guess, same order as Guesses.
	Candidates []string               // Answer words still consistent with all feedback.
	Keyboard   map[string]solver.Mark // Best mark seen per letter (hit > present > miss).
	Analysis   []GuessAnalysis        // Solver metrics per guess, same order as Guesses.
	Finished   bool                   // True once the game is over (won or lost).
	Won        bool                   // True if the game was finished with a win.
}

// GuessAnalysis captures what a guess was worth to the solver.
//
// Entropy is measured against the full answer list so values stay
// comparable across the whole game; InformationGain is the log2 shrink of
// the live candidate pool this particular guess achieved.
type GuessAnalysis struct {
	Word                string
	Pattern             solver.Pattern
	Entropy             float64
	CandidatesRemaining int
	InformationGain     float64
}

// Suggestion is one strategy's recommendation for the next guess.
// Rankings is populated by the entropy strategy, Breakdown by the hybrid
// strategy; Word is set by all of them. An empty Word with no Rankings
// means the candidate pool was empty and no recommendation is possible.
type Suggestion struct {
	Strategy  string
	Word      string
	Rankings  []solver.ScoredWord
	Breakdown *solver.Breakdown
}
