// internal/sim/sim.go
//
// Self-play simulator for comparing the AI strategies.
// Responsibilities:
//   - Play: run one strategy against one secret, suggest → feedback →
//     filter until solved or out of guesses.
//   - Run: race every configured strategy over a shared set of random
//     secrets, in parallel across games, and summarize the results.
//
// Fairness: all strategies see the same secrets, and every simulation owns
// its own candidate pool copy, so games are independent and the run is
// reproducible for a fixed seed regardless of worker count.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wordplaylabs/wordle-ai/internal/solver"
)

const (
	// DefaultMaxGuesses bounds one self-play game. Strategies get more room
	// than a human's six rows so near-misses stay measurable.
	DefaultMaxGuesses = 10

	// SuccessAttempts is the human board size; a game solved within this
	// many guesses counts toward the success rate.
	SuccessAttempts = 6
)

// Strategy selects which AI picks the guesses during self-play.
type Strategy string

const (
	StrategyEntropy    Strategy = "entropy"
	StrategyPositional Strategy = "positional"
	StrategyHybrid     Strategy = "hybrid"
)

// AllStrategies returns every strategy in canonical comparison order.
func AllStrategies() []Strategy {
	return []Strategy{StrategyEntropy, StrategyPositional, StrategyHybrid}
}

// ParseStrategy maps a user-supplied name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyEntropy, StrategyPositional, StrategyHybrid:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("sim: unknown strategy %q", s)
	}
}

// Config controls a comparison run.
type Config struct {
	Games      int        // number of secrets to play (required, > 0)
	MaxGuesses int        // per-game guess budget; <= 0 means DefaultMaxGuesses
	Strategies []Strategy // empty means AllStrategies()
	Seed       int64      // secret selection seed; 0 draws from the clock
	Workers    int        // parallel games; <= 0 means GOMAXPROCS

	// OnProgress, if set, is called once per completed game with the number
	// of games done so far. Calls come from worker goroutines concurrently.
	OnProgress func(done, total int)
}

// Summary aggregates one strategy's results over a run. Guess counts of
// MaxGuesses+1 are losses where the candidate pool emptied.
type Summary struct {
	Strategy    Strategy
	Games       int
	Mean        float64
	Median      float64
	StdDev      float64 // population standard deviation
	Min         int
	Max         int
	SuccessRate float64 // fraction of games solved within SuccessAttempts
}

// Play runs a single self-play game of strategy against secret and returns
// the number of guesses used plus whether the secret was found within
// maxGuesses. An emptied candidate pool is an unwinnable game and scores
// maxGuesses+1.
func Play(secret string, answers, allowed []string, strategy Strategy, maxGuesses int) (int, bool) {
	pool := append([]string(nil), answers...)
	guesses := 0
	for guesses < maxGuesses {
		guesses++

		var guess string
		switch strategy {
		case StrategyPositional:
			guess = solver.BestPositionalGuess(pool, allowed)
		case StrategyHybrid:
			guess, _ = solver.BestHybridGuess(pool, allowed, solver.DefaultWeights())
		default: // entropy
			if ranked := solver.BestEntropyGuesses(pool, allowed, true, 1); len(ranked) > 0 {
				guess = ranked[0].Word
			}
		}
		if guess == "" {
			return maxGuesses + 1, false
		}

		pattern, err := solver.Compute(guess, secret)
		if err != nil {
			return maxGuesses + 1, false
		}
		if pattern.AllHit() {
			return guesses, true
		}

		pool, err = solver.Filter(pool, guess, pattern)
		if err != nil || len(pool) == 0 {
			return maxGuesses + 1, false
		}
	}
	return guesses, false
}

// Run plays cfg.Games random secrets for every configured strategy and
// returns one Summary per strategy, in the configured order. Games run in
// parallel across workers; each writes to its own result slot, so the
// output is identical for any worker count.
func Run(ctx context.Context, answers, allowed []string, cfg Config) ([]Summary, error) {
	if cfg.Games <= 0 {
		return nil, errors.New("sim: games must be positive")
	}
	if len(answers) == 0 {
		return nil, errors.New("sim: answer list is empty")
	}

	maxGuesses := cfg.MaxGuesses
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	strategies := cfg.Strategies
	if len(strategies) == 0 {
		strategies = AllStrategies()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// All strategies face the same secrets; that is the comparison.
	rng := rand.New(rand.NewSource(seed))
	secrets := make([]string, cfg.Games)
	for i := range secrets {
		secrets[i] = answers[rng.Intn(len(answers))]
	}

	results := make([][]int, len(strategies))
	for i := range results {
		results[i] = make([]int, cfg.Games)
	}

	var done atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for gi := 0; gi < cfg.Games; gi++ {
		gi := gi
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for si, strategy := range strategies {
				guesses, _ := Play(secrets[gi], answers, allowed, strategy, maxGuesses)
				results[si][gi] = guesses
			}
			if cfg.OnProgress != nil {
				cfg.OnProgress(int(done.Add(1)), cfg.Games)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]Summary, len(strategies))
	for si, strategy := range strategies {
		summaries[si] = summarize(strategy, results[si])
	}
	return summaries, nil
}
