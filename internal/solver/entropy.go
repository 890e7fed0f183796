// internal/solver/entropy.go
//
// Entropy strategy: scores candidate guesses by expected information gain.
// For a guess g and pool P, the feedback pattern partitions P into groups;
// the entropy of that partition is the expected number of bits the guess
// reveals about the secret, assuming the secret is uniform over P.
// Maximizing it approximates minimizing the expected remaining search space
// without paying for the exact game-tree optimum.
//
// Scoring each guess is independent of every other guess, so the loop fans
// out across workers; each worker writes disjoint slots, which keeps the
// result deterministic.
package solver

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
)

// DefaultEntropyGuessCap bounds how many allowed-list words are scored in
// addition to the pool itself. The cap takes a prefix of the allowed list
// in caller-supplied order; pass the list sorted for reproducible results.
const DefaultEntropyGuessCap = 3000

// ScoredWord pairs a candidate guess with its entropy in bits.
type ScoredWord struct {
	Word    string  `json:"word"`
	Entropy float64 `json:"entropy"`
}

// EntropyOf returns the Shannon entropy, in bits, of the feedback-pattern
// distribution guess induces over pool. Returns 0 for an empty pool.
func EntropyOf(guess string, pool []string) (float64, error) {
	if err := checkWord(guess); err != nil {
		return 0, fmt.Errorf("guess: %w", err)
	}
	return entropyOf(guess, pool), nil
}

// entropyOf is the unchecked hot path shared by the solvers. The histogram
// is a base-3 rank array rather than a map: iteration order is fixed, so
// the floating-point sum comes out bit-identical on every call, and the
// hot loop never allocates. Only observed pattern groups contribute, so
// log2 never sees zero.
func entropyOf(guess string, pool []string) float64 {
	if len(pool) == 0 {
		return 0
	}
	// 3^WordLen possible patterns.
	var groups [243]int
	for _, secret := range pool {
		groups[computePattern(guess, secret).Rank()]++
	}
	total := float64(len(pool))
	var entropy float64
	for _, count := range groups {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// BestEntropyGuesses ranks guesses for pool by entropy, descending, and
// returns at most topN of them. When includeNonPool is set, the scored set
// is the pool plus the first DefaultEntropyGuessCap words of allowed, since
// a guess need not be a surviving candidate to be informative.
//
// Degenerate pools short-circuit: with two or fewer candidates any further
// discrimination is guaranteed within one guess, so the first candidate is
// returned with entropy 0. An empty pool yields an empty slice.
func BestEntropyGuesses(pool, allowed []string, includeNonPool bool, topN int) []ScoredWord {
	return BestEntropyGuessesCapped(pool, allowed, includeNonPool, topN, DefaultEntropyGuessCap)
}

// BestEntropyGuessesCapped is BestEntropyGuesses with an explicit cap on
// how many allowed words join the scored set. guessCap <= 0 disables the
// cap entirely; the cost is then O(|pool|·|allowed|·L).
//
// Ties keep scored-set order: pool candidates come before allowed extras,
// each group in its input order. The sort is stable, so equal-entropy
// candidates never get displaced by non-candidates.
func BestEntropyGuessesCapped(pool, allowed []string, includeNonPool bool, topN, guessCap int) []ScoredWord {
	if len(pool) == 0 || topN <= 0 {
		return []ScoredWord{}
	}
	if len(pool) <= 2 {
		return []ScoredWord{{Word: pool[0], Entropy: 0}}
	}

	scored := guessSet(pool, allowed, includeNonPool, guessCap)
	results := make([]ScoredWord, len(scored))
	forEachChunk(len(scored), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			results[i] = ScoredWord{Word: scored[i], Entropy: entropyOf(scored[i], pool)}
		}
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Entropy > results[j].Entropy
	})
	if topN < len(results) {
		results = results[:topN]
	}
	return results
}

// guessSet builds the deterministic ordered set of guesses to score: the
// pool first, then (optionally) up to guessCap allowed words not already
// present.
func guessSet(pool, allowed []string, includeNonPool bool, guessCap int) []string {
	scored := make([]string, 0, len(pool))
	seen := make(map[string]struct{}, len(pool))
	for _, w := range pool {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		scored = append(scored, w)
	}
	if !includeNonPool {
		return scored
	}
	extras := allowed
	if guessCap > 0 && guessCap < len(extras) {
		extras = extras[:guessCap]
	}
	for _, w := range extras {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		scored = append(scored, w)
	}
	return scored
}

// forEachChunk splits [0, n) across one worker per CPU and blocks until all
// chunks are done. Workers must only touch their own index range.
func forEachChunk(n int, fn func(lo, hi int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
