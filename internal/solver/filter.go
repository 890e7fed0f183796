// internal/solver/filter.go
//
// Candidate filter: narrows a word pool to the members consistent with an
// observed (guess, pattern) pair. A word survives iff scoring the guess
// against it reproduces the observed pattern exactly.
package solver

import "fmt"

// Filter returns the subset of pool whose feedback for guess equals p.
// The result is always a fresh slice; pool is never mutated. An empty
// result is a valid terminal state (the secret is provably outside the
// pool), not an error; callers should treat it as "no further
// recommendation possible".
func Filter(pool []string, guess string, p Pattern) ([]string, error) {
	if err := checkWord(guess); err != nil {
		return nil, fmt.Errorf("guess: %w", err)
	}
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if computePattern(guess, w) == p {
			out = append(out, w)
		}
	}
	return out, nil
}
