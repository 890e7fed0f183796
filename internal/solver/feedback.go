// internal/solver/feedback.go
//
// Feedback engine: computes the per-letter match pattern between a guess
// and a secret word using the standard two-pass Wordle algorithm.
// Responsibilities:
//   - Mark and Pattern types shared by the filter and the AI strategies.
//   - Compute: validated entry point for callers holding arbitrary input.
//   - computePattern: unchecked hot path for scoring loops over words the
//     vocabulary layer has already validated.
//
// The two-pass algorithm is what makes repeated letters behave correctly:
// total hit+present marks for a letter never exceed its occurrence count in
// the secret.
package solver

import (
	"errors"
	"fmt"
)

// WordLen is the fixed word length of the game.
const WordLen = 5

// Mark is the evaluation result for a single letter of a guess.
// Wire encoding matches the daily endpoints: 0=miss, 1=present, 2=hit.
type Mark uint8

const (
	MarkMiss    Mark = iota // letter does not match any remaining secret letter
	MarkPresent             // letter occurs elsewhere in the secret
	MarkHit                 // letter is correct and in the correct position
)

// Pattern is the full per-position feedback for one guess. It is a fixed
// array so it is comparable and can key the histogram maps the entropy
// solver builds.
type Pattern [WordLen]Mark

var (
	// ErrWordLength is returned when a word is not exactly WordLen letters.
	ErrWordLength = errors.New("solver: word length must be 5")
	// ErrWordAlphabet is returned when a word contains anything but a-z.
	ErrWordAlphabet = errors.New("solver: word must be lowercase a-z")
)

// markRunes maps Mark values to the compact b/y/g notation.
var markRunes = [3]byte{'b', 'y', 'g'}

// String renders a mark as "miss", "present", or "hit".
func (m Mark) String() string {
	switch m {
	case MarkHit:
		return "hit"
	case MarkPresent:
		return "present"
	default:
		return "miss"
	}
}

// String renders the pattern in compact b/y/g notation, e.g. "bbgbg".
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, m := range p {
		b[i] = markRunes[m]
	}
	return string(b[:])
}

// Rank encodes the pattern as a base-3 number in [0, 242]. Useful as a
// compact histogram key and for cross-checking against precomputed tables.
func (p Pattern) Rank() uint8 {
	var r uint8
	for _, m := range p {
		r = r*3 + uint8(m)
	}
	return r
}

// AllHit reports whether every position is an exact match.
func (p Pattern) AllHit() bool {
	for _, m := range p {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// ParsePattern parses compact b/y/g notation back into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLen {
		return p, fmt.Errorf("solver: pattern %q must be %d symbols", s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'b':
			p[i] = MarkMiss
		case 'y':
			p[i] = MarkPresent
		case 'g':
			p[i] = MarkHit
		default:
			return p, fmt.Errorf("solver: pattern symbol %q is not b/y/g", s[i])
		}
	}
	return p, nil
}

// Compute scores guess against secret and returns the feedback pattern.
// Both words must be exactly WordLen lowercase ASCII letters; anything else
// is rejected rather than truncated or padded.
func Compute(guess, secret string) (Pattern, error) {
	if err := checkWord(guess); err != nil {
		return Pattern{}, fmt.Errorf("guess: %w", err)
	}
	if err := checkWord(secret); err != nil {
		return Pattern{}, fmt.Errorf("secret: %w", err)
	}
	return computePattern(guess, secret), nil
}

// computePattern implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) secret letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise leave Miss.
//
// Inputs are assumed validated to WordLen lowercase a-z letters; the
// vocabulary layer guarantees that for pool and allowed-list words.
func computePattern(guess, secret string) Pattern {
	var p Pattern

	// Letter frequency for the non-hit positions (a-z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == secret[i] {
			p[i] = MarkHit
		} else {
			counts[secret[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] == MarkHit {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			p[i] = MarkPresent
			counts[j]--
		}
	}
	return p
}

// checkWord rejects words that are not exactly WordLen lowercase a-z letters.
func checkWord(w string) error {
	if len(w) != WordLen {
		return ErrWordLength
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return ErrWordAlphabet
		}
	}
	return nil
}
