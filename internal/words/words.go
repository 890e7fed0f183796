// internal/words/words.go
//
// Vocabulary collaborator for the engine and the solvers.
//
// Responsibilities:
//   - Load answer and allowed guess lists from environment-provided files or
//     fall back to the embedded defaults in assets/.
//   - Maintain sets for quick lookups and sorted slices for the solvers,
//     whose guess caps take a prefix and therefore need a stable order.
//   - Supply RandomAnswer, IsAllowed, IsAnswer, and Stats.
//
// Word Lists:
//   - "answers": canonical solutions (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Initialization behavior (Init):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only WORDS_ALLOWED_FILE is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set, fall back to the embedded lists.
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase, deduplicated, and sorted.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/wordplaylabs/wordle-ai/assets"
)

var (
	initOnce   sync.Once
	answers    []string            // sorted canonical answers
	allowed    []string            // sorted answers ∪ guesses
	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
	initialErr error
)

// Init loads word lists exactly once.
// Returns an error if the answers list ends up empty.
func Init() error {
	initOnce.Do(func() {
		var ansList, allowList []string

		answersPath := os.Getenv("WORDS_ANSWERS_FILE")
		allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided
		case answersPath != "" && allowedPath != "":
			var err error
			ansList, err = readWordFile(answersPath)
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}

		// Case 2: only allowed file provided → use for both
		case answersPath == "" && allowedPath != "":
			var err error
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}
			ansList = allowList

		// Case 3: fallback to embedded lists
		default:
			var err error
			ansList, err = assets.AnswersList()
			if err != nil {
				initialErr = fmt.Errorf("words: embedded answers: %w", err)
				return
			}
			allowList, err = assets.AllowedList()
			if err != nil {
				initialErr = fmt.Errorf("words: embedded allowed: %w", err)
				return
			}
		}

		ansList = keepValid(ansList)
		allowList = keepValid(allowList)

		answersSet = toSet(ansList)

		// Every answer is also a legal guess.
		allowedSet = toSet(allowList)
		for w := range answersSet {
			allowedSet[w] = struct{}{}
		}

		answers = sortedKeys(answersSet)
		allowed = sortedKeys(allowedSet)

		if len(answers) == 0 {
			initialErr = errors.New("words: answers list is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercased and trimmed.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, strings.TrimSpace(strings.ToLower(sc.Text())))
	}
	return out, sc.Err()
}

// keepValid drops anything that is not a 5-letter a-z word.
func keepValid(list []string) []string {
	out := list[:0]
	for _, w := range list {
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// sortedKeys flattens a set back into a sorted slice.
func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for w := range m {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns the sorted canonical answer list. Shared slice; callers
// that need to mutate must copy.
func Answers() []string {
	return answers
}

// Allowed returns the sorted allowed guess list (answers included). The
// solver guess caps take a prefix of this slice, so its order is part of
// reproducibility. Shared slice; callers that need to mutate must copy.
func Allowed() []string {
	return allowed
}

// RandomAnswer returns a cryptographically random answer from the answers list.
// If answers are not loaded yet or empty, falls back to "crane".
func RandomAnswer() string {
	if len(answers) == 0 {
		return "crane"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(answers))))
	return answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowed)
}
