// assets/embed.go
//
// Embedded default vocabulary. The server and the simulate CLI run without
// any external word files; WORDS_ANSWERS_FILE / WORDS_ALLOWED_FILE override
// these at startup (see internal/words).

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt
var files embed.FS

// readLines returns the non-empty, non-comment lines of an embedded file,
// lowercased. Validation (length, alphabet) is the words package's job.
func readLines(name string) ([]string, error) {
	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded canonical answer words.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

// AllowedList returns the embedded allowed guess words.
func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}
