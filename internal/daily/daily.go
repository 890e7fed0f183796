// internal/daily/daily.go
//
// Deterministic word selection for the Daily Challenge.
// Every player sees the same secret on the same UTC date; the salt keeps the
// schedule unguessable without access to the server config.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns the challenge key for t: YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a date to an answer-list index via
// HMAC-SHA256(salt, DateKey) mod answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Pick resolves the full challenge for a moment in time: the date key, the
// word index, and the secret itself. An empty answer list yields an empty
// word so callers can refuse to start a session.
func Pick(now time.Time, salt string, answers []string) (date string, idx int, word string) {
	date = DateKey(now)
	if len(answers) == 0 {
		return date, 0, ""
	}
	idx = WordIndex(now, salt, len(answers))
	return date, idx, answers[idx]
}
