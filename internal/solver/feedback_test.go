package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPattern(t *testing.T, s string) Pattern {
	t.Helper()
	p, err := ParsePattern(s)
	require.NoError(t, err)
	return p
}

func TestCompute_BasicMarks(t *testing.T) {
	cases := []struct {
		guess, secret, want string
	}{
		{"crane", "slate", "bbgbg"},
		{"slate", "crane", "bbgbg"},
		{"crane", "trace", "yggbg"},
		{"crane", "brake", "bggbg"},
		{"trace", "slate", "ybgbg"},
		{"audio", "offal", "ybbby"},
		{"zzzzz", "aaaaa", "bbbbb"},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"_vs_"+tc.secret, func(t *testing.T) {
			p, err := Compute(tc.guess, tc.secret)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

func TestCompute_DuplicateLetters(t *testing.T) {
	cases := []struct {
		guess, secret, want string
	}{
		// Two e's in the secret are consumed by the two hits; the guess's
		// remaining letters fall back on what the secret still holds.
		{"sheep", "epees", "ybggy"},
		{"epees", "sheep", "byggy"},
		// Guess repeats a letter the secret holds once: only the first
		// unmatched occurrence earns a mark.
		{"speed", "erase", "ybyyb"},
		{"aabbb", "acccc", "gbbbb"},
		{"aaabb", "ababa", "gyggy"},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"_vs_"+tc.secret, func(t *testing.T) {
			p, err := Compute(tc.guess, tc.secret)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

// Marks attributed to a letter never exceed its occurrence count in the
// secret. This is the property that separates the two-pass algorithm from
// naive per-position comparison.
func TestCompute_DuplicateAccounting(t *testing.T) {
	pairs := [][2]string{
		{"sheep", "epees"},
		{"epees", "sheep"},
		{"geese", "eagle"},
		{"allee", "llama"},
		{"mamma", "madam"},
	}
	for _, pair := range pairs {
		guess, secret := pair[0], pair[1]
		p, err := Compute(guess, secret)
		require.NoError(t, err)

		var guessCount, secretCount, marked [26]int
		for i := 0; i < WordLen; i++ {
			guessCount[guess[i]-'a']++
			secretCount[secret[i]-'a']++
			if p[i] != MarkMiss {
				marked[guess[i]-'a']++
			}
		}
		for c := 0; c < 26; c++ {
			if guessCount[c] == 0 {
				continue
			}
			want := guessCount[c]
			if secretCount[c] < want {
				want = secretCount[c]
			}
			assert.Equal(t, want, marked[c],
				"%s vs %s: marks for %q", guess, secret, 'a'+rune(c))
		}
	}
}

func TestCompute_SelfMatch(t *testing.T) {
	for _, w := range []string{"crane", "epees", "mamma", "zzzzz"} {
		p, err := Compute(w, w)
		require.NoError(t, err)
		assert.True(t, p.AllHit(), "self-match for %q: %s", w, p)
		assert.Equal(t, "ggggg", p.String())
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	cases := []struct {
		name, guess, secret string
		want                error
	}{
		{"guess too short", "tool", "slate", ErrWordLength},
		{"guess too long", "toolbox", "slate", ErrWordLength},
		{"guess empty", "", "slate", ErrWordLength},
		{"guess digit", "cr4ne", "slate", ErrWordAlphabet},
		{"guess uppercase", "CRANE", "slate", ErrWordAlphabet},
		{"guess punctuation", "cran!", "slate", ErrWordAlphabet},
		{"secret too short", "crane", "cat", ErrWordLength},
		{"secret non alpha", "crane", "sl te", ErrWordAlphabet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.guess, tc.secret)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "miss", MarkMiss.String())
	assert.Equal(t, "present", MarkPresent.String())
	assert.Equal(t, "hit", MarkHit.String())
}

func TestPattern_StringParseRoundTrip(t *testing.T) {
	for _, s := range []string{"bbbbb", "ggggg", "yyyyy", "bygbg", "gybgy"} {
		p, err := ParsePattern(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}

func TestParsePattern_Invalid(t *testing.T) {
	for _, s := range []string{"", "byg", "bygbgg", "bygbx", "BYGBG"} {
		_, err := ParsePattern(s)
		assert.Error(t, err, "pattern %q", s)
	}
}

func TestPattern_Rank(t *testing.T) {
	assert.Equal(t, uint8(0), mustPattern(t, "bbbbb").Rank())
	assert.Equal(t, uint8(242), mustPattern(t, "ggggg").Rank())
	assert.Equal(t, uint8(20), mustPattern(t, "bbgbg").Rank())
	assert.Equal(t, uint8(106), mustPattern(t, "ybggy").Rank())

	// Distinct patterns must map to distinct ranks.
	seen := make(map[uint8]string)
	for _, s := range []string{"bbbbb", "ggggg", "bbgbg", "gbbgb", "ybggy", "yyggb"} {
		r := mustPattern(t, s).Rank()
		prev, dup := seen[r]
		require.False(t, dup, "rank %d shared by %s and %s", r, prev, s)
		seen[r] = s
	}
}
