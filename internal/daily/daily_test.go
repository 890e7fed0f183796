package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey_IsUTC(t *testing.T) {
	ny := time.FixedZone("UTC-5", -5*60*60)
	// 23:30 local on Mar 1 is already Mar 2 in UTC.
	late := time.Date(2024, 3, 1, 23, 30, 0, 0, ny)
	assert.Equal(t, "2024-03-02", DateKey(late))

	noon := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01", DateKey(noon))
}

func TestWordIndex_PinnedValues(t *testing.T) {
	// Independently computed HMAC-SHA256(salt, date) mod n values. If any of
	// these move, every published daily schedule changes with them.
	cases := []struct {
		salt string
		date time.Time
		n    int
		want int
	}{
		{"pepper", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), 100, 56},
		{"pepper", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), 506, 496},
		{"pepper", time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), 506, 395},
		{"saffron", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), 506, 22},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WordIndex(tc.date, tc.salt, tc.n),
			"salt=%s date=%s n=%d", tc.salt, DateKey(tc.date), tc.n)
	}
}

func TestWordIndex_StableWithinDay(t *testing.T) {
	morning := time.Date(2024, 7, 4, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 7, 4, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, WordIndex(morning, "pepper", 506), WordIndex(night, "pepper", 506))
}

func TestWordIndex_InRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for day := 0; day < 60; day++ {
		idx := WordIndex(start.AddDate(0, 0, day), "pepper", 17)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 17)
	}
}

func TestWordIndex_DegenerateLists(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, WordIndex(now, "pepper", 0))
	assert.Equal(t, 0, WordIndex(now, "pepper", -1))
	assert.Equal(t, 0, WordIndex(now, "pepper", 1))
}

func TestPick(t *testing.T) {
	answers := []string{"apple", "bread", "crane", "dream", "eagle"}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	date, idx, word := Pick(now, "pepper", answers)
	assert.Equal(t, "2024-03-01", date)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, len(answers))
	assert.Equal(t, answers[idx], word)

	// Same day, different salt: schedule moves independently.
	_, idx2, _ := Pick(now, "saffron", answers)
	assert.Equal(t, WordIndex(now, "saffron", len(answers)), idx2)
}

func TestPick_EmptyAnswers(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	date, idx, word := Pick(now, "pepper", nil)
	assert.Equal(t, "2024-03-01", date)
	assert.Zero(t, idx)
	assert.Empty(t, word)
}
