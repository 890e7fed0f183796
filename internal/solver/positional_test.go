package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionTable_Frequencies(t *testing.T) {
	pool := []string{"crane", "slate", "trace"}
	table := PositionTable(pool)

	// Every pool word has 'a' third and 'e' last.
	assert.InDelta(t, 1.0, table[2]['a'-'a'], 1e-12)
	assert.InDelta(t, 1.0, table[4]['e'-'a'], 1e-12)

	assert.InDelta(t, 1.0/3, table[0]['c'-'a'], 1e-12)
	assert.InDelta(t, 1.0/3, table[0]['s'-'a'], 1e-12)
	assert.InDelta(t, 2.0/3, table[1]['r'-'a'], 1e-12)

	// Letters never seen at a position stay zero.
	assert.Zero(t, table[0]['z'-'a'])
	assert.Zero(t, table[2]['e'-'a'])
}

func TestPositionTable_EmptyPool(t *testing.T) {
	assert.Equal(t, [WordLen][26]float64{}, PositionTable(nil))
}

func TestPositionalScore(t *testing.T) {
	pool := []string{"crane", "slate", "trace"}
	table := PositionTable(pool)

	// crane: 1/3 + 2/3 + 1 + 1/3 + 1
	assert.InDelta(t, 10.0/3, PositionalScore("crane", table), 1e-9)
	// slate: 1/3 + 1/3 + 1 + 1/3 + 1
	assert.InDelta(t, 3.0, PositionalScore("slate", table), 1e-9)
	// No letter of "zzzzz" appears anywhere in the pool.
	assert.Zero(t, PositionalScore("zzzzz", table))
}

func TestBestPositionalGuess_Argmax(t *testing.T) {
	pool := []string{"crane", "slate", "trace"}

	// crane and trace tie on 10/3; the earlier allowed entry wins.
	assert.Equal(t, "crane", BestPositionalGuess(pool, []string{"crane", "slate", "trace"}))
	assert.Equal(t, "trace", BestPositionalGuess(pool, []string{"trace", "slate", "crane"}))

	// A guess outside the pool wins when its letters are positionally
	// stronger than any candidate's.
	allowed := []string{"slate", "crate"}
	// crate: 1/3 + 2/3 + 1 + 1/3 + 1 beats slate's 3.0.
	assert.Equal(t, "crate", BestPositionalGuess(pool, allowed))
}

func TestBestPositionalGuess_Degenerate(t *testing.T) {
	allowed := []string{"crane", "slate"}

	assert.Equal(t, "", BestPositionalGuess(nil, allowed))
	assert.Equal(t, "slate", BestPositionalGuess([]string{"slate"}, allowed))
	assert.Equal(t, "trace", BestPositionalGuess([]string{"trace", "crane"}, allowed),
		"two candidates short-circuit to the first")

	// Nothing to score without an allowed list.
	assert.Equal(t, "", BestPositionalGuess([]string{"crane", "slate", "trace"}, nil))
}
