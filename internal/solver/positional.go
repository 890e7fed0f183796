// internal/solver/positional.go
//
// Positional strategy: rewards guesses whose letters are common at their
// positions among the remaining candidates. Much cheaper than entropy (no
// feedback simulation) at the cost of ignoring partition structure.
package solver

// PositionTable computes, for each position and letter, the fraction of
// pool words carrying that letter at that position. An empty pool produces
// the zero table.
func PositionTable(pool []string) [WordLen][26]float64 {
	var table [WordLen][26]float64
	if len(pool) == 0 {
		return table
	}
	var counts [WordLen][26]int
	for _, w := range pool {
		for i := 0; i < WordLen; i++ {
			counts[i][w[i]-'a']++
		}
	}
	total := float64(len(pool))
	for i := 0; i < WordLen; i++ {
		for j := 0; j < 26; j++ {
			table[i][j] = float64(counts[i][j]) / total
		}
	}
	return table
}

// PositionalScore sums the per-position frequencies of word's letters.
// Letters never seen at a position contribute 0.
func PositionalScore(word string, table [WordLen][26]float64) float64 {
	var score float64
	for i := 0; i < WordLen; i++ {
		score += table[i][word[i]-'a']
	}
	return score
}

// BestPositionalGuess returns the allowed word with the highest positional
// score against pool. Ties keep the earliest allowed entry. Pools of two or
// fewer candidates short-circuit to the first candidate; an empty pool (or
// empty allowed list) returns "".
func BestPositionalGuess(pool, allowed []string) string {
	if len(pool) == 0 {
		return ""
	}
	if len(pool) <= 2 {
		return pool[0]
	}
	table := PositionTable(pool)
	best := ""
	bestScore := -1.0
	for _, w := range allowed {
		if s := PositionalScore(w, table); s > bestScore {
			best, bestScore = w, s
		}
	}
	return best
}
