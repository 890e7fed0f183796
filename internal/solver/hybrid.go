// internal/solver/hybrid.go
//
// Hybrid strategy: weighted blend of entropy, positional frequency, and raw
// letter frequency. The blend exists for the capped case: when the guess cap
// excludes the information-theoretic optimum, the cheaper signals can still
// surface a strong alternative.
package solver

// DefaultHybridGuessCap bounds how many allowed words the hybrid solver
// scores per call. Entropy is the expensive component, so this cap is
// tighter than the entropy solver's.
const DefaultHybridGuessCap = 2000

// Weights are the blend coefficients for the hybrid score. They need not
// sum to 1, though the defaults do.
type Weights struct {
	Entropy    float64 `json:"entropy"`
	Positional float64 `json:"positional"`
	Frequency  float64 `json:"frequency"`
}

// DefaultWeights returns the standard blend, favoring entropy.
func DefaultWeights() Weights {
	return Weights{Entropy: 0.6, Positional: 0.25, Frequency: 0.15}
}

// Breakdown reports the winning guess's normalized component scores and the
// combined value they blend into. Each component is scaled by the maximum
// observed across the scored set, so values land in [0, 1].
type Breakdown struct {
	Entropy    float64 `json:"entropy"`
	Positional float64 `json:"positional"`
	Frequency  float64 `json:"frequency"`
	Combined   float64 `json:"combined"`
}

// BestHybridGuess picks the allowed word with the highest blended score
// against pool, scoring at most DefaultHybridGuessCap allowed words.
//
// Pools of two or fewer candidates short-circuit to the first candidate
// with a zero Breakdown; an empty pool (or an empty scored set) returns
// ("", zero Breakdown), meaning no recommendation is possible.
func BestHybridGuess(pool, allowed []string, w Weights) (string, Breakdown) {
	return BestHybridGuessCapped(pool, allowed, w, DefaultHybridGuessCap)
}

// BestHybridGuessCapped is BestHybridGuess with an explicit cap on the
// scored prefix of allowed. guessCap <= 0 disables the cap. Ties keep the
// earliest scored entry, so results are deterministic for a fixed allowed
// order.
func BestHybridGuessCapped(pool, allowed []string, w Weights, guessCap int) (string, Breakdown) {
	if len(pool) == 0 {
		return "", Breakdown{}
	}
	if len(pool) <= 2 {
		return pool[0], Breakdown{}
	}
	scored := allowed
	if guessCap > 0 && guessCap < len(scored) {
		scored = scored[:guessCap]
	}
	if len(scored) == 0 {
		return "", Breakdown{}
	}

	table := PositionTable(pool)
	totals := letterTotals(pool)

	entropies := make([]float64, len(scored))
	positionals := make([]float64, len(scored))
	frequencies := make([]float64, len(scored))
	forEachChunk(len(scored), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			entropies[i] = entropyOf(scored[i], pool)
			positionals[i] = PositionalScore(scored[i], table)
			frequencies[i] = distinctLetterScore(scored[i], totals)
		}
	})
	normalizeByMax(entropies)
	normalizeByMax(positionals)
	normalizeByMax(frequencies)

	bestIdx := 0
	bestCombined := 0.0
	for i := range scored {
		combined := w.Entropy*entropies[i] + w.Positional*positionals[i] + w.Frequency*frequencies[i]
		if i == 0 || combined > bestCombined {
			bestIdx, bestCombined = i, combined
		}
	}
	return scored[bestIdx], Breakdown{
		Entropy:    entropies[bestIdx],
		Positional: positionals[bestIdx],
		Frequency:  frequencies[bestIdx],
		Combined:   bestCombined,
	}
}

// letterTotals counts each letter's occurrences across every position of
// every pool word.
func letterTotals(pool []string) [26]int {
	var totals [26]int
	for _, w := range pool {
		for i := 0; i < WordLen; i++ {
			totals[w[i]-'a']++
		}
	}
	return totals
}

// distinctLetterScore sums the pool-wide occurrence totals of word's
// distinct letters. Repeats in word count once, which penalizes
// double-letter guesses relative to ones covering more of the alphabet.
func distinctLetterScore(word string, totals [26]int) float64 {
	var seen [26]bool
	var score float64
	for i := 0; i < WordLen; i++ {
		j := word[i] - 'a'
		if seen[j] {
			continue
		}
		seen[j] = true
		score += float64(totals[j])
	}
	return score
}

// normalizeByMax divides every entry by the slice maximum. A non-positive
// maximum leaves the slice untouched.
func normalizeByMax(xs []float64) {
	var max float64
	for _, x := range xs {
		if x > max {
			max = x
		}
	}
	if max <= 0 {
		return
	}
	for i := range xs {
		xs[i] /= max
	}
}
