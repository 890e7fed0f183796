// cmd/simulate/main.go
//
// Batch comparison of the AI strategies. Plays every requested strategy
// against the same sequence of random secrets and prints per-strategy
// statistics, the same numbers the /solver/compare endpoint reports.
//
// Usage:
//
//	simulate -games 200 -strategies entropy,hybrid -seed 7
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/wordplaylabs/wordle-ai/internal/sim"
	"github.com/wordplaylabs/wordle-ai/internal/words"
)

func main() {
	games := flag.Int("games", 50, "simulated games per strategy")
	strategiesFlag := flag.String("strategies", "entropy,positional,hybrid", "comma-separated strategies to compare")
	maxGuesses := flag.Int("max-guesses", sim.DefaultMaxGuesses, "guess budget per game")
	seed := flag.Int64("seed", 0, "secret selection seed (0 = time-based)")
	workers := flag.Int("workers", 0, "parallel games (0 = one per CPU)")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	strategies, err := parseStrategies(*strategiesFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -strategies")
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := words.Answers(), words.Allowed()

	fmt.Printf("comparing %s over %d games (%d answers, %d allowed guesses)\n",
		*strategiesFlag, *games, len(answers), len(allowed))

	bar := progressbar.Default(int64(*games))
	cfg := sim.Config{
		Games:      *games,
		MaxGuesses: *maxGuesses,
		Strategies: strategies,
		Seed:       *seed,
		Workers:    *workers,
		OnProgress: func(done, total int) {
			_ = bar.Add(1)
		},
	}

	summaries, err := sim.Run(context.Background(), answers, allowed, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	_ = bar.Finish()

	printSummaries(summaries)
}

func parseStrategies(list string) ([]sim.Strategy, error) {
	var out []sim.Strategy
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, err := sim.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no strategies given")
	}
	return out, nil
}

func printSummaries(summaries []sim.Summary) {
	fmt.Println()
	fmt.Printf("%-12s %6s %7s %7s %7s %4s %4s %9s\n",
		"strategy", "games", "mean", "median", "stddev", "min", "max", "success")
	for _, s := range summaries {
		fmt.Printf("%-12s %6d %7.2f %7.1f %7.2f %4d %4d %8.1f%%\n",
			s.Strategy, s.Games, s.Mean, s.Median, s.StdDev, s.Min, s.Max, s.SuccessRate*100)
	}
}
