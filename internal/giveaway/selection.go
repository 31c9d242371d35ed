package giveaway

import (
	"math/rand/v2"

	"github.com/atreus-labs/wardenbot/internal/domain"
)

// randSource yields a uniform int in [0, n). Injected so selection tests
// can run against a seeded sequence.
type randSource interface {
	IntN(n int) int
}

// systemRand draws from the shared top-level generator, which is safe for
// concurrent use.
type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// pickWinners draws up to k distinct entrants by weighted sampling without
// replacement. Each draw removes the chosen entrant from the pool and
// subtracts its weight from the running total, so every remaining draw stays
// proportional to relative weight among the remaining candidates.
//
// k is clamped to [0, len(entrants)]. If the remaining total weight reaches
// zero the winners drawn so far are returned as-is.
func pickWinners(entrants []domain.Entrant, k int, rng randSource) []domain.Entrant {
	if k > len(entrants) {
		k = len(entrants)
	}
	if k <= 0 {
		return nil
	}

	pool := make([]domain.Entrant, len(entrants))
	copy(pool, entrants)

	total := 0
	for _, e := range pool {
		total += e.Weight
	}

	winners := make([]domain.Entrant, 0, k)
	for len(winners) < k && total > 0 {
		draw := rng.IntN(total)
		acc := 0
		for i, e := range pool {
			acc += e.Weight
			if draw < acc {
				winners = append(winners, e)
				total -= e.Weight
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	return winners
}

func winnerIDs(winners []domain.Entrant) []string {
	ids := make([]string, len(winners))
	for i, w := range winners {
		ids[i] = w.UserID
	}
	return ids
}
