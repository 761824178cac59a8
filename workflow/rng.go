package workflow

import (
	"hash/fnv"
	"math/rand"
	"time"

	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
)

// Rand is the explicit PRNG every stochastic decision draws from. There is no
// process-global random state: the orchestrator owns one master Rand and each
// unit simulation owns a child derived from the unit's asset id, so unit
// outcomes do not depend on the order units are simulated in.
type Rand struct {
	r *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Child derives an independent generator keyed by name. The derivation is a
// pure function of (parent seed material, name), so re-running with the same
// master seed reproduces every child stream.
func (g *Rand) Child(name string) *Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	// Mix the parent stream exactly one draw, keeping child derivation
	// deterministic while still depending on the master seed.
	return NewRand(int64(h.Sum64()) ^ g.r.Int63())
}

// ChildOf derives a child without consuming parent state, keyed by a stable
// seed value and a name. Used per asset unit.
func ChildOf(seed int64, name string) *Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return NewRand(seed ^ int64(h.Sum64()))
}

// IntBetween draws uniformly from [lo, hi] inclusive.
func (g *Rand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Float draws uniformly from [0, 1).
func (g *Rand) Float() float64 {
	return g.r.Float64()
}

// Chance reports true with probability p.
func (g *Rand) Chance(p float64) bool {
	return g.r.Float64() < p
}

// Uniform draws uniformly from [lo, hi).
func (g *Rand) Uniform(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

// Normal draws from N(mean, stddev).
func (g *Rand) Normal(mean, stddev float64) float64 {
	return g.r.NormFloat64()*stddev + mean
}

// DateBetween draws a date uniformly from [from, to] at day granularity.
func (g *Rand) DateBetween(from, to time.Time) time.Time {
	from = utils.AtMidnight(from)
	to = utils.AtMidnight(to)
	days := utils.DaysBetween(from, to)
	if days <= 0 {
		return from
	}
	return utils.AddDays(from, g.IntBetween(0, days))
}

// PickIndex draws an index according to weights (assumed to sum to 1; any
// leftover mass lands on the last entry).
func (g *Rand) PickIndex(weights []float64) int {
	x := g.r.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if x < acc {
			return i
		}
	}
	return len(weights) - 1
}

// PickString draws a choice according to weights.
func (g *Rand) PickString(choices []string, weights []float64) string {
	return choices[g.PickIndex(weights)]
}

// Choice draws uniformly from choices.
func Choice[T any](g *Rand, choices []T) T {
	return choices[g.r.Intn(len(choices))]
}
