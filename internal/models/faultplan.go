package models

import (
	"slices"
)

const (
	MinFaults = 2
	MaxFaults = 4
)

// Rand is the random source used for all synthetic values.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Perm(n int) []int
}

// FaultPlan is the set of 1-indexed stage positions that narrate an
// injected error during a run.
type FaultPlan struct {
	positions map[int]struct{}
}

// NewFaultPlan draws between MinFaults and MaxFaults distinct positions
// from 1..n, capped at n.
func NewFaultPlan(rng Rand, n int) FaultPlan {
	plan := FaultPlan{positions: make(map[int]struct{})}
	if n <= 0 {
		return plan
	}
	k := min(MinFaults+rng.IntN(MaxFaults-MinFaults+1), n)
	for _, p := range rng.Perm(n)[:k] {
		plan.positions[p+1] = struct{}{}
	}
	return plan
}

// FaultPlanOf builds a plan from explicit positions.
func FaultPlanOf(positions ...int) FaultPlan {
	plan := FaultPlan{positions: make(map[int]struct{}, len(positions))}
	for _, p := range positions {
		plan.positions[p] = struct{}{}
	}
	return plan
}

// Contains reports whether stage position i is planned to fault.
func (p FaultPlan) Contains(i int) bool {
	_, ok := p.positions[i]
	return ok
}

// Len returns the number of planned faults.
func (p FaultPlan) Len() int {
	return len(p.positions)
}

// Positions returns the planned positions in ascending order.
func (p FaultPlan) Positions() []int {
	out := make([]int, 0, len(p.positions))
	for i := range p.positions {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}
