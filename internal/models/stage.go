package models

import "fmt"

// ProbeKind names the synthetic value looked up while a stage runs.
type ProbeKind string

const (
	ProbeNone        ProbeKind = ""
	ProbeBalance     ProbeKind = "balance"
	ProbeReward      ProbeKind = "reward"
	ProbeTxHash      ProbeKind = "tx_hash"
	ProbeNetwork     ProbeKind = "network"
	ProbeContract    ProbeKind = "contract"
	ProbeTransaction ProbeKind = "transaction"
)

// Valid reports whether k is a known probe kind.
func (k ProbeKind) Valid() bool {
	switch k {
	case ProbeNone, ProbeBalance, ProbeReward, ProbeTxHash, ProbeNetwork, ProbeContract, ProbeTransaction:
		return true
	}
	return false
}

// Stage is one named step of the operation sequence.
type Stage struct {
	Name  string    `toml:"name"`
	Probe ProbeKind `toml:"probe,omitempty"`
}

// OperationSequence is the ordered, fixed list of stages shown during a run.
type OperationSequence struct {
	stages []Stage
}

// NewOperationSequence copies stages into an immutable sequence.
func NewOperationSequence(stages []Stage) (OperationSequence, error) {
	if len(stages) == 0 {
		return OperationSequence{}, fmt.Errorf("operation sequence is empty")
	}
	out := make([]Stage, len(stages))
	for i, s := range stages {
		if s.Name == "" {
			return OperationSequence{}, fmt.Errorf("stage[%d]: name is required", i)
		}
		if !s.Probe.Valid() {
			return OperationSequence{}, fmt.Errorf("stage[%d] %q: unknown probe %q", i, s.Name, s.Probe)
		}
		out[i] = s
	}
	return OperationSequence{stages: out}, nil
}

// Len returns the number of stages.
func (s OperationSequence) Len() int {
	return len(s.stages)
}

// At returns the stage at 1-indexed position i.
func (s OperationSequence) At(i int) Stage {
	return s.stages[i-1]
}

// Stages returns a copy of the stages in order.
func (s OperationSequence) Stages() []Stage {
	out := make([]Stage, len(s.stages))
	copy(out, s.stages)
	return out
}
