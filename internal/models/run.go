package models

import "time"

// RunStatus is the status line printed in the summary block.
type RunStatus string

// StatusPartial is the only status a run ever reports.
const StatusPartial RunStatus = "PARTIAL"

// Summary contains the outcome of a progress run.
type Summary struct {
	TotalStages     int           `json:"total_stages"`
	CompletedStages int           `json:"completed_stages"`
	FaultsInjected  int           `json:"faults_injected"`
	Elapsed         time.Duration `json:"elapsed"`
	Status          RunStatus     `json:"status"`
	Probes          []ProbeKind   `json:"probes,omitempty"`
}

// State is a menu controller state.
type State string

const (
	StateMainMenu            State = "main_menu"
	StateAwaitingCredentials State = "awaiting_credentials"
	StateRunning             State = "running"
	StateDone                State = "done"
)

// Outcome describes a finished session.
type Outcome struct {
	States  []State
	Session Session
	Summary Summary
}
