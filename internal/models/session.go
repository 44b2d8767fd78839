package models

import "time"

// AgentStatus is the displayed state of the simulated automation agent.
type AgentStatus string

const (
	AgentActive     AgentStatus = "ACTIVE"
	AgentIdle       AgentStatus = "IDLE"
	AgentProcessing AgentStatus = "PROCESSING"
	AgentSyncing    AgentStatus = "SYNCING"
)

// AgentStatuses lists every agent status in display order.
var AgentStatuses = []AgentStatus{AgentActive, AgentIdle, AgentProcessing, AgentSyncing}

// Session holds the per-run display values. It is built once when the
// run starts and never modified.
type Session struct {
	Authenticated bool        `json:"authenticated"`
	ID            string      `json:"id,omitempty"`
	Balance       *float64    `json:"balance,omitempty"`
	GasPrice      float64     `json:"gas_price"`
	AgentStatus   AgentStatus `json:"agent_status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Verdict is the outcome of a credential check.
type Verdict struct {
	Accepted bool
	Kind     ErrorType
	Message  string
}

// Transaction is a synthetic transaction draft used only for display.
type Transaction struct {
	From     string  `json:"from"`
	Amount   float64 `json:"amount"`
	Nonce    int     `json:"nonce"`
	GasLimit int     `json:"gas_limit"`
}
