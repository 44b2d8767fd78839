// Package generator produces the synthetic values displayed during a
// simulated session. Every value is random or formula-derived and is
// never sent anywhere.
package generator

import (
	"strings"
	"time"

	"github.com/spachava753/stakesim/internal/models"
	"github.com/spachava753/stakesim/internal/util"
)

const (
	hexDigits = "0123456789abcdef"

	// RewardRate is the flat annual rate used by Reward.
	RewardRate = 0.08

	balanceMin = 100.0
	balanceMax = 10000.0
	gasMin     = 20.0
	gasMax     = 150.0
)

// ContractAddresses are the placeholder contracts reported by ContractAddress.
var ContractAddresses = []string{
	"0x00000000000000000000000000000000005a1c01",
	"0x00000000000000000000000000000000005a1c02",
	"0x00000000000000000000000000000000005a1c03",
}

// Generator draws synthetic values from a single random source.
type Generator struct {
	rng models.Rand
}

// New creates a generator backed by rng.
func New(rng models.Rand) *Generator {
	return &Generator{rng: rng}
}

// SessionID returns "0x" + now as YYYYMMDDhhmmss + 12 random hex characters.
func (g *Generator) SessionID(now time.Time) string {
	return "0x" + now.Format("20060102150405") + g.hex(12)
}

// Balance returns a uniform value in [100, 10000] rounded to 2 decimals.
func (g *Generator) Balance() float64 {
	return util.Round(g.uniform(balanceMin, balanceMax), 2)
}

// GasPrice returns a uniform value in [20, 150] rounded to 2 decimals.
func (g *Generator) GasPrice() float64 {
	return util.Round(g.uniform(gasMin, gasMax), 2)
}

// TxHash returns "0x" followed by 64 random hex characters.
func (g *Generator) TxHash() string {
	return "0x" + g.hex(64)
}

// AgentStatus picks one of models.AgentStatuses uniformly.
func (g *Generator) AgentStatus() models.AgentStatus {
	return models.AgentStatuses[g.rng.IntN(len(models.AgentStatuses))]
}

// ContractAddress picks one of ContractAddresses uniformly.
func (g *Generator) ContractAddress() string {
	return ContractAddresses[g.rng.IntN(len(ContractAddresses))]
}

// NetworkReachable flips a fair coin.
func (g *Generator) NetworkReachable() bool {
	return g.rng.IntN(2) == 1
}

// Transaction builds a draft with a nonce in [1, 999999] and a gas limit
// in [21000, 100000].
func (g *Generator) Transaction(from string, amount float64) models.Transaction {
	return models.Transaction{
		From:     from,
		Amount:   amount,
		Nonce:    1 + g.rng.IntN(999999),
		GasLimit: 21000 + g.rng.IntN(100000-21000+1),
	}
}

// NewSession builds the display values for a run. The session id and
// balance are only drawn for authenticated sessions.
func (g *Generator) NewSession(authenticated bool, now time.Time) models.Session {
	s := models.Session{
		Authenticated: authenticated,
		CreatedAt:     now,
	}
	if authenticated {
		s.ID = g.SessionID(now)
		balance := g.Balance()
		s.Balance = &balance
	}
	s.GasPrice = g.GasPrice()
	s.AgentStatus = g.AgentStatus()
	return s
}

// Reward estimates the staking reward for amount over durationDays at
// RewardRate, rounded to 4 decimals.
func Reward(amount, durationDays float64) float64 {
	return util.Round(amount*RewardRate*(durationDays/365), 4)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) hex(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(hexDigits[g.rng.IntN(len(hexDigits))])
	}
	return b.String()
}
