// Package gate implements the simulated wallet credential check. It only
// inspects the length and prefix of its inputs and never accepts them.
package gate

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spachava753/stakesim/internal/models"
	"github.com/spachava753/stakesim/internal/util"
)

const (
	privateKeyMinLen = 64
	walletAddressLen = 42

	MsgInvalidPrivateKey    = "Invalid private key format. Expected 64 hexadecimal characters."
	MsgInvalidWalletAddress = "Invalid wallet address format. Must start with 0x and be 42 characters long."
)

// Gate validates credentials against nothing: format problems are
// reported as such and well-formed input is rejected with a message
// sampled from the rejection catalog.
type Gate struct {
	rng        models.Rand
	sleeper    util.Sleeper
	delay      util.DelayRange
	rejections []string
}

// New creates a gate. rejections must not be empty.
func New(rng models.Rand, sleeper util.Sleeper, delay util.DelayRange, rejections []string) *Gate {
	return &Gate{
		rng:        rng,
		sleeper:    sleeper,
		delay:      delay,
		rejections: rejections,
	}
}

// Validate waits the simulated latency and returns a denial. The only
// error is the context's, when it ends during the wait.
func (g *Gate) Validate(ctx context.Context, privateKey, walletAddress string) (models.Verdict, error) {
	if err := g.sleeper.Sleep(ctx, g.delay.Pick(g.rng)); err != nil {
		return models.Verdict{}, err
	}

	v := g.check(privateKey, walletAddress)
	slog.Debug("credential check finished", "kind", v.Kind)
	return v, nil
}

func (g *Gate) check(privateKey, walletAddress string) models.Verdict {
	if len(privateKey) < privateKeyMinLen {
		return models.Verdict{Kind: models.ErrCredentialFormatInvalid, Message: MsgInvalidPrivateKey}
	}
	if !strings.HasPrefix(walletAddress, "0x") || len(walletAddress) != walletAddressLen {
		return models.Verdict{Kind: models.ErrCredentialFormatInvalid, Message: MsgInvalidWalletAddress}
	}
	return models.Verdict{
		Kind:    models.ErrCredentialRejected,
		Message: g.rejections[g.rng.IntN(len(g.rejections))],
	}
}
