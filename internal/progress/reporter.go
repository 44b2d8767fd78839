// Package progress renders the staged operation run: the evolving bar,
// the cosmetic fault narration, and the closing summary.
package progress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spachava753/stakesim/internal/console"
	"github.com/spachava753/stakesim/internal/generator"
	"github.com/spachava753/stakesim/internal/models"
	"github.com/spachava753/stakesim/internal/util"
)

const (
	rewardProbeAmount = 1000
	rewardProbeDays   = 30
)

// Config holds the collaborators of a Reporter.
type Config struct {
	Out           io.Writer
	Renderer      *Renderer
	Generator     *generator.Generator
	Rand          models.Rand
	Sleeper       util.Sleeper
	StageDelay    util.DelayRange
	RecoveryDelay util.DelayRange
	Faults        []string
	Now           func() time.Time
}

// Reporter walks an operation sequence.
type Reporter struct {
	cfg Config
}

// New creates a reporter. A nil Now defaults to time.Now.
func New(cfg Config) *Reporter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Reporter{cfg: cfg}
}

// Run renders every stage of seq in order, narrates a fault at each
// position in plan, and prints the summary. Faults never stop the run;
// only ctx ending does, in which case the partial summary is returned with
// the context's error and nothing more is printed.
func (r *Reporter) Run(ctx context.Context, seq models.OperationSequence, plan models.FaultPlan, session models.Session) (models.Summary, error) {
	start := r.cfg.Now()
	n := seq.Len()
	sum := models.Summary{
		TotalStages: n,
		Status:      models.StatusPartial,
	}

	slog.Debug("operation run starting", "stages", n, "fault_plan", plan.Positions())

	for i := 1; i <= n; i++ {
		stage := seq.At(i)
		r.cfg.Renderer.Render(float64(i)/float64(n), stage.Name)

		if err := r.cfg.Sleeper.Sleep(ctx, r.cfg.StageDelay.Pick(r.cfg.Rand)); err != nil {
			r.cfg.Renderer.Break()
			return sum, err
		}

		if plan.Contains(i) {
			sum.FaultsInjected++
			if err := r.narrateFault(ctx); err != nil {
				return sum, err
			}
		}

		if stage.Probe != models.ProbeNone && r.probe(stage, session) {
			sum.Probes = append(sum.Probes, stage.Probe)
		}
		sum.CompletedStages = i
	}

	sum.Elapsed = r.cfg.Now().Sub(start)
	r.printSummary(sum)
	return sum, nil
}

func (r *Reporter) narrateFault(ctx context.Context) error {
	msg := r.cfg.Faults[r.cfg.Rand.IntN(len(r.cfg.Faults))]
	out := r.cfg.Out

	r.cfg.Renderer.Break()
	fmt.Fprintln(out)
	console.Alert.Fprintf(out, "⚠️  ERROR: %s\n", msg)
	fmt.Fprintln(out, "   → Attempting automatic recovery...")

	if err := r.cfg.Sleeper.Sleep(ctx, r.cfg.RecoveryDelay.Pick(r.cfg.Rand)); err != nil {
		return err
	}

	console.Warn.Fprintln(out, "   ✗ Recovery failed. Continuing with next operation.")
	fmt.Fprintln(out)
	return nil
}

// probe looks up the stage's synthetic value. The value is only logged.
// It reports whether a lookup happened.
func (r *Reporter) probe(stage models.Stage, session models.Session) bool {
	gen := r.cfg.Generator
	var v any

	switch stage.Probe {
	case models.ProbeBalance:
		if !session.Authenticated {
			return false
		}
		v = gen.Balance()
	case models.ProbeReward:
		v = generator.Reward(rewardProbeAmount, rewardProbeDays)
	case models.ProbeTxHash:
		v = gen.TxHash()
	case models.ProbeNetwork:
		v = gen.NetworkReachable()
	case models.ProbeContract:
		v = gen.ContractAddress()
	case models.ProbeTransaction:
		v = gen.Transaction(session.ID, rewardProbeAmount)
	default:
		return false
	}

	slog.Debug("stage probe", "stage", stage.Name, "probe", stage.Probe, "value", v)
	return true
}

func (r *Reporter) printSummary(sum models.Summary) {
	out := r.cfg.Out

	r.cfg.Renderer.Break()
	fmt.Fprintln(out)
	fmt.Fprintln(out, console.Rule())
	console.Heading.Fprintln(out, console.Center("Operation completed with errors", console.RuleWidth))
	fmt.Fprintln(out, console.Center(
		fmt.Sprintf("Duration: %.1fs | Status: %s", sum.Elapsed.Seconds(), sum.Status),
		console.RuleWidth,
	))
	fmt.Fprintln(out, console.Rule())
	fmt.Fprintln(out)
	console.Warn.Fprintln(out, "⚠️  Some operations failed. Check logs for details.")
	fmt.Fprintln(out)
}
