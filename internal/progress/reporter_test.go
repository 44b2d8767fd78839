package progress_test

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/spachava753/stakesim/internal/config"
	"github.com/spachava753/stakesim/internal/generator"
	"github.com/spachava753/stakesim/internal/models"
	"github.com/spachava753/stakesim/internal/progress"
	"github.com/spachava753/stakesim/internal/util"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type recordingSleeper struct {
	calls []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.calls = append(s.calls, d)
	return ctx.Err()
}

// cancellingSleeper cancels the run on its nth call.
type cancellingSleeper struct {
	n      int
	calls  int
	cancel context.CancelFunc
}

func (s *cancellingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.calls++
	if s.calls == s.n {
		s.cancel()
	}
	return ctx.Err()
}

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

type fixture struct {
	out      *bytes.Buffer
	renderer *progress.Renderer
	reporter *progress.Reporter
	seq      models.OperationSequence
	catalog  config.Catalog
}

func newFixture(t *testing.T, sleeper util.Sleeper) fixture {
	t.Helper()
	cat, err := config.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog failed: %v", err)
	}
	seq, err := cat.Sequence()
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}

	rng := rand.New(rand.NewPCG(31, 32))
	out := &bytes.Buffer{}
	renderer := progress.NewRenderer(out, true, 0)
	reporter := progress.New(progress.Config{
		Out:           out,
		Renderer:      renderer,
		Generator:     generator.New(rng),
		Rand:          rng,
		Sleeper:       sleeper,
		StageDelay:    util.DelayRange{Min: 400 * time.Millisecond, Max: time.Second},
		RecoveryDelay: util.DelayRange{Min: 600 * time.Millisecond, Max: 1300 * time.Millisecond},
		Faults:        cat.Faults,
		Now:           stepClock(1500 * time.Millisecond),
	})
	return fixture{out: out, renderer: renderer, reporter: reporter, seq: seq, catalog: cat}
}

func allPositions(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestRunCompletesAllStages(t *testing.T) {
	const n = 13
	plans := map[string]models.FaultPlan{
		"no faults":    models.FaultPlanOf(),
		"two faults":   models.FaultPlanOf(1, n),
		"four faults":  models.FaultPlanOf(2, 5, 8, 11),
		"every stage":  models.FaultPlanOf(allPositions(n)...),
		"random plan":  models.NewFaultPlan(rand.New(rand.NewPCG(1, 2)), n),
		"out of range": models.FaultPlanOf(0, n+1),
	}

	for name, plan := range plans {
		t.Run(name, func(t *testing.T) {
			sleeper := &recordingSleeper{}
			f := newFixture(t, sleeper)

			sum, err := f.reporter.Run(context.Background(), f.seq, plan, models.Session{})
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if sum.CompletedStages != n || sum.TotalStages != n {
				t.Errorf("completed %d/%d stages, want %d", sum.CompletedStages, sum.TotalStages, n)
			}
			if f.renderer.Renders() != n {
				t.Errorf("rendered %d times, want %d", f.renderer.Renders(), n)
			}

			faults := 0
			for _, p := range plan.Positions() {
				if p >= 1 && p <= n {
					faults++
				}
			}
			if sum.FaultsInjected != faults {
				t.Errorf("FaultsInjected = %d, want %d", sum.FaultsInjected, faults)
			}

			out := f.out.String()
			if c := strings.Count(out, "ERROR: "); c != faults {
				t.Errorf("printed %d error blocks, want %d", c, faults)
			}
			if c := strings.Count(out, "Recovery failed. Continuing with next operation."); c != faults {
				t.Errorf("printed %d recovery failures, want %d", c, faults)
			}
			if len(sleeper.calls) != n+faults {
				t.Errorf("slept %d times, want %d", len(sleeper.calls), n+faults)
			}

			if sum.Status != models.StatusPartial {
				t.Errorf("Status = %s, want PARTIAL", sum.Status)
			}
			if !strings.Contains(out, "Duration: 1.5s | Status: PARTIAL") {
				t.Errorf("summary block missing, output:\n%s", out)
			}
			if !strings.Contains(out, "100% | Finalizing operation") {
				t.Error("last stage was not rendered at 100%")
			}
		})
	}
}

func TestRunFaultMessagesComeFromCatalog(t *testing.T) {
	f := newFixture(t, &recordingSleeper{})

	if _, err := f.reporter.Run(context.Background(), f.seq, models.FaultPlanOf(allPositions(13)...), models.Session{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, line := range strings.Split(f.out.String(), "\n") {
		_, msg, ok := strings.Cut(line, "ERROR: ")
		if !ok {
			continue
		}
		if !slices.Contains(f.catalog.Faults, msg) {
			t.Errorf("fault message %q not in catalog", msg)
		}
	}
}

func TestRunDelaysWithinRanges(t *testing.T) {
	sleeper := &recordingSleeper{}
	f := newFixture(t, sleeper)

	if _, err := f.reporter.Run(context.Background(), f.seq, models.FaultPlanOf(), models.Session{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for i, d := range sleeper.calls {
		if d < 400*time.Millisecond || d > time.Second {
			t.Errorf("stage wait %d = %v outside [400ms, 1s]", i, d)
		}
	}
}

func TestRunProbes(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		want    []models.ProbeKind
	}{
		{
			name:    "limited mode skips balance",
			session: models.Session{},
			want: []models.ProbeKind{
				models.ProbeNetwork, models.ProbeReward, models.ProbeTransaction,
				models.ProbeTxHash, models.ProbeContract,
			},
		},
		{
			name:    "authenticated checks balance",
			session: models.Session{Authenticated: true, ID: "0xabc"},
			want: []models.ProbeKind{
				models.ProbeBalance, models.ProbeNetwork, models.ProbeReward,
				models.ProbeTransaction, models.ProbeTxHash, models.ProbeContract,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, &recordingSleeper{})
			sum, err := f.reporter.Run(context.Background(), f.seq, models.FaultPlanOf(), tt.session)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if !slices.Equal(sum.Probes, tt.want) {
				t.Errorf("Probes = %v, want %v", sum.Probes, tt.want)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sleeper := &cancellingSleeper{n: 5, cancel: cancel}
	f := newFixture(t, sleeper)

	sum, err := f.reporter.Run(ctx, f.seq, models.FaultPlanOf(), models.Session{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if sum.CompletedStages != 4 {
		t.Errorf("CompletedStages = %d, want 4", sum.CompletedStages)
	}
	if strings.Contains(f.out.String(), "Status: PARTIAL") {
		t.Error("summary must not be printed after cancellation")
	}
}

func TestRunCancelledDuringRecovery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stage 1 wait, then the recovery wait for the fault at stage 1.
	sleeper := &cancellingSleeper{n: 2, cancel: cancel}
	f := newFixture(t, sleeper)

	_, err := f.reporter.Run(ctx, f.seq, models.FaultPlanOf(1), models.Session{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if strings.Contains(f.out.String(), "Recovery failed") {
		t.Error("recovery outcome must not be printed after cancellation")
	}
}
