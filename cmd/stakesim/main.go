package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spachava753/stakesim/internal/config"
	"github.com/spachava753/stakesim/internal/console"
	"github.com/spachava753/stakesim/internal/gate"
	"github.com/spachava753/stakesim/internal/generator"
	"github.com/spachava753/stakesim/internal/menu"
	"github.com/spachava753/stakesim/internal/models"
	"github.com/spachava753/stakesim/internal/progress"
	"github.com/spachava753/stakesim/internal/util"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: stakesim [scenario.yaml]")
		os.Exit(1)
	}

	scenario := config.DefaultScenario()
	if len(os.Args) == 2 {
		var err error
		scenario, err = config.LoadScenario(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading scenario: %v\n", err)
			os.Exit(1)
		}
	}

	lvl, _ := config.ParseLogLevel(scenario.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	term := console.Detect(os.Stdout)
	console.ConfigureColor(scenario.Color, term)

	// Setup context with manual signal handling
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigChan)
		cancel()
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return session(gctx, scenario, term, os.Stdin, os.Stdout)
	})
	g.Go(func() error {
		select {
		case sig := <-sigChan:
			slog.Debug("interrupt received", "signal", sig)
			return models.ErrUserInterrupt
		case <-gctx.Done():
			return nil
		}
	})

	os.Exit(finish(g.Wait(), os.Stdout))
}

// session wires one simulated session from the scenario and runs it.
func session(ctx context.Context, scenario models.Scenario, term console.Terminal, in io.Reader, out io.Writer) error {
	cat, err := loadCatalog(scenario)
	if err != nil {
		return err
	}
	seq, err := cat.Sequence()
	if err != nil {
		return fmt.Errorf("building operation sequence: %w", err)
	}
	pacing, err := config.ResolvePacing(scenario)
	if err != nil {
		return fmt.Errorf("resolving pacing: %w", err)
	}

	seed := uint64(time.Now().UnixNano())
	if scenario.Seed != nil {
		seed = *scenario.Seed
	}
	slog.Debug("session starting", "seed", seed, "stages", seq.Len())

	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	gen := generator.New(rng)
	sleeper := util.TimerSleeper{}

	prompter := menu.NewPrompter(in, out)
	defer prompter.Close()

	ctrl := menu.New(menu.Config{
		Out:       out,
		Prompter:  prompter,
		Validator: gate.New(rng, sleeper, pacing.Auth, cat.Rejections),
		Runner: progress.New(progress.Config{
			Out:           out,
			Renderer:      progress.NewRenderer(out, term.Interactive, term.Width),
			Generator:     gen,
			Rand:          rng,
			Sleeper:       sleeper,
			StageDelay:    pacing.Stage,
			RecoveryDelay: pacing.Recovery,
			Faults:        cat.Faults,
		}),
		Generator: gen,
		Rand:      rng,
		Sleeper:   sleeper,
		Pacing:    pacing,
		Sequence:  seq,
	})

	outcome, err := ctrl.Run(ctx)
	if err != nil {
		return err
	}
	slog.Debug("session finished",
		"states", outcome.States,
		"completed", outcome.Summary.CompletedStages,
		"faults", outcome.Summary.FaultsInjected,
		"elapsed", outcome.Summary.Elapsed,
	)
	return nil
}

func loadCatalog(scenario models.Scenario) (config.Catalog, error) {
	if scenario.CatalogPath != "" {
		return config.LoadCatalogFile(scenario.CatalogPath)
	}
	return config.DefaultCatalog()
}

// finish prints the user-facing message for err and returns the exit code.
func finish(err error, out io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, models.ErrUserInterrupt), errors.Is(err, context.Canceled):
		slog.Info("session stopped", "type", models.ErrUserInterruptType)
		console.Warn.Fprintln(out, "\n\n⚠️  Bot stopped by user.")
		return 0
	default:
		slog.Error("session failed", "type", models.ErrUnhandledFault, "error", err)
		console.Alert.Fprintf(out, "\n\n❌ Fatal error: %v\n", err)
		return 1
	}
}
