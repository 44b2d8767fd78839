// Package menu drives a simulated session: main menu, optional credential
// prompt, and the staged operation run.
package menu

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spachava753/stakesim/internal/console"
	"github.com/spachava753/stakesim/internal/generator"
	"github.com/spachava753/stakesim/internal/models"
	"github.com/spachava753/stakesim/internal/util"
)

// Validator checks credentials.
type Validator interface {
	Validate(ctx context.Context, privateKey, walletAddress string) (models.Verdict, error)
}

// Runner walks the operation sequence.
type Runner interface {
	Run(ctx context.Context, seq models.OperationSequence, plan models.FaultPlan, session models.Session) (models.Summary, error)
}

// Config holds the collaborators of a Controller. All randomness comes
// from Rand and Generator, which must share one process-scoped source.
type Config struct {
	Out       io.Writer
	Prompter  *Prompter
	Validator Validator
	Runner    Runner
	Generator *generator.Generator
	Rand      models.Rand
	Sleeper   util.Sleeper
	Pacing    models.Pacing
	Sequence  models.OperationSequence
	Now       func() time.Time
}

// Controller is the session state machine.
type Controller struct {
	cfg           Config
	state         models.State
	history       []models.State
	authenticated bool
}

// New creates a controller in the main menu state.
func New(cfg Config) *Controller {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Controller{cfg: cfg}
}

// Run plays one session to completion. It returns an error only when ctx
// ends or input cannot be read.
func (c *Controller) Run(ctx context.Context) (models.Outcome, error) {
	var out models.Outcome

	c.printStartup()
	if err := c.wait(ctx, c.cfg.Pacing.Startup); err != nil {
		return out, err
	}

	c.enter(models.StateMainMenu)
	for {
		switch c.state {
		case models.StateMainMenu:
			login, err := c.mainMenu(ctx)
			if err != nil {
				return c.outcome(out), err
			}
			if login {
				c.enter(models.StateAwaitingCredentials)
			} else {
				c.enter(models.StateRunning)
			}

		case models.StateAwaitingCredentials:
			ok, err := c.login(ctx)
			if err != nil {
				return c.outcome(out), err
			}
			c.authenticated = ok
			c.enter(models.StateRunning)

		case models.StateRunning:
			session, sum, err := c.running(ctx)
			out.Session, out.Summary = session, sum
			if err != nil {
				return c.outcome(out), err
			}
			c.enter(models.StateDone)

		case models.StateDone:
			return c.outcome(out), nil

		default:
			return c.outcome(out), fmt.Errorf("unknown state %q", c.state)
		}
	}
}

func (c *Controller) enter(s models.State) {
	if c.state != "" {
		slog.Debug("state transition", "from", c.state, "to", s)
	}
	c.state = s
	c.history = append(c.history, s)
}

func (c *Controller) outcome(o models.Outcome) models.Outcome {
	o.States = append([]models.State(nil), c.history...)
	return o
}

func (c *Controller) wait(ctx context.Context, r util.DelayRange) error {
	return c.cfg.Sleeper.Sleep(ctx, r.Pick(c.cfg.Rand))
}

// mainMenu prompts until the user picks 1 (login) or 2 (continue without).
func (c *Controller) mainMenu(ctx context.Context) (bool, error) {
	c.printMenu()

	for {
		choice, err := c.cfg.Prompter.Ask(ctx, "Select an option [1-2]: ")
		if err != nil {
			return false, fmt.Errorf("reading menu choice: %w", err)
		}
		switch choice {
		case "1":
			return true, nil
		case "2":
			return false, nil
		}
		console.Alert.Fprintln(c.cfg.Out, "❌ Invalid option. Please enter 1 or 2.")
		fmt.Fprintln(c.cfg.Out)
	}
}

// login collects credentials and runs them through the validator. Every
// path except an accepted verdict ends in limited mode.
func (c *Controller) login(ctx context.Context) (bool, error) {
	out := c.cfg.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, console.Rule())
	console.Heading.Fprintln(out, console.Center("Wallet Authentication", console.RuleWidth))
	fmt.Fprintln(out, console.Rule())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Please provide your wallet credentials to access full features:")
	console.Muted.Fprintln(out, "(simulation: input is format-checked in memory and discarded)")
	fmt.Fprintln(out)

	key, err := c.cfg.Prompter.Ask(ctx, "🔑 Enter your private key: ")
	if err != nil {
		return false, fmt.Errorf("reading private key: %w", err)
	}
	if key == "" {
		return false, c.abortLogin(ctx, "Private key cannot be empty.")
	}

	address, err := c.cfg.Prompter.Ask(ctx, "💼 Enter your wallet address (0x...): ")
	if err != nil {
		return false, fmt.Errorf("reading wallet address: %w", err)
	}
	if address == "" {
		return false, c.abortLogin(ctx, "Wallet address cannot be empty.")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "⏳ Authenticating credentials...")
	verdict, err := c.cfg.Validator.Validate(ctx, key, address)
	if err != nil {
		return false, err
	}
	if verdict.Accepted {
		return true, nil
	}

	fmt.Fprintln(out)
	console.Alert.Fprintln(out, "❌ Authentication Failed")
	fmt.Fprintf(out, "   %s\n", verdict.Message)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "💡 Tip: Make sure you're using the correct private key for your wallet.")
	fmt.Fprintln(out, "   You can try again or use the bot without login (limited features).")
	fmt.Fprintln(out)
	if err := c.wait(ctx, c.cfg.Pacing.Rejection); err != nil {
		return false, err
	}
	return false, c.continueLimited(ctx)
}

func (c *Controller) abortLogin(ctx context.Context, msg string) error {
	slog.Debug("login aborted", "kind", models.ErrInputEmpty)
	fmt.Fprintln(c.cfg.Out)
	console.Alert.Fprintf(c.cfg.Out, "❌ Error: %s\n", msg)
	if err := c.wait(ctx, c.cfg.Pacing.AuthAbort); err != nil {
		return err
	}
	return c.continueLimited(ctx)
}

func (c *Controller) continueLimited(ctx context.Context) error {
	fmt.Fprintln(c.cfg.Out, "Continuing in limited mode...")
	fmt.Fprintln(c.cfg.Out)
	return c.wait(ctx, c.cfg.Pacing.LimitedMode)
}

func (c *Controller) running(ctx context.Context) (models.Session, models.Summary, error) {
	session := c.cfg.Generator.NewSession(c.authenticated, c.cfg.Now())
	c.printBanner()
	c.printSession(session)

	plan := models.NewFaultPlan(c.cfg.Rand, c.cfg.Sequence.Len())
	sum, err := c.cfg.Runner.Run(ctx, c.cfg.Sequence, plan, session)
	return session, sum, err
}

func (c *Controller) printStartup() {
	out := c.cfg.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, console.Rule())
	console.Heading.Fprintln(out, console.Center("Starting Staking Console Simulator", console.RuleWidth))
	fmt.Fprintln(out, console.Rule())
	fmt.Fprintln(out)
}

func (c *Controller) printMenu() {
	out := c.cfg.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, console.Rule())
	console.Heading.Fprintln(out, console.Center("Staking Console Simulator - Main Menu", console.RuleWidth))
	fmt.Fprintln(out, console.Rule())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  [1] Login with wallet credentials")
	fmt.Fprintln(out, "      → Full access to staking, swaps, and AI agent features")
	fmt.Fprintln(out, "      → View your token balance and transaction history")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  [2] Continue without login")
	fmt.Fprintln(out, "      → Limited mode: View network status only")
	fmt.Fprintln(out, "      → Some features will be unavailable")
	fmt.Fprintln(out)
	fmt.Fprintln(out, console.Rule())
	fmt.Fprintln(out)
}

var bannerLines = []string{
	"Staking Console Simulator v2.1",
	"Simulation only: no wallet, network, or chain access",
}

func (c *Controller) printBanner() {
	out := c.cfg.Out
	inner := console.RuleWidth - 2
	fmt.Fprintln(out)
	console.Heading.Fprintln(out, "╔"+strings.Repeat("═", inner)+"╗")
	for _, l := range bannerLines {
		padded := console.Center(l, inner)
		console.Heading.Fprintln(out, "║"+padded+strings.Repeat(" ", inner-utf8.RuneCountInString(padded))+"║")
	}
	console.Heading.Fprintln(out, "╚"+strings.Repeat("═", inner)+"╝")
	fmt.Fprintln(out)
}

func (c *Controller) printSession(s models.Session) {
	out := c.cfg.Out
	if s.Authenticated {
		fmt.Fprintln(out, "🔐 Wallet Session:", console.Value.Sprint(s.ID))
		if s.Balance != nil {
			fmt.Fprintln(out, "💰 Token Balance:", console.Value.Sprint(formatFloat(*s.Balance)), "STK")
		}
	} else {
		console.Warn.Fprintln(out, "⚠️  Running in limited mode (no wallet connected)")
	}
	fmt.Fprintln(out, "⛽ Gas Price:", console.Value.Sprint(formatFloat(s.GasPrice)), "Gwei")
	fmt.Fprintln(out, "🤖 AI Agent:", console.Value.Sprint(s.AgentStatus))
	fmt.Fprintln(out)
	fmt.Fprintln(out, console.Rule())
	fmt.Fprintln(out)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
