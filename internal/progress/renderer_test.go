package progress_test

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spachava753/stakesim/internal/progress"
)

func bar(filled int) string {
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", progress.BarWidth-filled) + "]"
}

func TestRenderInteractive(t *testing.T) {
	var buf bytes.Buffer
	r := progress.NewRenderer(&buf, true, 0)

	line := r.Render(0.5, "Broadcasting to blockchain")
	want := bar(25) + " 50% | Broadcasting to blockchain"
	if line != want {
		t.Fatalf("Render = %q, want %q", line, want)
	}
	if buf.String() != "\r"+want {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	r.Render(1, "Done")
	short := bar(50) + " 100% | Done"
	pad := utf8.RuneCountInString(want) - utf8.RuneCountInString(short)
	if buf.String() != "\r"+short+strings.Repeat(" ", pad) {
		t.Errorf("shorter line should erase the previous tail, got %q", buf.String())
	}

	buf.Reset()
	r.Break()
	if buf.String() != "\n" {
		t.Errorf("Break output = %q, want newline", buf.String())
	}
	buf.Reset()
	r.Break()
	if buf.Len() != 0 {
		t.Errorf("second Break should write nothing, got %q", buf.String())
	}
	if r.Renders() != 2 {
		t.Errorf("Renders = %d, want 2", r.Renders())
	}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	r := progress.NewRenderer(&buf, false, 0)

	r.Render(1.0/13, "Initializing staking connection")
	r.Render(2.0/13, "Validating wallet credentials")
	r.Break()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != bar(3)+" 7% | Initializing staking connection" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != bar(7)+" 15% | Validating wallet credentials" {
		t.Errorf("line 2 = %q", lines[1])
	}
	if strings.Contains(buf.String(), "\r") {
		t.Error("plain mode must not emit carriage returns")
	}
}

func TestRenderClampsFraction(t *testing.T) {
	r := progress.NewRenderer(&bytes.Buffer{}, false, 0)

	if got := r.Render(-1, "x"); got != bar(0)+" 0% | x" {
		t.Errorf("negative fraction rendered %q", got)
	}
	if got := r.Render(2, "x"); got != bar(50)+" 100% | x" {
		t.Errorf("overflow fraction rendered %q", got)
	}
}

func TestRenderTruncatesLabel(t *testing.T) {
	r := progress.NewRenderer(&bytes.Buffer{}, true, 70)

	line := r.Render(0.5, "Signing transaction with private key")
	if n := utf8.RuneCountInString(line); n != 69 {
		t.Errorf("line is %d columns, want 69: %q", n, line)
	}
	if !strings.HasSuffix(line, "...") {
		t.Errorf("expected ellipsis, got %q", line)
	}
}
