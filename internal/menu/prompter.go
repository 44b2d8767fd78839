package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spachava753/stakesim/internal/models"
)

type line struct {
	text string
	err  error
}

// Prompter reads answers line by line. Reads are cancellable: a pending
// Ask returns as soon as its context ends even though the underlying
// reader is still blocked. Ask must not be called concurrently.
type Prompter struct {
	out   io.Writer
	lines chan line
	done  chan struct{}
	eof   bool
}

// NewPrompter starts reading from in. Call Close when finished.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan line),
		done:  make(chan struct{}),
	}
	go p.scan(in)
	return p
}

func (p *Prompter) scan(in io.Reader) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case p.lines <- line{text: sc.Text()}:
		case <-p.done:
			return
		}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case p.lines <- line{err: err}:
	case <-p.done:
	}
}

// Ask prints prompt and returns the next line with surrounding whitespace
// removed. It returns models.ErrInputClosed once the input is exhausted.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if p.eof {
		return "", models.ErrInputClosed
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-p.lines:
		if l.err == io.EOF {
			p.eof = true
			return "", models.ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("reading input: %w", l.err)
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Close stops the background reader.
func (p *Prompter) Close() {
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}
