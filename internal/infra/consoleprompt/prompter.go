package consoleprompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/clay-k0/QR/internal/domain"
	"github.com/clay-k0/QR/internal/ports"
)

const invalidChoiceMsg = "Please enter a valid choice."

// Prompter reads one answer per line from in and writes questions to out.
// There is no retry limit: it loops until a valid answer, end of input, or
// cancellation.
//
// Reads run on a background goroutine so cancellation returns immediately.
// A line that arrives after cancellation is never returned as an answer to
// the cancelled question.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending is the in-flight read, if any. At most one goroutine reads in.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

var _ ports.Prompter = (*Prompter)(nil)

func (p *Prompter) Choose(ctx context.Context, question string, choices []string) (string, error) {
	accepted := make(map[string]bool, len(choices))
	for _, c := range choices {
		accepted[normalize(c)] = true
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(p.out, question)
		line, err := p.readLine(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		ans := normalize(line)
		if accepted[ans] {
			return ans, nil
		}

		if err != nil {
			fmt.Fprintln(p.out)
			if errors.Is(err, io.EOF) {
				return "", &domain.OpError{
					Op:   "consoleprompt.choose",
					Kind: domain.KindInputClosed,
					Err:  domain.ErrInputClosed,
				}
			}
			return "", &domain.OpError{
				Op:   "consoleprompt.read",
				Kind: domain.KindIO,
				Err:  err,
			}
		}

		fmt.Fprintf(p.out, "\n%s\n", invalidChoiceMsg)
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r.line, r.err
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
