// Package prompt asks the operator to pick one of several ambiguous lookup
// candidates.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"moviemanager/internal/media"
)

// ErrCancelled is returned when the operator skips the entry, input ends, or
// the attempt budget runs out.
var ErrCancelled = errors.New("selection cancelled")

// DefaultMaxAttempts bounds invalid answers when no limit is configured.
const DefaultMaxAttempts = 3

// Prompter reads a numeric choice from In after listing candidates on Out.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
	style       table.Style

	// pending holds a read left in flight by a cancelled Select. The next
	// Select consumes it instead of starting a second reader.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithStyle sets the table style used to list candidates.
func WithStyle(style table.Style) Option {
	return func(p *Prompter) {
		p.style = style
	}
}

// New returns a Prompter. A non-positive maxAttempts uses DefaultMaxAttempts.
func New(in io.Reader, out io.Writer, maxAttempts int, opts ...Option) *Prompter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	p := &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		maxAttempts: maxAttempts,
		style:       table.StyleDefault,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Select lists every candidate that has a year, numbered by its position in
// candidates, and returns the one the operator picks. Positions of yearless
// candidates are not offered and are rejected if entered. When ctx ends
// while waiting for input, Select returns ctx.Err() at once.
func (p *Prompter) Select(ctx context.Context, subject string, candidates []media.Candidate) (media.Candidate, error) {
	if len(candidates) == 0 {
		return media.Candidate{}, errors.New("no candidates to select from")
	}

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Ambiguous title: %s\n", subject)
	fmt.Fprintln(p.out, p.render(candidates))
	fmt.Fprintln(p.out, "Select the correct title")

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		fmt.Fprint(p.out, "Choice (blank to skip): ")
		line, err := p.readLine(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			fmt.Fprintln(p.out)
			return media.Candidate{}, ctxErr
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return media.Candidate{}, fmt.Errorf("read choice: %w", err)
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.out)
			}
			return media.Candidate{}, ErrCancelled
		}

		index, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil:
			fmt.Fprintln(p.out, "Invalid input, must be a number")
		case index < 0 || index >= len(candidates) || !candidates[index].HasYear():
			fmt.Fprintln(p.out, "Invalid input, must be one of listed choices")
		default:
			return candidates[index], nil
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return media.Candidate{}, ErrCancelled
}

// readLine reads one line in a goroutine so a blocked terminal read does not
// hold up cancellation.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	result := p.pending
	if result == nil {
		result = make(chan readResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			result <- readResult{line: line, err: err}
		}()
	}
	select {
	case r := <-result:
		p.pending = nil
		return r.line, r.err
	case <-ctx.Done():
		p.pending = result
		return "", ctx.Err()
	}
}

func (p *Prompter) render(candidates []media.Candidate) string {
	tw := table.NewWriter()
	tw.SetStyle(p.style)
	tw.AppendHeader(table.Row{"#", "Title", "Year", "ID"})
	for i, candidate := range candidates {
		if !candidate.HasYear() {
			continue
		}
		tw.AppendRow(table.Row{i, candidate.Title, candidate.Year, candidate.ID})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
