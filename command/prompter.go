package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/koch"
)

// ScriptedPrompter answers every prompt from fixed values. It is used for
// batch runs and tests.
type ScriptedPrompter struct {
	Points []koch.Point
	Depth  int
	Radius float64

	// Abort makes the prompt with this text fail with koch.ErrAborted.
	Abort string

	// Asked lists the prompts in the order they were shown.
	Asked []string
}

func (s *ScriptedPrompter) ask(prompt string) error {
	s.Asked = append(s.Asked, prompt)
	if s.Abort == prompt {
		return koch.ErrAborted
	}
	return nil
}

// SelectPoints returns s.Points.
func (s *ScriptedPrompter) SelectPoints(ctx context.Context, prompt string) ([]koch.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ask(prompt); err != nil {
		return nil, err
	}
	return s.Points, nil
}

// GetInteger returns s.Depth without range checks.
func (s *ScriptedPrompter) GetInteger(ctx context.Context, prompt string, _, _, _ int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ask(prompt); err != nil {
		return 0, err
	}
	return s.Depth, nil
}

// GetNumber returns s.Radius.
func (s *ScriptedPrompter) GetNumber(ctx context.Context, prompt string, _ float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ask(prompt); err != nil {
		return 0, err
	}
	return s.Radius, nil
}

// abortInput is the answer that cancels a prompt.
const abortInput = "!"

// LinePrompter asks questions on a text stream, one answer per line.
//
// An empty answer accepts the offered default, "!" or end of input
// cancels, and an invalid answer repeats the question.
type LinePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLinePrompter reads answers from r and writes prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewScanner(r), out: w}
}

// SelectPoints reads points as "x,y[,z]" separated by ';' or spaces. An
// empty answer selects nothing.
func (p *LinePrompter) SelectPoints(ctx context.Context, prompt string) ([]koch.Point, error) {
	for {
		line, err := p.readLine(ctx, prompt+" (x,y[,z]; ...)")
		if err != nil {
			return nil, err
		}
		pts, err := ParsePoints(line)
		if err == nil {
			return pts, nil
		}
		fmt.Fprintf(p.out, "%v\n", err)
	}
}

// GetInteger reads an integer within [lo, hi].
func (p *LinePrompter) GetInteger(ctx context.Context, prompt string, def, lo, hi int) (int, error) {
	for {
		line, err := p.readLine(ctx, fmt.Sprintf("%s <%d> [%d..%d]", prompt, def, lo, hi))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.Atoi(line)
		switch {
		case err != nil:
			fmt.Fprintf(p.out, "not an integer: %q\n", line)
		case v < lo || v > hi:
			fmt.Fprintf(p.out, "must be between %d and %d\n", lo, hi)
		default:
			return v, nil
		}
	}
}

// GetNumber reads a real number.
func (p *LinePrompter) GetNumber(ctx context.Context, prompt string, def float64) (float64, error) {
	for {
		line, err := p.readLine(ctx, fmt.Sprintf("%s <%g>", prompt, def))
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "not a number: %q\n", line)
	}
}

func (p *LinePrompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", koch.ErrAborted, err)
		}
		return "", koch.ErrAborted
	}
	line := strings.TrimSpace(p.in.Text())
	if line == abortInput {
		return "", koch.ErrAborted
	}
	return line, nil
}

// ParsePoints parses a list of "x,y" or "x,y,z" points separated by ';'
// or whitespace. An empty string yields no points.
func ParsePoints(s string) ([]koch.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || unicode.IsSpace(r)
	})

	pts := make([]koch.Point, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid point %q: want x,y or x,y,z", f)
		}
		var xyz [3]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid point %q: %w", f, err)
			}
			xyz[i] = v
		}
		pts = append(pts, koch.Pt3(xyz[0], xyz[1], xyz[2]))
	}
	return pts, nil
}
