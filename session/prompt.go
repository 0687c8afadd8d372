package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

var (
	// ErrNotNumber is returned when the first token is not an integer
	ErrNotNumber = errors.New("not a number")
	// ErrOutOfRange is returned when the integer lies outside the accepted range
	ErrOutOfRange = errors.New("out of range")
)

// ParseInRange parses the first whitespace-separated token of text as an integer in [lo, hi]
// The whole token must be numeric; anything after it on the line is ignored
func ParseInRange(text string, lo, hi int) (int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, ErrNotNumber
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%q: %w", fields[0], ErrNotNumber)
	}
	if v < lo || v > hi {
		return v, fmt.Errorf("%d not in [%d, %d]: %w", v, lo, hi, ErrOutOfRange)
	}
	return v, nil
}

// Prompter drives line-buffered prompts on a reader/writer pair
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// onInvalid runs after each rejected entry
	onInvalid func(error)
}

// NewPrompter wraps in for line reads
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Prompter{in: br, out: out}
}

// OnInvalid registers a callback for rejected entries
func (p *Prompter) OnInvalid(fn func(error)) { p.onInvalid = fn }

// ReadInRange prompts until a line yields an integer in [lo, hi]
// Each attempt consumes one full line so malformed input never lingers in the stream
// Returns an error only when input ends
func (p *Prompter) ReadInRange(prompt string, lo, hi int) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)

		line, readErr := p.in.ReadString('\n')
		if line == "" && readErr != nil {
			return 0, readErr
		}

		v, err := ParseInRange(line, lo, hi)
		if err == nil {
			return v, nil
		}

		log.Printf("prompt: rejected entry: %v", err)
		if p.onInvalid != nil {
			p.onInvalid(err)
		}
		if readErr != nil {
			return 0, readErr
		}
	}
}

// WaitKey blocks for one keypress; in line-buffered mode the rest of the line is discarded
func (p *Prompter) WaitKey() error {
	r, _, err := p.in.ReadRune()
	if err != nil {
		return err
	}
	if r == '\n' {
		return nil
	}
	_, err = p.in.ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}
