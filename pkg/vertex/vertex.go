package vertex

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Point is one 2D vertex. Its index in the Sequence is its identity;
// indices are never stored, only derived from parse order.
type Point struct {
	X, Y float64
}

// Sequence is an ordered list of vertices parsed from one input.
// It implements plotter.XYer so it can be handed to gonum/plot directly.
type Sequence []Point

func (s Sequence) Len() int                { return len(s) }
func (s Sequence) XY(i int) (x, y float64) { return s[i].X, s[i].Y }

// ParseError reports a malformed input: either a token that is not a
// number, or a trailing number with no partner to pair with.
type ParseError struct {
	Token string // offending token, "" for a shape error
	Index int    // token position, 0-based
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("token %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a flat list of comma-separated floats and pairs them up.
// Whitespace and newlines around tokens are permitted. Empty input is a
// valid empty Sequence; an odd number count is an error.
func Parse(r io.Reader) (Sequence, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	tokens := strings.Fields(strings.ReplaceAll(string(raw), ",", " "))

	values := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ParseError{Token: tok, Index: i, Err: err}
		}
		values = append(values, v)
	}

	if len(values)%2 != 0 {
		return nil, &ParseError{
			Index: len(values) - 1,
			Err:   fmt.Errorf("odd number of values (%d), trailing value has no pair", len(values)),
		}
	}

	seq := make(Sequence, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		seq = append(seq, Point{X: values[i], Y: values[i+1]})
	}

	return seq, nil
}

// ParseString is Parse over a string, mostly for tests.
func ParseString(s string) (Sequence, error) {
	return Parse(strings.NewReader(s))
}

// Load parses the file at path. Open errors are returned as-is.
func Load(path string) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
