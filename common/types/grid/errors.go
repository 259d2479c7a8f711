package grid

import "fmt"

type Kind int

const (
	KindPoint Kind = iota
	KindSegment
)

func (k Kind) String() string {
	if k == KindSegment {
		return "segment"
	}

	return "point"
}

// ParseError reports the raw text that could not be read as a point or a
// segment.
type ParseError struct {
	Kind Kind
	Text string
	Err  error
}

func newParseError(kind Kind, text string, err error) *ParseError {
	return &ParseError{
		Kind: kind,
		Text: text,
		Err:  err,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s %q: %v", e.Kind, e.Text, e.Err)
}

// Cause returns the underlying failure, for github.com/pkg/errors.
func (e *ParseError) Cause() error { return e.Err }

func (e *ParseError) Unwrap() error { return e.Err }
