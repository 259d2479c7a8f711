package grid

import (
	"strings"

	"github.com/pkg/errors"
)

const segmentSeparator = " -> "

// Orientation tells which axis a segment walks along.
//
// The names are those used by the vent survey format: a segment whose
// endpoints share the same X is Horizontal and is walked along Y, a segment
// whose endpoints share the same Y is Vertical and is walked along X.
type Orientation int

const (
	Diagonal Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "diagonal"
	}
}

// Segment is a line between two grid points, with start <= end whenever the
// two endpoints are comparable.
type Segment struct {
	start Point
	end   Point
}

// NewSegment keeps the endpoints in the given order only when p0 < p1, and
// swaps them otherwise.
func NewSegment(p0, p1 Point) Segment {
	if Compare(p0, p1) == Less {
		return Segment{start: p0, end: p1}
	}

	return Segment{start: p1, end: p0}
}

func (s Segment) Start() Point {
	return s.start
}

func (s Segment) End() Point {
	return s.end
}

func (s Segment) Orientation() Orientation {
	if s.start.X == s.end.X {
		return Horizontal
	}

	if s.start.Y == s.end.Y {
		return Vertical
	}

	return Diagonal
}

func (s Segment) String() string {
	return s.start.String() + segmentSeparator + s.end.String()
}

// Points returns the walk over every grid point of the segment, or false if
// the segment is diagonal.
func (s Segment) Points() (*DiscreteSegment, bool) {
	if s.Orientation() == Diagonal {
		return nil, false
	}

	return newDiscreteSegment(s), true
}

// ParseSegment reads a segment from its "x0,y0 -> x1,y1" form.
func ParseSegment(line string) (Segment, error) {
	idx := strings.Index(line, segmentSeparator)
	if idx < 0 {
		return Segment{}, newParseError(KindSegment, line, errors.New("missing \""+segmentSeparator+"\" separator"))
	}

	p0, err := ParsePoint(line[:idx])
	if err != nil {
		return Segment{}, newParseError(KindSegment, line, err)
	}

	p1, err := ParsePoint(line[idx+len(segmentSeparator):])
	if err != nil {
		return Segment{}, newParseError(KindSegment, line, err)
	}

	return NewSegment(p0, p1), nil
}
