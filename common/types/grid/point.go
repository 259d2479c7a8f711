package grid

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const pointSeparator = ","

// Point is a position on the vent grid.
type Point struct {
	X, Y uint32
}

func MakePoint(x, y uint32) Point {
	return Point{x, y}
}

// Ordering is the result of comparing two points.
type Ordering int

const (
	Incomparable Ordering = iota
	Less
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Compare orders two points when both axes agree, or when one axis is equal.
// Points that are ordered one way on X and the other way on Y are
// Incomparable.
func Compare(a, b Point) Ordering {
	ordX := compareAxis(a.X, b.X)
	ordY := compareAxis(a.Y, b.Y)

	switch {
	case ordX == ordY:
		return ordX
	case ordY == Equal:
		return ordX
	case ordX == Equal:
		return ordY
	}

	return Incomparable
}

func compareAxis(a, b uint32) Ordering {
	if a < b {
		return Less
	}

	if a > b {
		return Greater
	}

	return Equal
}

func (p Point) String() string {
	return strconv.FormatUint(uint64(p.X), 10) + pointSeparator + strconv.FormatUint(uint64(p.Y), 10)
}

// ParsePoint reads a point from its "x,y" form.
func ParsePoint(token string) (Point, error) {
	idx := strings.Index(token, pointSeparator)
	if idx < 0 {
		return Point{}, newParseError(KindPoint, token, errors.New("missing \""+pointSeparator+"\" separator"))
	}

	x, err := parseCoord(token[:idx])
	if err != nil {
		return Point{}, newParseError(KindPoint, token, errors.Wrapf(err, "invalid x coordinate %q", token[:idx]))
	}

	y, err := parseCoord(token[idx+len(pointSeparator):])
	if err != nil {
		return Point{}, newParseError(KindPoint, token, errors.Wrapf(err, "invalid y coordinate %q", token[idx+len(pointSeparator):]))
	}

	return MakePoint(x, y), nil
}

// parseCoord accepts one leading '+'.
func parseCoord(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint32(n), nil
}
