package grid

import (
	"github.com/bytearena/ventscan/common/assert"
)

// DiscreteSegment walks the grid points of an axis-aligned segment, from
// start to end inclusive. It is single pass.
type DiscreteSegment struct {
	current Point
	end     Point
	axis    Orientation
	done    bool
}

func newDiscreteSegment(s Segment) *DiscreteSegment {
	axis := s.Orientation()
	assert.Assert(axis != Diagonal, "cannot walk diagonal segment "+s.String())

	return &DiscreteSegment{
		current: s.start,
		end:     s.end,
		axis:    axis,
	}
}

// Next returns the next point of the walk, or false once the end point has
// been returned.
func (d *DiscreteSegment) Next() (Point, bool) {
	if d.done {
		return Point{}, false
	}

	pt := d.current
	if d.current == d.end {
		d.done = true
		return pt, true
	}

	switch d.axis {
	case Horizontal:
		d.current.Y++
	case Vertical:
		d.current.X++
	}

	return pt, true
}

// Remaining counts the points not yet returned by Next.
func (d *DiscreteSegment) Remaining() int {
	if d.done {
		return 0
	}

	var n uint32
	switch d.axis {
	case Horizontal:
		n = d.end.Y - d.current.Y
	case Vertical:
		n = d.end.X - d.current.X
	}

	return int(n) + 1
}
