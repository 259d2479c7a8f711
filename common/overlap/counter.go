// Package overlap counts the grid points crossed by more than one vent line.
package overlap

import (
	"bufio"
	"io"
	"strconv"

	"github.com/bytearena/ventscan/common/types/grid"
	"github.com/bytearena/ventscan/common/utils"
	bettererrors "github.com/xtuc/better-errors"
)

const service = "overlap"

type Stats struct {
	Segments int
	Skipped  int
	Points   int
}

// Counter folds segments into the set of visited points and the set of
// points visited more than once. Both sets only grow.
type Counter struct {
	visited     *grid.PointSet
	overlapping *grid.PointSet
	stats       Stats
}

func NewCounter() *Counter {
	return &Counter{
		visited:     grid.NewPointSet(),
		overlapping: grid.NewPointSet(),
	}
}

// AddSegment walks the segment and records its points. Diagonal segments are
// skipped and false is returned.
func (c *Counter) AddSegment(s grid.Segment) bool {
	c.stats.Segments++

	points, ok := s.Points()
	if !ok {
		c.stats.Skipped++
		return false
	}

	for pt, more := points.Next(); more; pt, more = points.Next() {
		if c.visited.Contains(pt) {
			c.overlapping.Add(pt)
		}

		c.visited.Add(pt)
		c.stats.Points++
	}

	return true
}

// Scan reads one segment per line and adds them in order. It stops at the
// first line that cannot be read or parsed.
func (c *Counter) Scan(r io.Reader) error {
	reader := bufio.NewReader(r)

	for lineno := 1; ; lineno++ {
		line, err := utils.ReadFullLine(reader)

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return bettererrors.
				NewFromString("Could not read input").
				With(bettererrors.NewFromErr(err)).
				SetContext("line", strconv.Itoa(lineno))
		}

		segment, err := grid.ParseSegment(line)
		if err != nil {
			return bettererrors.
				NewFromString("Could not parse vent line").
				With(bettererrors.NewFromErr(err)).
				SetContext("line", strconv.Itoa(lineno)).
				SetContext("text", line)
		}

		if !c.AddSegment(segment) {
			utils.Debug(service, "skipping diagonal segment "+segment.String())
		}
	}
}

// Overlapping lists the points crossed at least twice, row by row.
func (c *Counter) Overlapping() []grid.Point {
	return c.overlapping.Points()
}

func (c *Counter) Count() int {
	return c.overlapping.Len()
}

func (c *Counter) Visited() int {
	return c.visited.Len()
}

func (c *Counter) Stats() Stats {
	return c.stats
}
