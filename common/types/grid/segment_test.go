package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSegment(t *testing.T) {
	segment, err := ParseSegment("6,4 -> 2,0")
	require.NoError(t, err)

	assert.Equal(t, MakePoint(2, 0), segment.Start())
	assert.Equal(t, MakePoint(6, 4), segment.End())
	assert.Equal(t, Diagonal, segment.Orientation())
	assert.Equal(t, "2,0 -> 6,4", segment.String())
}

func TestParseSinglePointSegment(t *testing.T) {
	segment, err := ParseSegment("2,1 -> 2,1")
	require.NoError(t, err)

	assert.Equal(t, MakePoint(2, 1), segment.Start())
	assert.Equal(t, MakePoint(2, 1), segment.End())
	assert.Equal(t, Horizontal, segment.Orientation())
}

func TestParseSegmentIsOrderIndependent(t *testing.T) {
	for _, pair := range [][2]string{
		{"0,9", "5,9"},
		{"9,4", "3,4"},
		{"2,2", "2,1"},
		{"7,0", "7,4"},
		{"6,4", "2,0"},
		{"0,0", "8,8"},
		{"3,3", "3,3"},
	} {
		forward, err := ParseSegment(pair[0] + " -> " + pair[1])
		require.NoError(t, err)

		backward, err := ParseSegment(pair[1] + " -> " + pair[0])
		require.NoError(t, err)

		assert.Equal(t, forward, backward, pair[0]+" / "+pair[1])
		assert.NotEqual(t, Greater, Compare(forward.Start(), forward.End()))
	}
}

func TestSegmentOrientation(t *testing.T) {
	examples := []struct {
		Line string
		Want Orientation
	}{
		{"2,2 -> 2,1", Horizontal},
		{"7,0 -> 7,4", Horizontal},
		{"0,9 -> 5,9", Vertical},
		{"9,4 -> 3,4", Vertical},
		{"8,0 -> 0,8", Diagonal},
		{"5,5 -> 8,2", Diagonal},
	}

	for _, example := range examples {
		segment, err := ParseSegment(example.Line)
		require.NoError(t, err)
		assert.Equal(t, example.Want, segment.Orientation(), example.Line)
	}
}

func TestParseSegmentErrors(t *testing.T) {
	examples := []struct {
		Line        string
		NestedPoint bool
	}{
		{"", false},
		{"1,1 1,2", false},
		{"1,1->1,2", false},
		{"1,1  ->  1,2", true},
		{"a,1 -> 2,2", true},
		{"1,1 -> 2", true},
		{"1,1 -> 2,2 -> 3,3", true},
	}

	for _, example := range examples {
		_, err := ParseSegment(example.Line)
		require.Error(t, err, example.Line)

		perr, ok := err.(*ParseError)
		require.True(t, ok, example.Line)
		assert.Equal(t, KindSegment, perr.Kind)
		assert.Equal(t, example.Line, perr.Text)
		assert.Contains(t, perr.Error(), example.Line)

		nested, isPointErr := perr.Cause().(*ParseError)
		assert.Equal(t, example.NestedPoint, isPointErr, example.Line)
		if isPointErr {
			assert.Equal(t, KindPoint, nested.Kind)
		}
	}
}

func TestDiagonalSegmentHasNoPoints(t *testing.T) {
	segment, err := ParseSegment("8,0 -> 0,8")
	require.NoError(t, err)

	points, ok := segment.Points()
	assert.False(t, ok)
	assert.Nil(t, points)
}
