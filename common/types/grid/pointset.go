package grid

import "sort"

// PointSet is an unordered set of grid points.
type PointSet struct {
	points map[Point]struct{}
}

func NewPointSet(points ...Point) *PointSet {
	set := &PointSet{
		points: make(map[Point]struct{}, len(points)),
	}

	for _, pt := range points {
		set.Add(pt)
	}

	return set
}

func (set *PointSet) Add(pt Point) {
	set.points[pt] = struct{}{}
}

func (set *PointSet) Contains(pt Point) bool {
	_, present := set.points[pt]
	return present
}

func (set *PointSet) Len() int {
	return len(set.points)
}

// Points lists the set row by row (Y, then X).
func (set *PointSet) Points() []Point {
	res := make([]Point, 0, len(set.points))
	for pt := range set.points {
		res = append(res, pt)
	}

	sort.Sort(byRow(res))

	return res
}

type byRow []Point

func (coll byRow) Len() int      { return len(coll) }
func (coll byRow) Swap(i, j int) { coll[i], coll[j] = coll[j], coll[i] }
func (coll byRow) Less(i, j int) bool {
	if coll[i].Y != coll[j].Y {
		return coll[i].Y < coll[j].Y
	}

	return coll[i].X < coll[j].X
}
