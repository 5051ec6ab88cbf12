package gui

// Point is a position in display pixels.
type Point struct {
	X, Y int16
}

// Area is a rectangle with inclusive corners.
type Area struct {
	X1, Y1, X2, Y2 int16
}

func (a Area) Width() int16  { return a.X2 - a.X1 + 1 }
func (a Area) Height() int16 { return a.Y2 - a.Y1 + 1 }
func (a Area) Size() int     { return int(a.Width()) * int(a.Height()) }
func (a Area) Empty() bool   { return a.X2 < a.X1 || a.Y2 < a.Y1 }

func (a Area) Contains(p Point) bool {
	return p.X >= a.X1 && p.X <= a.X2 && p.Y >= a.Y1 && p.Y <= a.Y2
}

// Covers reports whether b lies entirely inside a.
func (a Area) Covers(b Area) bool {
	return b.X1 >= a.X1 && b.Y1 >= a.Y1 && b.X2 <= a.X2 && b.Y2 <= a.Y2
}

// Intersect returns the common part of a and b and whether it is non-empty.
func (a Area) Intersect(b Area) (Area, bool) {
	r := Area{
		X1: max16(a.X1, b.X1),
		Y1: max16(a.Y1, b.Y1),
		X2: min16(a.X2, b.X2),
		Y2: min16(a.Y2, b.Y2),
	}
	return r, !r.Empty()
}

// Union returns the bounding box of a and b.
func (a Area) Union(b Area) Area {
	return Area{
		X1: min16(a.X1, b.X1),
		Y1: min16(a.Y1, b.Y1),
		X2: max16(a.X2, b.X2),
		Y2: max16(a.Y2, b.Y2),
	}
}

func (a Area) Move(dx, dy int16) Area {
	return Area{X1: a.X1 + dx, Y1: a.Y1 + dy, X2: a.X2 + dx, Y2: a.Y2 + dy}
}

func (a Area) Inset(d int16) Area {
	return Area{X1: a.X1 + d, Y1: a.Y1 + d, X2: a.X2 - d, Y2: a.Y2 - d}
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}

func max16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp16(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
