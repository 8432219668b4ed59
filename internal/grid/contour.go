package grid

// Segment is one iso-line piece in data coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Contours extracts the iso-lines of the grid at the given level with
// marching squares, interpolating crossings linearly along cell edges.
// Saddle cells take the default disambiguation; for the smooth percentage
// surfaces being contoured the difference is invisible.
func (g *Grid) Contours(level float64) []Segment {
	var segs []Segment
	for i := 0; i+1 < len(g.Y); i++ {
		for j := 0; j+1 < len(g.X); j++ {
			segs = append(segs, g.cellSegments(i, j, level)...)
		}
	}
	return segs
}

// cellSegments handles one 2x2 cell with corners
//
//	tl (i+1,j) --- tr (i+1,j+1)
//	bl (i,  j) --- br (i,  j+1)
//
// indexed into the 16 marching-squares cases by which corners sit at or above
// the level.
func (g *Grid) cellSegments(i, j int, level float64) []Segment {
	bl, br := g.Z[i][j], g.Z[i][j+1]
	tl, tr := g.Z[i+1][j], g.Z[i+1][j+1]

	var c int
	if bl >= level {
		c |= 1
	}
	if br >= level {
		c |= 2
	}
	if tr >= level {
		c |= 4
	}
	if tl >= level {
		c |= 8
	}
	if c == 0 || c == 15 {
		return nil
	}

	x0, x1 := g.X[j], g.X[j+1]
	y0, y1 := g.Y[i], g.Y[i+1]

	// Crossing points on the four edges.
	bottom := func() (float64, float64) { return lerp(x0, x1, bl, br, level), y0 }
	top := func() (float64, float64) { return lerp(x0, x1, tl, tr, level), y1 }
	left := func() (float64, float64) { return x0, lerp(y0, y1, bl, tl, level) }
	right := func() (float64, float64) { return x1, lerp(y0, y1, br, tr, level) }

	seg := func(ax, ay, bx, by float64) Segment { return Segment{X1: ax, Y1: ay, X2: bx, Y2: by} }

	switch c {
	case 1, 14:
		bx, by := bottom()
		lx, ly := left()
		return []Segment{seg(lx, ly, bx, by)}
	case 2, 13:
		bx, by := bottom()
		rx, ry := right()
		return []Segment{seg(bx, by, rx, ry)}
	case 3, 12:
		lx, ly := left()
		rx, ry := right()
		return []Segment{seg(lx, ly, rx, ry)}
	case 4, 11:
		tx, ty := top()
		rx, ry := right()
		return []Segment{seg(tx, ty, rx, ry)}
	case 6, 9:
		bx, by := bottom()
		tx, ty := top()
		return []Segment{seg(bx, by, tx, ty)}
	case 7, 8:
		lx, ly := left()
		tx, ty := top()
		return []Segment{seg(lx, ly, tx, ty)}
	case 5:
		lx, ly := left()
		bx, by := bottom()
		tx, ty := top()
		rx, ry := right()
		return []Segment{seg(lx, ly, bx, by), seg(tx, ty, rx, ry)}
	case 10:
		lx, ly := left()
		tx, ty := top()
		bx, by := bottom()
		rx, ry := right()
		return []Segment{seg(lx, ly, tx, ty), seg(bx, by, rx, ry)}
	}
	return nil
}

// lerp interpolates the coordinate where the value crosses level between two
// corners. Equal corner values collapse to the first corner, which only
// happens when both sit exactly on the level.
func lerp(p0, p1, v0, v1, level float64) float64 {
	if v1 == v0 {
		return p0
	}
	t := (level - v0) / (v1 - v0)
	return p0 + t*(p1-p0)
}
