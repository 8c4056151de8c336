package ui

// Point is a pixel position, Y growing downward.
type Point struct{ X, Y int }

// Size is a pixel extent. Negative extents are not rejected but break hit testing.
type Size struct{ W, H int }

func Pt(x, y int) Point { return Point{X: x, Y: y} }
func Sz(w, h int) Size  { return Size{W: w, H: h} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// IsInside reports whether p lies strictly inside the rectangle spanning
// topLeft to topLeft+size. Points on any edge are outside.
func IsInside(topLeft Point, size Size, p Point) bool {
	return p.X > topLeft.X && p.X < topLeft.X+size.W &&
		p.Y > topLeft.Y && p.Y < topLeft.Y+size.H
}
