package entity

// Point is an integer grid cell. It doubles as a direction vector.
type Point struct {
	X, Y int
}

// Unit direction vectors. Y grows downwards, matching screen space.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Neg returns the antipodal vector of p
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Wrap folds p onto a width x height torus.
// Uses Euclidean modulo so the result is never negative.
func (p Point) Wrap(width, height int) Point {
	return Point{X: mod(p.X, width), Y: mod(p.Y, height)}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether (x, y) lies inside r. All four edges are inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}
