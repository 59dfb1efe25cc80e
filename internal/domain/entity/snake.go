package entity

// Snake is the player's body and heading.
//
// Body[0] is the tail and Body[len(Body)-1] is the head. Direction is always
// a non-zero vector; in normal play it is one of Up, Down, Left or Right.
type Snake struct {
	Body      []Point
	Direction Point
}

// NewSnake creates the three-cell starting snake in the top-left column, heading down.
func NewSnake() *Snake {
	return &Snake{
		Body:      []Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
		Direction: Down,
	}
}

// Head returns the most recently added cell
func (s *Snake) Head() Point {
	return s.Body[len(s.Body)-1]
}

// Len returns the number of body cells, counting a pending growth duplicate
func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is occupied by any body cell
func (s *Snake) Contains(p Point) bool {
	for _, c := range s.Body {
		if c == p {
			return true
		}
	}
	return false
}

// MoveForward advances the head one cell on a width x height torus.
//
// The collision test runs against the body before the tail is removed, so moving
// into the cell the tail is about to leave counts as a collision. On collision the
// body is left untouched and false is returned.
func (s *Snake) MoveForward(width, height int) bool {
	next := s.Head().Add(s.Direction).Wrap(width, height)
	if s.Contains(next) {
		return false
	}

	s.Body = append(s.Body, next)
	s.Body = s.Body[1:]
	return true
}

// ChangeDirection sets a new heading unless it is the exact reverse of the current one.
func (s *Snake) ChangeDirection(dir Point) {
	if dir == s.Direction.Neg() {
		return
	}
	s.Direction = dir
}

// Grow duplicates the tail cell. The next MoveForward drops the duplicate as the
// old tail, so the net gain of one cell is permanent.
func (s *Snake) Grow() {
	body := make([]Point, 0, len(s.Body)+1)
	body = append(body, s.Body[0])
	s.Body = append(body, s.Body...)
}
