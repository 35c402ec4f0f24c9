package geo

import "fmt"

// Walk moves p by distance units along d. A negative distance walks backwards.
func (p *Position) Walk(d Direction, distance int) {
	u := d.Unit()
	*p = p.Add(Position{u.X * distance, u.Y * distance})
}

// Step returns the position distance units from p along d, leaving p unchanged.
func (p Position) Step(d Direction, distance int) Position {
	p.Walk(d, distance)
	return p
}

// Add returns the component-wise sum p+q.
func (p Position) Add(q Position) Position {
	return Position{p.X + q.X, p.Y + q.Y}
}

// ManhattanDistance returns |X| + |Y|, the taxicab distance from the origin.
func (p Position) ManhattanDistance() int {
	return abs(p.X) + abs(p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
