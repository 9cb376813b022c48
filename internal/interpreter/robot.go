package interpreter

import "fmt"

// Position is a cell on the integer grid. It is comparable and used as a map key.
type Position struct {
	X, Y int
}

// Origin is where every walk starts.
var Origin = Position{}

func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Distance returns the taxicab distance from the origin.
func (p Position) Distance() int {
	return abs(p.X) + abs(p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Walk moves the given number of cells along h. It returns the new position
// and every cell crossed in order, excluding from and including the last cell.
func Walk(from Position, h Heading, steps int) (Position, []Position, error) {
	if steps < 0 {
		return from, nil, fmt.Errorf("%w: %d", ErrInvalidStepCount, steps)
	}
	d, err := h.Delta()
	if err != nil {
		return from, nil, err
	}
	path := make([]Position, 0, steps)
	cur := from
	for i := 0; i < steps; i++ {
		cur = cur.Add(d)
		path = append(path, cur)
	}
	return cur, path, nil
}

// Robot represents the walk state: where the robot is and which way it faces.
type Robot struct {
	Heading Heading
	Pos     Position
}

func NewRobot() *Robot {
	return &Robot{Heading: North, Pos: Origin}
}

// Follow turns the robot, then walks it forward. The crossed cells are returned.
func (r *Robot) Follow(in Instruction) ([]Position, error) {
	h := r.Heading.Turn(in.Turn)
	pos, path, err := Walk(r.Pos, h, in.Steps)
	if err != nil {
		return nil, err
	}
	r.Heading, r.Pos = h, pos
	return path, nil
}

func (r *Robot) String() string {
	return fmt.Sprintf("(%s) facing %s", r.Pos, r.Heading)
}
