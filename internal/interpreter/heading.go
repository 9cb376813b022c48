package interpreter

import "fmt"

// Heading is the absolute compass direction the robot faces, ordered clockwise.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Turn is a relative rotation taken from an instruction.
type Turn int

const (
	Left  Turn = -1
	Right Turn = 1
)

// unit vectors indexed by heading
var deltas = [...]Position{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

// Turn returns the heading after rotating by t, wrapping at both ends.
func (h Heading) Turn(t Turn) Heading {
	n := Heading(len(deltas))
	return ((h+Heading(t))%n + n) % n
}

func (h Heading) Valid() bool {
	return h >= North && h <= West
}

// Delta returns the one-cell move for the heading.
func (h Heading) Delta() (Position, error) {
	if !h.Valid() {
		return Position{}, fmt.Errorf("%w: %d", ErrInvalidHeading, int(h))
	}
	return deltas[h], nil
}

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

func (t Turn) String() string {
	switch t {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}
