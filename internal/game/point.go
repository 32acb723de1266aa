package game

import "fmt"

// Point is a screen coordinate in desktop pixels.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
