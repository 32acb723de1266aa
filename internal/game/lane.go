package game

type Lane struct {
	Point Point
	Key   string // key identifier, e.g. "s"
}

// DefaultLanes are the five note columns of a 1920x1080 playfield.
var DefaultLanes = []Lane{
	{Point: Point{X: 277, Y: 893}, Key: "s"},
	{Point: Point{X: 622, Y: 893}, Key: "d"},
	{Point: Point{X: 959, Y: 893}, Key: "f"},
	{Point: Point{X: 1304, Y: 893}, Key: "k"},
	{Point: Point{X: 1647, Y: 893}, Key: "l"},
}

// Points returns the coordinate of every lane, in lane order.
func Points(lanes []Lane) []Point {
	ps := make([]Point, len(lanes))
	for i, l := range lanes {
		ps[i] = l.Point
	}
	return ps
}
