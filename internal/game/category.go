package game

// Category is what a sampled color means for the lane it was read from.
type Category uint8

const (
	Other Category = iota
	White
	Yellow // hold note
)

func (c Category) String() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	}
	return "other"
}
