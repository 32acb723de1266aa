package classifier

import "git.lost.host/meutraa/notebot/internal/game"

const (
	DefaultWhiteTolerance  = 10
	DefaultYellowTolerance = 50

	yellowFloor   = 200 // minimum red and green of a solid yellow
	yellowCeiling = 100 // maximum blue of a solid yellow
)

// DefaultClassifier separates white background, yellow hold notes and
// every other note color. The yellow tolerance is wide so that holds keep
// classifying as yellow while they fade.
type DefaultClassifier struct {
	WhiteTolerance  int
	YellowTolerance int
}

func New() *DefaultClassifier {
	return &DefaultClassifier{
		WhiteTolerance:  DefaultWhiteTolerance,
		YellowTolerance: DefaultYellowTolerance,
	}
}

func (d *DefaultClassifier) Classify(c game.Color) game.Category {
	if d.isWhite(c) {
		return game.White
	}
	if d.isYellow(c) {
		return game.Yellow
	}
	return game.Other
}

func (d *DefaultClassifier) isWhite(c game.Color) bool {
	floor := 255 - d.WhiteTolerance
	return int(c.R) >= floor && int(c.G) >= floor && int(c.B) >= floor
}

func (d *DefaultClassifier) isYellow(c game.Color) bool {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return r >= yellowFloor-d.YellowTolerance &&
		g >= yellowFloor-d.YellowTolerance &&
		b <= yellowCeiling+d.YellowTolerance &&
		r > b && g > b
}
