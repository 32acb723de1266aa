package classifier

import "git.lost.host/meutraa/notebot/internal/game"

type Classifier interface {
	Classify(c game.Color) game.Category
}
