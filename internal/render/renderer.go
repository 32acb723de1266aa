package render

import "git.lost.host/meutraa/notebot/internal/game"

type Renderer interface {
	Line(format string, args ...interface{})
	Lane(lane game.Lane, color game.Color, category game.Category)
	Flush() error
}
