package theme

import "git.lost.host/meutraa/notebot/internal/game"

type Theme interface {
	// Label names a category for the console.
	Label(c game.Category) string
	// Swatch shows a sampled color.
	Swatch(c game.Color) string
}
