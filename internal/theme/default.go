package theme

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/notebot/internal/game"
)

// DefaultTheme colors output with 24 bit ANSI escapes. Plain disables
// escapes for pipes and dumb terminals.
type DefaultTheme struct {
	Plain bool
}

const swatchSym = "██"

var labelColors = map[game.Category]game.Color{
	game.White:  {R: 255, G: 255, B: 255},
	game.Yellow: {R: 236, G: 195, B: 0},
	game.Other:  {R: 236, G: 30, B: 0},
}

func (t *DefaultTheme) Label(c game.Category) string {
	label := strings.ToUpper(c.String())
	if t.Plain {
		return label
	}
	return paint(labelColors[c], label)
}

func (t *DefaultTheme) Swatch(c game.Color) string {
	if t.Plain {
		return ""
	}
	return paint(c, swatchSym) + " "
}

func paint(c game.Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}
