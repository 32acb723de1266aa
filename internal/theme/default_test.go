package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lost.host/meutraa/notebot/internal/game"
)

func TestPlain(t *testing.T) {
	th := &DefaultTheme{Plain: true}
	assert.Equal(t, "YELLOW", th.Label(game.Yellow))
	assert.Equal(t, "OTHER", th.Label(game.Other))
	assert.Empty(t, th.Swatch(game.Color{R: 1, G: 2, B: 3}))
}

func TestColored(t *testing.T) {
	th := &DefaultTheme{}
	assert.Equal(t, "\033[38;2;255;255;255mWHITE\033[0m", th.Label(game.White))
	assert.Equal(t, "\033[38;2;1;2;3m██\033[0m ", th.Swatch(game.Color{R: 1, G: 2, B: 3}))
}
