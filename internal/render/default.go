package render

import (
	"fmt"
	"io"
	"strings"

	"git.lost.host/meutraa/notebot/internal/game"
	"git.lost.host/meutraa/notebot/internal/theme"
)

// DefaultRenderer buffers console output and writes it in one go on Flush.
type DefaultRenderer struct {
	Out   io.Writer
	Theme theme.Theme

	buffer strings.Builder
}

func New(out io.Writer, th theme.Theme) *DefaultRenderer {
	return &DefaultRenderer{Out: out, Theme: th}
}

func (r *DefaultRenderer) Line(format string, args ...interface{}) {
	fmt.Fprintf(&r.buffer, format, args...)
	r.buffer.WriteString("\n")
}

// Lane prints one lane of the color test, e.g.
// (277, 893) -> Key 's': RGB(255, 255, 255) - WHITE
func (r *DefaultRenderer) Lane(lane game.Lane, color game.Color, category game.Category) {
	r.buffer.WriteString(r.Theme.Swatch(color))
	fmt.Fprintf(&r.buffer, "%v -> Key '%s': %v - %s\n", lane.Point, lane.Key, color, r.Theme.Label(category))
}

func (r *DefaultRenderer) Flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}
