//go:build !windows

package sampler

import (
	"fmt"

	"github.com/kbinani/screenshot"

	"git.lost.host/meutraa/notebot/internal/game"
)

// DefaultSampler captures the bounding box of all points in a single grab
// and reads the points out of it.
type DefaultSampler struct{}

func New() *DefaultSampler {
	return &DefaultSampler{}
}

func (s *DefaultSampler) Sample(points []game.Point) (map[game.Point]game.Color, error) {
	colors := make(map[game.Point]game.Color, len(points))
	if len(points) == 0 {
		return colors, nil
	}

	rect := bounds(points)
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return nil, fmt.Errorf("unable to capture %v: %w", rect, err)
	}

	for _, p := range points {
		c, err := colorAt(img, rect, p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", err, p)
		}
		colors[p] = c
	}
	return colors, nil
}
