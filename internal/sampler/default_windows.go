//go:build windows

package sampler

import (
	"fmt"

	"golang.org/x/sys/windows"

	"git.lost.host/meutraa/notebot/internal/game"
)

const clrInvalid = 0xFFFFFFFF

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	gdi32         = windows.NewLazySystemDLL("gdi32.dll")
	procGetDC     = user32.NewProc("GetDC")
	procReleaseDC = user32.NewProc("ReleaseDC")
	procGetPixel  = gdi32.NewProc("GetPixel")
)

// DefaultSampler reads the screen device context with GetPixel, which is
// far cheaper than a screenshot for a handful of points.
type DefaultSampler struct{}

func New() *DefaultSampler {
	return &DefaultSampler{}
}

func (s *DefaultSampler) Sample(points []game.Point) (map[game.Point]game.Color, error) {
	colors := make(map[game.Point]game.Color, len(points))
	if len(points) == 0 {
		return colors, nil
	}

	// One device context for the whole batch
	hdc, _, err := procGetDC.Call(0)
	if hdc == 0 {
		return nil, fmt.Errorf("unable to get screen device context: %w", err)
	}
	defer procReleaseDC.Call(0, hdc)

	for _, p := range points {
		ret, _, _ := procGetPixel.Call(hdc, uintptr(p.X), uintptr(p.Y))
		if uint32(ret) == clrInvalid {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPixel, p)
		}
		colors[p] = fromCOLORREF(uint32(ret))
	}
	return colors, nil
}
