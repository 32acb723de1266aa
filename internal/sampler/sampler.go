// Package sampler reads pixel colors straight off the display.
package sampler

import (
	"errors"
	"image"

	"git.lost.host/meutraa/notebot/internal/game"
)

var ErrInvalidPixel = errors.New("pixel is outside the display")

type Sampler interface {
	// Sample reads the current color at every point. The result has one
	// entry per distinct point.
	Sample(points []game.Point) (map[game.Point]game.Color, error)
}

// bounds is the smallest rectangle containing every point.
func bounds(points []game.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	r := image.Rect(points[0].X, points[0].Y, points[0].X+1, points[0].Y+1)
	for _, p := range points[1:] {
		r = r.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
	return r
}

// colorAt reads p out of img, which was captured from the screen area rect.
func colorAt(img *image.RGBA, rect image.Rectangle, p game.Point) (game.Color, error) {
	x := p.X - rect.Min.X + img.Rect.Min.X
	y := p.Y - rect.Min.Y + img.Rect.Min.Y
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return game.Color{}, ErrInvalidPixel
	}
	i := img.PixOffset(x, y)
	return game.Color{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}, nil
}

// fromCOLORREF unpacks a GDI 0x00bbggrr value.
func fromCOLORREF(v uint32) game.Color {
	return game.Color{
		R: uint8(v & 0xff),
		G: uint8((v >> 8) & 0xff),
		B: uint8((v >> 16) & 0xff),
	}
}
