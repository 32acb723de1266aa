// Package input injects key events into the operating system's input queue.
package input

import "errors"

var ErrUnknownKey = errors.New("unknown key")

// Keyboard drives individual key transitions. It is the low level path
// used for holds and for chords.
type Keyboard interface {
	Down(key string) error
	Up(key string) error
}

// Tapper presses and releases one key in a single call.
type Tapper interface {
	Tap(key string) error
}
