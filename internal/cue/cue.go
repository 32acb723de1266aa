// Package cue plays the countdown sounds.
package cue

// Cue marks the seconds of a countdown and its end.
type Cue interface {
	Tick()
	// Go blocks until the final sound has finished.
	Go()
}

type Silent struct{}

func (Silent) Tick() {}
func (Silent) Go()   {}
