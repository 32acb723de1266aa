package input

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultDwell = 10 * time.Millisecond

// Chord presses several keys at the same instant: every key down, a short
// dwell so the game registers them, every key up.
type Chord struct {
	Keyboard Keyboard
	Fallback Tapper
	Dwell    time.Duration
	Log      logrus.FieldLogger

	sleep func(time.Duration)
}

func NewChord(kb Keyboard, fallback Tapper, dwell time.Duration, log logrus.FieldLogger) *Chord {
	return &Chord{
		Keyboard: kb,
		Fallback: fallback,
		Dwell:    dwell,
		Log:      log,
		sleep:    time.Sleep,
	}
}

// Press sends keys as one chord. If the keyboard fails part way, the keys
// it managed to push down are released and every key is tapped in turn
// through the fallback instead.
func (c *Chord) Press(keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	stuck, err := c.press(keys)
	if err == nil {
		return nil
	}

	c.Log.WithError(err).WithField("keys", keys).Warn("keyboard method failed, using sequential fallback")
	for _, k := range stuck {
		if err := c.Keyboard.Up(k); err != nil {
			c.Log.WithError(err).WithField("key", k).Debug("unable to release key")
		}
	}
	for _, k := range keys {
		if err := c.Fallback.Tap(k); err != nil {
			return fmt.Errorf("unable to tap %q: %w", k, err)
		}
	}
	return nil
}

// press returns the keys that may still be down when it fails.
func (c *Chord) press(keys []string) ([]string, error) {
	down := make([]string, 0, len(keys))
	for _, k := range keys {
		if err := c.Keyboard.Down(k); err != nil {
			return down, fmt.Errorf("key down %q: %w", k, err)
		}
		down = append(down, k)
	}

	if c.sleep != nil {
		c.sleep(c.Dwell)
	} else {
		time.Sleep(c.Dwell)
	}

	for i, k := range keys {
		if err := c.Keyboard.Up(k); err != nil {
			return down[i:], fmt.Errorf("key up %q: %w", k, err)
		}
	}
	return nil, nil
}
