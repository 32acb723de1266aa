package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// RobotTapper taps keys through robotgo. It is slower than Keyboard and
// cannot overlap keys, but it does not depend on raw key codes.
type RobotTapper struct{}

func (RobotTapper) Tap(key string) error {
	if err := robotgo.KeyTap(key); err != nil {
		return fmt.Errorf("robotgo: %w", err)
	}
	return nil
}
