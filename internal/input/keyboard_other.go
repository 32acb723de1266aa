//go:build !windows

package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

type DefaultKeyboard struct{}

func NewKeyboard() *DefaultKeyboard {
	return &DefaultKeyboard{}
}

func (k *DefaultKeyboard) Down(key string) error {
	return k.toggle(key, "down")
}

func (k *DefaultKeyboard) Up(key string) error {
	return k.toggle(key, "up")
}

func (k *DefaultKeyboard) toggle(key, dir string) error {
	if _, err := VirtualKey(key); err != nil {
		return err
	}
	if err := robotgo.KeyToggle(key, dir); err != nil {
		return fmt.Errorf("robotgo toggle %s: %w", dir, err)
	}
	return nil
}
