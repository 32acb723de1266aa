//go:build windows

package input

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	inputKeyboard  = 1
	keyEventFKeyUp = 0x0002
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

type keybdInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// keyboardInput mirrors INPUT; the padding covers the larger MOUSEINPUT
// member of the union.
type keyboardInput struct {
	typ     uint32
	ki      keybdInput
	padding uint64
}

// DefaultKeyboard sends virtual key events with SendInput.
type DefaultKeyboard struct{}

func NewKeyboard() *DefaultKeyboard {
	return &DefaultKeyboard{}
}

func (k *DefaultKeyboard) Down(key string) error {
	return k.send(key, 0)
}

func (k *DefaultKeyboard) Up(key string) error {
	return k.send(key, keyEventFKeyUp)
}

func (k *DefaultKeyboard) send(key string, flags uint32) error {
	vk, err := VirtualKey(key)
	if err != nil {
		return err
	}
	in := keyboardInput{
		typ: inputKeyboard,
		ki:  keybdInput{wVk: vk, dwFlags: flags},
	}
	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n != 1 {
		return fmt.Errorf("SendInput %q: %w", key, err)
	}
	return nil
}
