package input

import (
	"fmt"
	"strings"
)

var namedKeys = map[string]uint16{
	"backspace": 0x08,
	"tab":       0x09,
	"enter":     0x0D,
	"shift":     0x10,
	"ctrl":      0x11,
	"alt":       0x12,
	"esc":       0x1B,
	"space":     0x20,
	"left":      0x25,
	"up":        0x26,
	"right":     0x27,
	"down":      0x28,
}

// VirtualKey maps a key identifier to its Windows virtual key code. It is
// also how key identifiers are validated on every platform.
func VirtualKey(key string) (uint16, error) {
	k := strings.ToLower(key)
	if len(k) == 1 {
		c := k[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint16(c - 'a' + 'A'), nil
		case c >= '0' && c <= '9':
			return uint16(c), nil
		}
	}
	if vk, ok := namedKeys[k]; ok {
		return vk, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}
