package julia

import (
	"fmt"
	"image/color"
	"strconv"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Teal is the flat base color of the first default output.
var Teal = RGB{R: 90, G: 181, B: 178}

// Black is RGB{0, 0, 0}.
var Black = RGB{}

// Color converts to the standard library color.Color interface.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// String returns the color as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Hex parses a color from a hex string.
// Supports formats "RGB" and "RRGGBB", with or without a leading '#'.
func Hex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var parts [3]string
	switch len(s) {
	case 3:
		parts = [3]string{s[0:1] + s[0:1], s[1:2] + s[1:2], s[2:3] + s[2:3]}
	case 6:
		parts = [3]string{s[0:2], s[2:4], s[4:6]}
	default:
		return RGB{}, fmt.Errorf("julia: invalid hex color %q", hex)
	}

	var out [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("julia: invalid hex color %q: %w", hex, err)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}
