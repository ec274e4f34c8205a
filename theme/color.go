// Copyright © 2026 The mpvedit authors

package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned for colour strings that cannot be parsed.
var ErrBadColor = errors.New("bad color")

// Color is a packed 0xAARRGGBB value.
type Color uint32

// ARGB packs the four channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// RGB returns the colour channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// WithAlpha replaces the alpha channel with a fraction in [0, 1], rounded
// to the nearest step.
func (c Color) WithAlpha(alpha float64) Color {
	alpha = math.Max(0, math.Min(1, alpha))
	a := uint8(alpha*255 + 0.5)
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// Hex formats the colour as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// RGBHex formats the colour channels as #RRGGBB, dropping alpha.
func (c Color) RGBHex() string {
	return c.Colorful().Hex()
}

// Colorful converts the colour channels, ignoring alpha.
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Over composites c onto an opaque background and returns an opaque
// colour, for outputs that cannot express transparency.
func (c Color) Over(bg Color) Color {
	t := float64(c.Alpha()) / 255
	mixed := bg.Colorful().BlendRgb(c.Colorful(), t).Clamped()
	r, g, b := mixed.RGB255()
	return ARGB(0xFF, r, g, b)
}

// ParseHex parses "#RRGGBB" (opaque) or "#AARRGGBB".
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch len(s) {
	case 7:
		cf, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		r, g, b := cf.RGB255()
		return ARGB(0xFF, r, g, b), nil
	case 9:
		if s[0] != '#' {
			return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		opaque, err := ParseHex("#" + s[3:])
		if err != nil {
			return 0, err
		}
		return Color(uint32(opaque)&0x00FFFFFF | uint32(a)<<24), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
}

// MustParseHex is ParseHex for literals known to be valid.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}
