package ggui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a packed 32-bit color with straight alpha, laid out as
// 0xAABBGGRR (red in the low byte).
type Color uint32

// channelScale maps [0, 1] floats onto [0, 255] by truncation so that 1.0
// lands on 255 and every byte receives an equal share of the interval.
const channelScale = 256 - 2.220446049250313e-16*128

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns c as a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c),
		G: uint8(c >> 8),
		B: uint8(c >> 16),
		A: uint8(c >> 24),
	}
}

// Floats returns the channels as floats in [0, 1].
func (c Color) Floats() (r, g, b, a float64) {
	n := c.NRGBA()
	return float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255, float64(n.A) / 255
}

// WithAlpha returns c with its alpha channel replaced by a in [0, 1].
func (c Color) WithAlpha(a float64) Color {
	return c&0x00ffffff | Color(channel(a))<<24
}

func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// RGB builds an opaque color from float channels in [0, 1].
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA builds a color from float channels in [0, 1]. Out-of-range values
// are clamped.
func RGBA(r, g, b, a float64) Color {
	return Color(channel(a))<<24 | Color(channel(b))<<16 | Color(channel(g))<<8 | Color(channel(r))
}

func channel(v float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint32(v * channelScale)
}

// Named is a color name paired with an alpha override.
type Named struct {
	Name  string
	Alpha float64
}

// Common colors used by the overlays.
const (
	Black       Color = 0xff000000
	White       Color = 0xffffffff
	Transparent Color = 0
)

// ParseColor normalizes the accepted color notations into a Color:
//
//   - Color, uint32 and int are taken as already packed;
//   - [4]float64, [3]float64 and []float64 of length 3 or 4 are RGB(A)
//     channels in [0, 1];
//   - a string is a color name, or a hex code starting with '#';
//   - Named is a color name with an alpha override;
//   - any other color.Color is converted through its NRGBA value.
//
// Names are looked up in the XKCD color survey table first and then among
// the SVG 1.1 color keywords.
func ParseColor(v any) (Color, error) {
	switch c := v.(type) {
	case Color:
		return c, nil
	case uint32:
		return Color(c), nil
	case int:
		if c < 0 || int64(c) > math.MaxUint32 {
			return 0, fmt.Errorf("%w: packed value %d out of range", ErrInvalidColor, c)
		}
		return Color(c), nil
	case [4]float64:
		return RGBA(c[0], c[1], c[2], c[3]), nil
	case [3]float64:
		return RGB(c[0], c[1], c[2]), nil
	case []float64:
		switch len(c) {
		case 3:
			return RGB(c[0], c[1], c[2]), nil
		case 4:
			return RGBA(c[0], c[1], c[2], c[3]), nil
		}
		return 0, fmt.Errorf("%w: %d channels", ErrInvalidColor, len(c))
	case string:
		return lookupName(c)
	case Named:
		base, err := lookupName(c.Name)
		if err != nil {
			return 0, err
		}
		return base.WithAlpha(c.Alpha), nil
	case color.Color:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return Color(n.A)<<24 | Color(n.B)<<16 | Color(n.G)<<8 | Color(n.R), nil
	case nil:
		return 0, fmt.Errorf("%w: nil", ErrInvalidColor)
	}
	return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidColor, v)
}

// MustColor is like ParseColor but panics on error.
func MustColor(v any) Color {
	c, err := ParseColor(v)
	if err != nil {
		panic(err)
	}
	return c
}

func lookupName(name string) (Color, error) {
	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}
	key := strings.ToLower(name)
	if c, ok := xkcdColors[key]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return ParseColor(c)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// parseHex accepts RGB, RGBA, RRGGBB and RRGGBBAA.
func parseHex(hex string) (Color, error) {
	var short bool
	switch len(hex) {
	case 3, 4:
		short = true
	case 6, 8:
	default:
		return 0, fmt.Errorf("%w: hex code %q", ErrInvalidColor, hex)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: hex code %q", ErrInvalidColor, hex)
	}
	var ch []uint32
	if short {
		for i := len(hex) - 1; i >= 0; i-- {
			v := uint32(n>>(4*i)) & 0xf
			ch = append(ch, v*17)
		}
	} else {
		for i := len(hex)/2 - 1; i >= 0; i-- {
			ch = append(ch, uint32(n>>(8*i))&0xff)
		}
	}
	a := uint32(255)
	if len(ch) == 4 {
		a = ch[3]
	}
	return Color(a<<24 | ch[2]<<16 | ch[1]<<8 | ch[0]), nil
}
