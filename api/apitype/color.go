package apitype

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
	"strconv"
	"strings"
)

// BrandOrange is the default background, #FF9500.
var BrandOrange = color.NRGBA{R: 255, G: 149, B: 0, A: 255}

var Transparent = color.NRGBA{}

// ParseColor accepts #RRGGBB, #RGB, #RRGGBBAA and "r,g,b[,a]".
func ParseColor(value string) (color.NRGBA, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty color", ErrInvalidInput)
	}
	if strings.Contains(value, ",") {
		return parseComponents(value)
	}
	return parseHex(value)
}

func parseHex(value string) (color.NRGBA, error) {
	alpha := uint8(255)
	if len(value) == 9 && strings.HasPrefix(value, "#") {
		a, err := strconv.ParseUint(value[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: invalid alpha in color '%s'", ErrInvalidInput, value)
		}
		alpha = uint8(a)
		value = value[:7]
	}
	if !strings.HasPrefix(value, "#") || (len(value) != 4 && len(value) != 7) {
		return color.NRGBA{}, fmt.Errorf("%w: invalid color '%s'", ErrInvalidInput, value)
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: invalid color '%s'", ErrInvalidInput, value)
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func parseComponents(value string) (color.NRGBA, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: color '%s' must have 3 or 4 components", ErrInvalidInput, value)
	}
	components := []uint8{0, 0, 0, 255}
	for i, part := range parts {
		component, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: invalid component '%s' in color '%s'", ErrInvalidInput, part, value)
		}
		components[i] = uint8(component)
	}
	return color.NRGBA{R: components[0], G: components[1], B: components[2], A: components[3]}, nil
}

func ColorToHex(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Blend mixes a towards b in the Lab color space, t in [0, 1].
func Blend(a color.NRGBA, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}
