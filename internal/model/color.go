package model

import (
	"fmt"
	"strings"

	"github.com/gerow/go-color"
)

// Color is a named palette entry. Renderers map it to whatever they draw with.
type Color string

const (
	ColorTeal   Color = "teal"
	ColorPink   Color = "pink"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorIndigo Color = "indigo"
	ColorOrange Color = "orange"
	ColorSlate  Color = "slate"
)

var Palette = []Color{ColorTeal, ColorPink, ColorBlue, ColorPurple, ColorIndigo, ColorOrange, ColorSlate}

var paletteHex = map[Color]string{
	ColorTeal:   "14b8a6",
	ColorPink:   "f472b6",
	ColorBlue:   "60a5fa",
	ColorPurple: "c084fc",
	ColorIndigo: "6366f1",
	ColorOrange: "f97316",
	ColorSlate:  "94a3b8",
}

// legacyClasses maps the style classes stored by older exports onto the palette.
var legacyClasses = map[string]Color{
	"bg-teal-500":   ColorTeal,
	"bg-pink-400":   ColorPink,
	"bg-pink-500":   ColorPink,
	"bg-blue-400":   ColorBlue,
	"bg-purple-400": ColorPurple,
	"bg-indigo-500": ColorIndigo,
	"bg-orange-400": ColorOrange,
	"bg-orange-500": ColorOrange,
	"bg-slate-400":  ColorSlate,
}

var defaultColors = map[EventType]Color{
	EventTypeTrip:     ColorTeal,
	EventTypePersonal: ColorOrange,
	EventTypeFamily:   ColorPink,
	EventTypeWork:     ColorIndigo,
}

// DefaultColor is the colour an event of type t gets when none is chosen.
func DefaultColor(t EventType) Color {
	if c, ok := defaultColors[t]; ok {
		return c
	}
	return Palette[0]
}

// ParseColor accepts a palette name or a legacy style class.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c := Color(strings.ToLower(s)); c.Valid() {
		return c, nil
	}
	if c, ok := legacyClasses[s]; ok {
		return c, nil
	}

	return "", fmt.Errorf("unknown color %q", s)
}

func (c Color) Valid() bool {
	_, ok := paletteHex[c]
	return ok
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	hex, ok := paletteHex[c]
	if !ok {
		hex = paletteHex[ColorSlate]
	}
	return "#" + hex
}

func (c Color) RGB() color.RGB {
	hex, ok := paletteHex[c]
	if !ok {
		hex = paletteHex[ColorSlate]
	}

	rgb, err := color.HTMLToRGB(hex)
	if err != nil {
		panic(fmt.Sprintf("palette color %s: %v", c, err))
	}

	return rgb
}
