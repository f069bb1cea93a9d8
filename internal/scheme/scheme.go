// Package scheme defines color palettes made of named four-shade ramps.
package scheme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Shade is a single resolved color: a "#rrggbb" hex string or an ANSI-256 index.
type Shade = lipgloss.Color

// Ramp holds four shades of one color family, ordered by increasing emphasis.
type Ramp [4]Shade

// RampName identifies one of the ramps of a Scheme.
type RampName int

const (
	White RampName = iota
	Black
	Gray
	Red
	Orange
	Yellow
	LimeGreen
	Green
	BlueGreen
	Cyan
	Blue
	DeepBlue
	Purple
	Magenta
	RedPink
	Primary
	Secondary
)

var rampNames = [...]string{
	White:     "white",
	Black:     "black",
	Gray:      "gray",
	Red:       "red",
	Orange:    "orange",
	Yellow:    "yellow",
	LimeGreen: "limegreen",
	Green:     "green",
	BlueGreen: "bluegreen",
	Cyan:      "cyan",
	Blue:      "blue",
	DeepBlue:  "deepblue",
	Purple:    "purple",
	Magenta:   "magenta",
	RedPink:   "redpink",
	Primary:   "primary",
	Secondary: "secondary",
}

// RampNames lists all ramps in declaration order.
func RampNames() []RampName {
	out := make([]RampName, len(rampNames))
	for i := range rampNames {
		out[i] = RampName(i)
	}
	return out
}

func (r RampName) String() string {
	if r < 0 || int(r) >= len(rampNames) {
		return "ramp(" + strconv.Itoa(int(r)) + ")"
	}
	return rampNames[r]
}

// grayThreshold splits dark from light backgrounds on the 0..255 gray scale.
const grayThreshold = 128

// Scheme is a complete palette. It is treated as immutable once built.
type Scheme struct {
	White     Ramp
	Black     Ramp
	Gray      Ramp
	Red       Ramp
	Orange    Ramp
	Yellow    Ramp
	LimeGreen Ramp
	Green     Ramp
	BlueGreen Ramp
	Cyan      Ramp
	Blue      Ramp
	DeepBlue  Ramp
	Purple    Ramp
	Magenta   Ramp
	RedPink   Ramp
	Primary   Ramp
	Secondary Ramp
}

// IndexError is the panic value raised for a shade index outside 0..3
// or an unknown ramp.
type IndexError struct {
	Ramp  RampName
	Index int
}

func (e *IndexError) Error() string {
	if e.Ramp < 0 || int(e.Ramp) >= len(rampNames) {
		return fmt.Sprintf("scheme: unknown ramp %s (shade index %d)", e.Ramp, e.Index)
	}
	return fmt.Sprintf("scheme: shade index %d out of range [0,3] for ramp %s", e.Index, e.Ramp)
}

// Ramp returns the ramp with the given name. Unknown names panic.
func (s *Scheme) Ramp(name RampName) Ramp {
	return s.ramp(name, -1)
}

func (s *Scheme) ramp(name RampName, n int) Ramp {
	switch name {
	case White:
		return s.White
	case Black:
		return s.Black
	case Gray:
		return s.Gray
	case Red:
		return s.Red
	case Orange:
		return s.Orange
	case Yellow:
		return s.Yellow
	case LimeGreen:
		return s.LimeGreen
	case Green:
		return s.Green
	case BlueGreen:
		return s.BlueGreen
	case Cyan:
		return s.Cyan
	case Blue:
		return s.Blue
	case DeepBlue:
		return s.DeepBlue
	case Purple:
		return s.Purple
	case Magenta:
		return s.Magenta
	case RedPink:
		return s.RedPink
	case Primary:
		return s.Primary
	case Secondary:
		return s.Secondary
	}
	panic(&IndexError{Ramp: name, Index: n})
}

// Shade returns shade n of the named ramp. n must be in 0..3; anything else
// is a caller bug and panics with an *IndexError.
func (s *Scheme) Shade(name RampName, n int) Shade {
	if n < 0 || n > 3 {
		panic(&IndexError{Ramp: name, Index: n})
	}
	return s.ramp(name, n)[n]
}

// Style wraps a shade as a foreground-only style.
func (s *Scheme) Style(color Shade) Style {
	return Style{Foreground: color}
}

// TextColor picks a readable foreground for bg: the brightest white on dark
// backgrounds, the darkest black on light ones.
func (s *Scheme) TextColor(bg Shade) Shade {
	if Gray8(bg) < grayThreshold {
		return s.White[3]
	}
	return s.Black[0]
}

// Gray8 converts a shade to its perceived gray level in 0..255 using
// 0.2989 R + 0.5870 G + 0.1140 B. Shades that cannot be parsed count as black.
func Gray8(c Shade) int {
	rgb, ok := toRGB(c)
	if !ok {
		return 0
	}
	r, g, b := rgb.RGB255()
	return int(0.2989*float64(r) + 0.5870*float64(g) + 0.1140*float64(b))
}

func toRGB(c Shade) (colorful.Color, bool) {
	v := strings.TrimSpace(string(c))
	if v == "" {
		return colorful.Color{}, false
	}
	if strings.HasPrefix(v, "#") {
		rgb, err := colorful.Hex(v)
		if err != nil {
			return colorful.Color{}, false
		}
		return rgb, true
	}
	idx, err := strconv.Atoi(v)
	if err != nil || idx < 0 || idx > 255 {
		return colorful.Color{}, false
	}
	return termenv.ConvertToRGB(termenv.ANSI256Color(idx)), true
}
