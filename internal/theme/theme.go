// Package theme derives widget styles from a scheme.
//
// A Theme never mutates its scheme and keeps no other state, so one Theme may
// be shared freely between goroutines. Every style record is built fresh on
// each call and holds no reference back to the Theme.
package theme

import "github.com/opencode-ai/tinct/internal/scheme"

// Style is the foreground/background pair used by every widget record.
type Style = scheme.Style

// Theme pairs a scheme with a display name. It prefers the dark end of the
// scheme for surfaces and derives everything else from the role table.
type Theme struct {
	name string
	s    scheme.Scheme
}

// New creates a theme over a copy of s.
func New(name string, s scheme.Scheme) *Theme {
	return &Theme{name: name, s: s}
}

// Name returns the display name.
func (t *Theme) Name() string { return t.name }

// IsDark hints that surfaces use the dark shades.
func (t *Theme) IsDark() bool { return true }

// Scheme returns a copy of the underlying scheme.
func (t *Theme) Scheme() scheme.Scheme { return t.s }

func (t *Theme) shade(ramp scheme.RampName, n int) scheme.Shade {
	return t.s.Shade(ramp, n)
}

func (t *Theme) ramp(ramp scheme.RampName, n int) Style {
	return t.s.Style(t.s.Shade(ramp, n))
}

// White returns a style from white shade n (0..3).
func (t *Theme) White(n int) Style { return t.ramp(scheme.White, n) }

// Black returns a style from black shade n (0..3).
func (t *Theme) Black(n int) Style { return t.ramp(scheme.Black, n) }

// Gray returns a style from gray shade n (0..3).
func (t *Theme) Gray(n int) Style { return t.ramp(scheme.Gray, n) }

// Red returns a style from red shade n (0..3).
func (t *Theme) Red(n int) Style { return t.ramp(scheme.Red, n) }

// Orange returns a style from orange shade n (0..3).
func (t *Theme) Orange(n int) Style { return t.ramp(scheme.Orange, n) }

// Yellow returns a style from yellow shade n (0..3).
func (t *Theme) Yellow(n int) Style { return t.ramp(scheme.Yellow, n) }

// LimeGreen returns a style from limegreen shade n (0..3).
func (t *Theme) LimeGreen(n int) Style { return t.ramp(scheme.LimeGreen, n) }

// Green returns a style from green shade n (0..3).
func (t *Theme) Green(n int) Style { return t.ramp(scheme.Green, n) }

// BlueGreen returns a style from bluegreen shade n (0..3).
func (t *Theme) BlueGreen(n int) Style { return t.ramp(scheme.BlueGreen, n) }

// Cyan returns a style from cyan shade n (0..3).
func (t *Theme) Cyan(n int) Style { return t.ramp(scheme.Cyan, n) }

// Blue returns a style from blue shade n (0..3).
func (t *Theme) Blue(n int) Style { return t.ramp(scheme.Blue, n) }

// DeepBlue returns a style from deepblue shade n (0..3).
func (t *Theme) DeepBlue(n int) Style { return t.ramp(scheme.DeepBlue, n) }

// Purple returns a style from purple shade n (0..3).
func (t *Theme) Purple(n int) Style { return t.ramp(scheme.Purple, n) }

// Magenta returns a style from magenta shade n (0..3).
func (t *Theme) Magenta(n int) Style { return t.ramp(scheme.Magenta, n) }

// RedPink returns a style from redpink shade n (0..3).
func (t *Theme) RedPink(n int) Style { return t.ramp(scheme.RedPink, n) }

// Primary returns a style from primary shade n (0..3).
func (t *Theme) Primary(n int) Style { return t.ramp(scheme.Primary, n) }

// Secondary returns a style from secondary shade n (0..3).
func (t *Theme) Secondary(n int) Style { return t.ramp(scheme.Secondary, n) }

// RampStyle returns a style from shade n of any ramp.
func (t *Theme) RampStyle(ramp scheme.RampName, n int) Style { return t.ramp(ramp, n) }
