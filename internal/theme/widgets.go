package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Every record below is a plain value. A zero Style field means the widget
// falls back to its base style for that state.

// ButtonStyle styles push buttons.
type ButtonStyle struct {
	Style Style
	Focus Style
	Armed Style
}

// ScrollStyle styles a scrollbar.
type ScrollStyle struct {
	Thumb Style
	Track Style
	Min   Style
	Begin Style
	End   Style
}

// SplitStyle styles a splitter.
type SplitStyle struct {
	Style Style
	Arrow Style
	Drag  Style
}

// ViewStyle styles a scrolled view.
type ViewStyle struct {
	Scroll ScrollStyle
}

// ClipperStyle styles a clipping view.
type ClipperStyle struct {
	Scroll ScrollStyle
}

// TabbedStyle styles a tab bar.
type TabbedStyle struct {
	Style  Style
	Tab    Style
	Select Style
	Focus  Style
}

// PopupStyle styles a popup window. A zero Border draws no border.
type PopupStyle struct {
	Style  Style
	Border lipgloss.Border
	Scroll ScrollStyle
}

// HasBorder reports whether the popup draws a border.
func (p PopupStyle) HasBorder() bool {
	return p.Border != lipgloss.Border{}
}

// Lipgloss converts the popup frame into a lipgloss style. Border colors are
// left unset under the Ascii profile so no-color output stays plain.
func (p PopupStyle) Lipgloss() lipgloss.Style {
	out := p.Style.Lipgloss()
	if p.HasBorder() {
		out = out.Border(p.Border)
		if lipgloss.ColorProfile() == termenv.Ascii {
			return out
		}
		if p.Style.Foreground != "" {
			out = out.BorderForeground(p.Style.Foreground)
		}
		if p.Style.Background != "" {
			out = out.BorderBackground(p.Style.Background)
		}
	}
	return out
}

// MenuStyle styles a menu bar and its popup.
type MenuStyle struct {
	Style     Style
	Title     Style
	Select    Style
	Focus     Style
	Right     Style
	Disabled  Style
	Highlight Style
	Popup     PopupStyle
}

// ParagraphStyle styles a block of text.
type ParagraphStyle struct {
	Style  Style
	Scroll ScrollStyle
}

// TableStyle styles a table.
type TableStyle struct {
	Style        Style
	SelectRow    Style
	ShowRowFocus bool
	Focus        Style
	Scroll       ScrollStyle
}

// ListStyle styles a list.
type ListStyle struct {
	Style  Style
	Select Style
	Focus  Style
	Scroll ScrollStyle
}

// TextStyle styles text areas and text inputs.
type TextStyle struct {
	Style   Style
	Focus   Style
	Select  Style
	Invalid Style
	Scroll  ScrollStyle
}

// StatusLineStyle styles a status line with three indicator segments.
type StatusLineStyle struct {
	Style    Style
	Segments [3]Style
}

// All returns the base style followed by the segments.
func (s StatusLineStyle) All() []Style {
	return []Style{s.Style, s.Segments[0], s.Segments[1], s.Segments[2]}
}

// MsgDialogStyle styles a message dialog.
type MsgDialogStyle struct {
	Style  Style
	Button ButtonStyle
}

// FileDialogStyle styles a file dialog.
type FileDialogStyle struct {
	Style   Style
	List    Style
	Path    Style
	Name    Style
	New     Style
	Invalid Style
	Select  Style
	Focus   Style
	Button  ButtonStyle
}

// ChoiceStyle styles a drop-down choice.
type ChoiceStyle struct {
	Style  Style
	Button Style
	Select Style
	Focus  Style
	Popup  PopupStyle
}

// PagerStyle styles a paged view.
type PagerStyle struct {
	Style   Style
	Nav     Style
	Divider Style
	Scroll  ScrollStyle
}

// LineNumberStyle styles a line number gutter.
type LineNumberStyle struct {
	Style  Style
	Cursor Style
}

// ShadowDirection says where a shadow falls.
type ShadowDirection int

const (
	ShadowBottomRight ShadowDirection = iota
	ShadowBottomLeft
	ShadowTopRight
	ShadowTopLeft
)

func (d ShadowDirection) String() string {
	switch d {
	case ShadowBottomRight:
		return "bottom-right"
	case ShadowBottomLeft:
		return "bottom-left"
	case ShadowTopRight:
		return "top-right"
	case ShadowTopLeft:
		return "top-left"
	default:
		return "unknown"
	}
}

// ShadowStyle styles a drop shadow.
type ShadowStyle struct {
	Style Style
	Dir   ShadowDirection
}
