package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/tinct/internal/scheme"
)

// Widgets that embed another widget's record call that widget's constructor
// instead of copying its fields.

func (t *Theme) arrow() Style {
	return scheme.NewStyle(t.s.Secondary[0], t.s.Black[1])
}

// Shadow returns the drop shadow style.
func (t *Theme) Shadow() ShadowStyle {
	return ShadowStyle{
		Style: Style{Background: t.s.Black[0]},
		Dir:   ShadowBottomRight,
	}
}

// LineNumber returns the line number gutter style.
func (t *Theme) LineNumber() LineNumberStyle {
	return LineNumberStyle{
		Style:  t.Data().Fg(t.s.Gray[0]),
		Cursor: t.TextSelect(),
	}
}

// TextArea returns the multi-line text style.
func (t *Theme) TextArea() TextStyle {
	return TextStyle{
		Style:  t.Data(),
		Focus:  t.Focus(),
		Select: t.TextSelect(),
		Scroll: t.Scroll(),
	}
}

// Input returns the single-line text input style.
func (t *Theme) Input() TextStyle {
	return TextStyle{
		Style:   t.TextInput(),
		Focus:   t.TextFocus(),
		Select:  t.TextSelect(),
		Invalid: Style{Background: t.s.Red[3]},
	}
}

// Menu returns the menu bar style.
func (t *Theme) Menu() MenuStyle {
	menu := scheme.NewStyle(t.s.White[3], t.s.Black[2])
	return MenuStyle{
		Style:     menu,
		Title:     scheme.NewStyle(t.s.Black[0], t.s.Yellow[2]),
		Select:    t.Select(),
		Focus:     t.Focus(),
		Right:     Style{Foreground: t.s.BlueGreen[0]},
		Disabled:  Style{Foreground: t.s.Gray[0]},
		Highlight: Style{}.Underlined(),
		Popup:     t.Popup(menu),
	}
}

// Popup returns a bordered popup over base with the theme's scrollbar.
func (t *Theme) Popup(base Style) PopupStyle {
	return PopupStyle{
		Style:  base,
		Border: lipgloss.NormalBorder(),
		Scroll: t.Scroll(),
	}
}

// Paragraph returns the paragraph style.
func (t *Theme) Paragraph() ParagraphStyle {
	return ParagraphStyle{
		Style:  t.Data(),
		Scroll: t.Scroll(),
	}
}

// Table returns the table style.
func (t *Theme) Table() TableStyle {
	return TableStyle{
		Style:        t.Data(),
		SelectRow:    t.Select(),
		ShowRowFocus: true,
		Focus:        t.Focus(),
		Scroll:       t.Scroll(),
	}
}

// List returns the list style.
func (t *Theme) List() ListStyle {
	return ListStyle{
		Style:  t.Data(),
		Select: t.Select(),
		Focus:  t.Focus(),
		Scroll: t.Scroll(),
	}
}

// Button returns the button style.
func (t *Theme) Button() ButtonStyle {
	return ButtonStyle{
		Style: scheme.NewStyle(t.s.TextColor(t.s.Primary[0]), t.s.Primary[0]),
		Focus: scheme.NewStyle(t.s.TextColor(t.s.Primary[3]), t.s.Primary[3]),
		Armed: scheme.NewStyle(t.s.Black[0], t.s.Secondary[0]),
	}
}

// Scroll returns the scrollbar style.
func (t *Theme) Scroll() ScrollStyle {
	style := t.Container()
	arrow := t.arrow()
	return ScrollStyle{
		Thumb: style,
		Track: style,
		Min:   style,
		Begin: arrow,
		End:   arrow,
	}
}

// Split returns the splitter style.
func (t *Theme) Split() SplitStyle {
	return SplitStyle{
		Style: t.Container(),
		Arrow: t.arrow(),
		Drag:  t.Focus(),
	}
}

// View returns the scrolled view style.
func (t *Theme) View() ViewStyle {
	return ViewStyle{Scroll: t.Scroll()}
}

// Tabbed returns the tab bar style.
func (t *Theme) Tabbed() TabbedStyle {
	return TabbedStyle{
		Style:  t.Container(),
		Tab:    t.Gray(1),
		Select: t.Gray(3),
		Focus:  t.Focus(),
	}
}

// StatusLine returns the style for a status line with three indicators,
// shaded from dark to light blue.
func (t *Theme) StatusLine() StatusLineStyle {
	fg := t.s.TextColor(t.s.White[0])
	return StatusLineStyle{
		Style: t.Status(),
		Segments: [3]Style{
			scheme.NewStyle(fg, t.s.Blue[3]),
			scheme.NewStyle(fg, t.s.Blue[2]),
			scheme.NewStyle(fg, t.s.Blue[1]),
		},
	}
}

// MsgDialog returns the message dialog style.
func (t *Theme) MsgDialog() MsgDialogStyle {
	return MsgDialogStyle{
		Style:  t.Dialog(),
		Button: t.Button(),
	}
}

// FileDialog returns the file dialog style.
func (t *Theme) FileDialog() FileDialogStyle {
	return FileDialogStyle{
		Style:   t.Dialog(),
		List:    t.Data(),
		Path:    t.TextInput(),
		Name:    t.TextInput(),
		New:     t.TextInput(),
		Invalid: scheme.NewStyle(t.s.Red[3], t.s.Gray[2]),
		Select:  t.Select(),
		Focus:   t.Focus(),
		Button:  t.Button(),
	}
}

// Choice returns the drop-down choice style.
func (t *Theme) Choice() ChoiceStyle {
	return ChoiceStyle{
		Style:  t.TextInput(),
		Button: t.TextInput(),
		Select: t.Select(),
		Focus:  t.Focus(),
		Popup:  t.Popup(t.TextInput()),
	}
}

// Pager returns the pager style.
func (t *Theme) Pager() PagerStyle {
	return PagerStyle{
		Style:   t.Container(),
		Nav:     t.Select(),
		Divider: t.Container(),
		Scroll:  t.Scroll(),
	}
}

// Clipper returns the clipper style.
func (t *Theme) Clipper() ClipperStyle {
	return ClipperStyle{Scroll: t.Scroll()}
}
