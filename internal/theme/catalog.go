package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWidget is returned when a widget kind name is not recognized.
var ErrUnknownWidget = errors.New("unknown widget")

// Widget identifies a widget kind.
type Widget string

const (
	WidgetButton     Widget = "button"
	WidgetScroll     Widget = "scroll"
	WidgetSplit      Widget = "split"
	WidgetView       Widget = "view"
	WidgetTabbed     Widget = "tabbed"
	WidgetMenu       Widget = "menu"
	WidgetParagraph  Widget = "paragraph"
	WidgetTable      Widget = "table"
	WidgetList       Widget = "list"
	WidgetTextArea   Widget = "textarea"
	WidgetInput      Widget = "input"
	WidgetStatusLine Widget = "statusline"
	WidgetMsgDialog  Widget = "msgdialog"
	WidgetFileDialog Widget = "filedialog"
	WidgetChoice     Widget = "choice"
	WidgetPager      Widget = "pager"
	WidgetClipper    Widget = "clipper"
	WidgetLineNumber Widget = "linenumber"
	WidgetShadow     Widget = "shadow"
)

var widgets = []Widget{
	WidgetButton, WidgetScroll, WidgetSplit, WidgetView, WidgetTabbed,
	WidgetMenu, WidgetParagraph, WidgetTable, WidgetList, WidgetTextArea,
	WidgetInput, WidgetStatusLine, WidgetMsgDialog, WidgetFileDialog,
	WidgetChoice, WidgetPager, WidgetClipper, WidgetLineNumber, WidgetShadow,
}

// Widgets lists every widget kind in catalog order.
func Widgets() []Widget {
	return append([]Widget(nil), widgets...)
}

// ParseWidget resolves a widget kind by name.
func ParseWidget(name string) (Widget, error) {
	norm := Widget(strings.ToLower(strings.TrimSpace(name)))
	for _, w := range widgets {
		if w == norm {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWidget, name)
}

// Entry is one style field of one widget. Nested records are flattened with
// dotted field names such as "scroll.thumb".
type Entry struct {
	Widget Widget
	Field  string
	Style  Style

	// Bordered is only meaningful on border rows, see IsBorder.
	Bordered bool
}

// IsBorder reports whether e describes a frame rather than a text style.
func (e Entry) IsBorder() bool {
	return e.Field == "border" || strings.HasSuffix(e.Field, ".border")
}

// Catalog flattens every widget style of t in a stable order.
func Catalog(t *Theme) []Entry {
	var out []Entry
	for _, w := range widgets {
		out = append(out, entries(t, w)...)
	}
	return out
}

// ForWidget flattens the style of a single widget kind.
func ForWidget(t *Theme, w Widget) ([]Entry, error) {
	if _, err := ParseWidget(string(w)); err != nil {
		return nil, err
	}
	return entries(t, w), nil
}

type fieldList struct {
	widget Widget
	out    []Entry
}

func (f *fieldList) add(field string, s Style) {
	f.out = append(f.out, Entry{Widget: f.widget, Field: field, Style: s})
}

func (f *fieldList) scroll(prefix string, s ScrollStyle) {
	f.add(prefix+"thumb", s.Thumb)
	f.add(prefix+"track", s.Track)
	f.add(prefix+"min", s.Min)
	f.add(prefix+"begin", s.Begin)
	f.add(prefix+"end", s.End)
}

func (f *fieldList) button(prefix string, s ButtonStyle) {
	f.add(prefix+"style", s.Style)
	f.add(prefix+"focus", s.Focus)
	f.add(prefix+"armed", s.Armed)
}

func (f *fieldList) popup(prefix string, s PopupStyle) {
	f.add(prefix+"style", s.Style)
	f.out = append(f.out, Entry{Widget: f.widget, Field: prefix + "border", Style: s.Style, Bordered: s.HasBorder()})
	f.scroll(prefix+"scroll.", s.Scroll)
}

func entries(t *Theme, w Widget) []Entry {
	f := &fieldList{widget: w}
	switch w {
	case WidgetButton:
		f.button("", t.Button())
	case WidgetScroll:
		f.scroll("", t.Scroll())
	case WidgetSplit:
		s := t.Split()
		f.add("style", s.Style)
		f.add("arrow", s.Arrow)
		f.add("drag", s.Drag)
	case WidgetView:
		f.scroll("scroll.", t.View().Scroll)
	case WidgetTabbed:
		s := t.Tabbed()
		f.add("style", s.Style)
		f.add("tab", s.Tab)
		f.add("select", s.Select)
		f.add("focus", s.Focus)
	case WidgetMenu:
		s := t.Menu()
		f.add("style", s.Style)
		f.add("title", s.Title)
		f.add("select", s.Select)
		f.add("focus", s.Focus)
		f.add("right", s.Right)
		f.add("disabled", s.Disabled)
		f.add("highlight", s.Highlight)
		f.popup("popup.", s.Popup)
	case WidgetParagraph:
		s := t.Paragraph()
		f.add("style", s.Style)
		f.scroll("scroll.", s.Scroll)
	case WidgetTable:
		s := t.Table()
		f.add("style", s.Style)
		f.add("select_row", s.SelectRow)
		f.add("focus", s.Focus)
		f.scroll("scroll.", s.Scroll)
	case WidgetList:
		s := t.List()
		f.add("style", s.Style)
		f.add("select", s.Select)
		f.add("focus", s.Focus)
		f.scroll("scroll.", s.Scroll)
	case WidgetTextArea, WidgetInput:
		s := t.TextArea()
		if w == WidgetInput {
			s = t.Input()
		}
		f.add("style", s.Style)
		f.add("focus", s.Focus)
		f.add("select", s.Select)
		f.add("invalid", s.Invalid)
		f.scroll("scroll.", s.Scroll)
	case WidgetStatusLine:
		s := t.StatusLine()
		f.add("style", s.Style)
		for i, seg := range s.Segments {
			f.add(fmt.Sprintf("segment.%d", i+1), seg)
		}
	case WidgetMsgDialog:
		s := t.MsgDialog()
		f.add("style", s.Style)
		f.button("button.", s.Button)
	case WidgetFileDialog:
		s := t.FileDialog()
		f.add("style", s.Style)
		f.add("list", s.List)
		f.add("path", s.Path)
		f.add("name", s.Name)
		f.add("new", s.New)
		f.add("invalid", s.Invalid)
		f.add("select", s.Select)
		f.add("focus", s.Focus)
		f.button("button.", s.Button)
	case WidgetChoice:
		s := t.Choice()
		f.add("style", s.Style)
		f.add("button", s.Button)
		f.add("select", s.Select)
		f.add("focus", s.Focus)
		f.popup("popup.", s.Popup)
	case WidgetPager:
		s := t.Pager()
		f.add("style", s.Style)
		f.add("nav", s.Nav)
		f.add("divider", s.Divider)
		f.scroll("scroll.", s.Scroll)
	case WidgetClipper:
		f.scroll("scroll.", t.Clipper().Scroll)
	case WidgetLineNumber:
		s := t.LineNumber()
		f.add("style", s.Style)
		f.add("cursor", s.Cursor)
	case WidgetShadow:
		f.add("style", t.Shadow().Style)
	}
	return f.out
}
