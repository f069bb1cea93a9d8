package theme

import (
	"errors"
	"sync"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/tinct/internal/scheme"
)

func newTestTheme() *Theme {
	return New("test", scheme.Imperial)
}

func TestRampAccessors(t *testing.T) {
	th := newTestTheme()
	s := th.Scheme()
	accessors := map[scheme.RampName]func(int) Style{
		scheme.White:     th.White,
		scheme.Black:     th.Black,
		scheme.Gray:      th.Gray,
		scheme.Red:       th.Red,
		scheme.Orange:    th.Orange,
		scheme.Yellow:    th.Yellow,
		scheme.LimeGreen: th.LimeGreen,
		scheme.Green:     th.Green,
		scheme.BlueGreen: th.BlueGreen,
		scheme.Cyan:      th.Cyan,
		scheme.Blue:      th.Blue,
		scheme.DeepBlue:  th.DeepBlue,
		scheme.Purple:    th.Purple,
		scheme.Magenta:   th.Magenta,
		scheme.RedPink:   th.RedPink,
		scheme.Primary:   th.Primary,
		scheme.Secondary: th.Secondary,
	}
	require.Len(t, accessors, len(scheme.RampNames()))

	for ramp, fn := range accessors {
		for n := 0; n < 4; n++ {
			want := Style{Foreground: s.Shade(ramp, n)}
			assert.Equal(t, want, fn(n), "%s(%d)", ramp, n)
			assert.Equal(t, want, th.RampStyle(ramp, n), "RampStyle(%s, %d)", ramp, n)
		}
	}
}

func TestRampAccessorOutOfRangePanics(t *testing.T) {
	th := newTestTheme()
	assert.Panics(t, func() { th.Red(4) })
	assert.Panics(t, func() { th.Primary(-1) })
}

func TestRoleTable(t *testing.T) {
	th := newTestTheme()
	s := th.Scheme()

	tests := []struct {
		role Role
		got  Style
		bg   scheme.Shade
		fg   scheme.Shade
	}{
		{role: RoleFocus, got: th.Focus(), bg: s.Primary[2], fg: s.TextColor(s.Primary[2])},
		{role: RoleSelect, got: th.Select(), bg: s.Secondary[1], fg: s.TextColor(s.Secondary[1])},
		{role: RoleTextInput, got: th.TextInput(), bg: s.Gray[3], fg: s.Black[0]},
		{role: RoleTextFocus, got: th.TextFocus(), bg: s.Primary[0], fg: s.TextColor(s.Primary[0])},
		{role: RoleTextSelect, got: th.TextSelect(), bg: s.Secondary[0], fg: s.TextColor(s.Secondary[0])},
		{role: RoleContainer, got: th.Container(), bg: s.Black[1], fg: s.Gray[0]},
		{role: RoleData, got: th.Data(), bg: s.Black[1], fg: s.White[0]},
		{role: RoleDialog, got: th.Dialog(), bg: s.Gray[1], fg: s.White[2]},
		{role: RoleStatus, got: th.Status(), bg: s.Black[2], fg: s.White[0]},
	}
	require.Len(t, tests, len(Roles()))

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.bg, tt.got.Background)
			assert.Equal(t, tt.fg, tt.got.Foreground)
			assert.Equal(t, tt.got, th.Role(tt.role))
		})
	}
}

func TestRoleSpecContrastOnlyForHighlights(t *testing.T) {
	contrast := map[Role]bool{
		RoleFocus:      true,
		RoleSelect:     true,
		RoleTextFocus:  true,
		RoleTextSelect: true,
	}
	for _, r := range Roles() {
		assert.Equal(t, contrast[r], r.Spec().Contrast, r.String())
	}
	assert.Equal(t, "role(77)", Role(77).String())
}

// Fixed foregrounds must not go through the contrast rule even when the
// contrast rule would pick a different shade.
func TestStatusForegroundIsFixed(t *testing.T) {
	s := scheme.Imperial
	s.White = scheme.Ramp{"#FFFFFF", "#EEEEEE", "#DDDDDD", "#FFFFFF"}
	s.Black = scheme.Ramp{"#000000", "#111111", "#F0F0F0", "#333333"}
	th := New("scenario", s)

	require.Equal(t, s.White[0], s.TextColor(s.Black[1]))
	assert.Equal(t, scheme.NewStyle("#FFFFFF", "#111111"), th.Data())
	assert.Equal(t, scheme.NewStyle("#FFFFFF", "#F0F0F0"), th.Status())
	assert.NotEqual(t, s.TextColor(s.Black[2]), th.Status().Foreground)
}

func TestNestedScrollIsShared(t *testing.T) {
	th := newTestTheme()
	scroll := th.Scroll()

	assert.Equal(t, scroll, th.Table().Scroll, "table")
	assert.Equal(t, scroll, th.List().Scroll, "list")
	assert.Equal(t, scroll, th.Paragraph().Scroll, "paragraph")
	assert.Equal(t, scroll, th.View().Scroll, "view")
	assert.Equal(t, scroll, th.Pager().Scroll, "pager")
	assert.Equal(t, scroll, th.Clipper().Scroll, "clipper")
	assert.Equal(t, scroll, th.TextArea().Scroll, "textarea")
	assert.Equal(t, scroll, th.Choice().Popup.Scroll, "choice popup")
	assert.Equal(t, scroll, th.Menu().Popup.Scroll, "menu popup")
}

func TestNestedPopupAndButtonAreShared(t *testing.T) {
	th := newTestTheme()

	menu := th.Menu()
	assert.Equal(t, th.Popup(menu.Style), menu.Popup)

	choice := th.Choice()
	assert.Equal(t, th.Popup(th.TextInput()), choice.Popup)

	assert.Equal(t, th.Button(), th.MsgDialog().Button)
	assert.Equal(t, th.Button(), th.FileDialog().Button)
}

func TestWidgetStyles(t *testing.T) {
	th := newTestTheme()
	s := th.Scheme()

	input := th.Input()
	assert.Equal(t, th.TextInput(), input.Style)
	assert.Equal(t, th.TextFocus(), input.Focus)
	assert.Equal(t, Style{Background: s.Red[3]}, input.Invalid)
	assert.Equal(t, ScrollStyle{}, input.Scroll)

	area := th.TextArea()
	assert.Equal(t, th.Data(), area.Style)
	assert.Equal(t, th.Focus(), area.Focus)
	assert.True(t, area.Invalid.IsZero())

	table := th.Table()
	assert.True(t, table.ShowRowFocus)
	assert.Equal(t, th.Select(), table.SelectRow)

	menu := th.Menu()
	assert.Equal(t, scheme.NewStyle(s.White[3], s.Black[2]), menu.Style)
	assert.Equal(t, scheme.NewStyle(s.Black[0], s.Yellow[2]), menu.Title)
	assert.Equal(t, Style{Foreground: s.BlueGreen[0]}, menu.Right)
	assert.Equal(t, Style{Foreground: s.Gray[0]}, menu.Disabled)
	assert.True(t, menu.Highlight.Underline)
	assert.True(t, menu.Popup.HasBorder())

	button := th.Button()
	assert.Equal(t, scheme.NewStyle(s.TextColor(s.Primary[0]), s.Primary[0]), button.Style)
	assert.Equal(t, scheme.NewStyle(s.TextColor(s.Primary[3]), s.Primary[3]), button.Focus)
	assert.Equal(t, scheme.NewStyle(s.Black[0], s.Secondary[0]), button.Armed)

	scroll := th.Scroll()
	assert.Equal(t, th.Container(), scroll.Thumb)
	assert.Equal(t, scheme.NewStyle(s.Secondary[0], s.Black[1]), scroll.Begin)
	assert.Equal(t, scroll.Begin, scroll.End)

	split := th.Split()
	assert.Equal(t, scroll.Begin, split.Arrow)
	assert.Equal(t, th.Focus(), split.Drag)

	tabbed := th.Tabbed()
	assert.Equal(t, th.Gray(1), tabbed.Tab)
	assert.Equal(t, th.Gray(3), tabbed.Select)

	status := th.StatusLine()
	assert.Equal(t, th.Status(), status.Style)
	assert.Equal(t, scheme.NewStyle(s.TextColor(s.White[0]), s.Blue[3]), status.Segments[0])
	assert.Equal(t, s.Blue[1], status.Segments[2].Background)
	assert.Len(t, status.All(), 4)

	fd := th.FileDialog()
	assert.Equal(t, th.Dialog(), fd.Style)
	assert.Equal(t, th.Data(), fd.List)
	assert.Equal(t, scheme.NewStyle(s.Red[3], s.Gray[2]), fd.Invalid)

	pager := th.Pager()
	assert.Equal(t, th.Select(), pager.Nav)
	assert.Equal(t, th.Container(), pager.Divider)

	ln := th.LineNumber()
	assert.Equal(t, scheme.NewStyle(s.Gray[0], s.Black[1]), ln.Style)
	assert.Equal(t, th.TextSelect(), ln.Cursor)

	shadow := th.Shadow()
	assert.Equal(t, Style{Background: s.Black[0]}, shadow.Style)
	assert.Equal(t, ShadowBottomRight, shadow.Dir)
	assert.Equal(t, "bottom-right", shadow.Dir.String())
}

func TestReturnedRecordsAreIndependent(t *testing.T) {
	th := newTestTheme()
	first := th.Table()
	first.Scroll.Thumb = Style{}
	first.Style.Background = "#123456"

	second := th.Table()
	assert.Equal(t, th.Scroll(), second.Scroll)
	assert.Equal(t, th.Data(), second.Style)
}

func TestThemeMetadata(t *testing.T) {
	th := New("dark", scheme.Ocean)
	assert.Equal(t, "dark", th.Name())
	assert.True(t, th.IsDark())
	assert.Equal(t, scheme.Ocean, th.Scheme())
}

func TestEqualSchemesGiveEqualCatalogs_PropertyBased(t *testing.T) {
	names := scheme.Names()
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("catalog is a pure function of the scheme", prop.ForAll(
		func(i int) bool {
			s, err := scheme.Lookup(names[i])
			if err != nil {
				return false
			}
			a := Catalog(New("a", s))
			b := Catalog(New("b", s))
			if len(a) != len(b) {
				return false
			}
			for k := range a {
				if a[k] != b[k] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, len(names)-1),
	))

	properties.TestingRun(t)
}

func TestCatalogCoversEveryWidget(t *testing.T) {
	th := newTestTheme()
	seen := map[Widget]int{}
	for _, e := range Catalog(th) {
		seen[e.Widget]++
	}
	for _, w := range Widgets() {
		assert.Positive(t, seen[w], "no entries for %s", w)
	}
	assert.Len(t, Widgets(), 19)
}

func TestForWidget(t *testing.T) {
	th := newTestTheme()

	got, err := ForWidget(th, WidgetTable)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "style", got[0].Field)
	assert.Equal(t, th.Data(), got[0].Style)

	var thumb Entry
	for _, e := range got {
		if e.Field == "scroll.thumb" {
			thumb = e
		}
	}
	assert.Equal(t, th.Scroll().Thumb, thumb.Style)

	_, err = ForWidget(th, Widget("gauge"))
	assert.True(t, errors.Is(err, ErrUnknownWidget))
}

func TestPopupBorderRows(t *testing.T) {
	th := newTestTheme()

	for _, w := range []Widget{WidgetMenu, WidgetChoice} {
		got, err := ForWidget(th, w)
		require.NoError(t, err)

		var border *Entry
		for i := range got {
			if got[i].Field == "popup.border" {
				border = &got[i]
			}
		}
		require.NotNil(t, border, "%s has no popup.border row", w)
		assert.True(t, border.IsBorder())
		assert.True(t, border.Bordered)

		for _, e := range got {
			if e.Field != "popup.border" {
				assert.False(t, e.IsBorder(), e.Field)
			}
		}
	}

	assert.False(t, Entry{Field: "style"}.IsBorder())
	assert.True(t, Entry{Field: "border"}.IsBorder())
}

func TestParseWidget(t *testing.T) {
	w, err := ParseWidget(" FileDialog ")
	require.NoError(t, err)
	assert.Equal(t, WidgetFileDialog, w)

	_, err = ParseWidget("slider")
	assert.ErrorIs(t, err, ErrUnknownWidget)
}

func TestConcurrentReads(t *testing.T) {
	th := newTestTheme()
	want := Catalog(th)

	var wg sync.WaitGroup
	results := make([][]Entry, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Catalog(th)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestPopupLipgloss(t *testing.T) {
	th := newTestTheme()
	popup := th.Menu().Popup
	lg := popup.Lipgloss()
	assert.True(t, lg.GetBorderTop())
	assert.False(t, PopupStyle{}.HasBorder())
}

func TestPopupBorderColorsFollowProfile(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	popup := newTestTheme().Choice().Popup

	lipgloss.SetColorProfile(termenv.Ascii)
	plain := popup.Lipgloss()
	assert.True(t, plain.GetBorderTop())
	assert.Equal(t, lipgloss.NoColor{}, plain.GetBorderTopForeground())
	assert.Equal(t, lipgloss.NoColor{}, plain.GetBorderTopBackground())

	lipgloss.SetColorProfile(termenv.TrueColor)
	colored := popup.Lipgloss()
	assert.Equal(t, popup.Style.Foreground, colored.GetBorderTopForeground())
	assert.Equal(t, popup.Style.Background, colored.GetBorderTopBackground())
}

func TestBuildStyles(t *testing.T) {
	th := newTestTheme()
	st := BuildStyles(th)
	assert.Same(t, th, st.Theme)
	assert.Equal(t, th.Focus().Background, st.Focus.GetBackground())
	assert.True(t, st.Title.GetBold())
}
