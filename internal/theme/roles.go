package theme

import (
	"strconv"

	"github.com/opencode-ai/tinct/internal/scheme"
)

// Role names a palette-derived foreground/background pair.
type Role int

const (
	RoleFocus Role = iota
	RoleSelect
	RoleTextInput
	RoleTextFocus
	RoleTextSelect
	RoleContainer
	RoleData
	RoleDialog
	RoleStatus
)

// ShadeRef points at one shade of one ramp.
type ShadeRef struct {
	Ramp scheme.RampName
	N    int
}

// RoleSpec describes how a role picks its colors. With Contrast set the
// foreground is the scheme's text color for the background and Fg is unused.
type RoleSpec struct {
	Bg       ShadeRef
	Fg       ShadeRef
	Contrast bool
}

var roleNames = [...]string{
	RoleFocus:      "focus",
	RoleSelect:     "select",
	RoleTextInput:  "text_input",
	RoleTextFocus:  "text_focus",
	RoleTextSelect: "text_select",
	RoleContainer:  "container",
	RoleData:       "data",
	RoleDialog:     "dialog",
	RoleStatus:     "status",
}

var roleTable = [...]RoleSpec{
	RoleFocus:      {Bg: ShadeRef{scheme.Primary, 2}, Contrast: true},
	RoleSelect:     {Bg: ShadeRef{scheme.Secondary, 1}, Contrast: true},
	RoleTextInput:  {Bg: ShadeRef{scheme.Gray, 3}, Fg: ShadeRef{scheme.Black, 0}},
	RoleTextFocus:  {Bg: ShadeRef{scheme.Primary, 0}, Contrast: true},
	RoleTextSelect: {Bg: ShadeRef{scheme.Secondary, 0}, Contrast: true},
	RoleContainer:  {Bg: ShadeRef{scheme.Black, 1}, Fg: ShadeRef{scheme.Gray, 0}},
	RoleData:       {Bg: ShadeRef{scheme.Black, 1}, Fg: ShadeRef{scheme.White, 0}},
	RoleDialog:     {Bg: ShadeRef{scheme.Gray, 1}, Fg: ShadeRef{scheme.White, 2}},
	RoleStatus:     {Bg: ShadeRef{scheme.Black, 2}, Fg: ShadeRef{scheme.White, 0}},
}

// Roles lists every role in table order.
func Roles() []Role {
	out := make([]Role, len(roleTable))
	for i := range roleTable {
		out[i] = Role(i)
	}
	return out
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// Spec returns the table entry for r.
func (r Role) Spec() RoleSpec {
	return roleTable[r]
}

// Role resolves r against the theme's scheme.
func (t *Theme) Role(r Role) Style {
	spec := roleTable[r]
	bg := t.shade(spec.Bg.Ramp, spec.Bg.N)
	if spec.Contrast {
		return scheme.NewStyle(t.s.TextColor(bg), bg)
	}
	return scheme.NewStyle(t.shade(spec.Fg.Ramp, spec.Fg.N), bg)
}

// Focus is the style of the focused widget or item.
func (t *Theme) Focus() Style { return t.Role(RoleFocus) }

// Select is the style of selected items.
func (t *Theme) Select() Style { return t.Role(RoleSelect) }

// TextInput is the base style of text fields.
func (t *Theme) TextInput() Style { return t.Role(RoleTextInput) }

// TextFocus is the style of a focused text field.
func (t *Theme) TextFocus() Style { return t.Role(RoleTextFocus) }

// TextSelect is the style of selected text.
func (t *Theme) TextSelect() Style { return t.Role(RoleTextSelect) }

// Container is the base style of containers.
func (t *Theme) Container() Style { return t.Role(RoleContainer) }

// Data is the base style for data display: lists, tables and the like.
func (t *Theme) Data() Style { return t.Role(RoleData) }

// Dialog is the background of dialogs.
func (t *Theme) Dialog() Style { return t.Role(RoleDialog) }

// Status is the style of the status line.
func (t *Theme) Status() Style { return t.Role(RoleStatus) }
