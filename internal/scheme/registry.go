package scheme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScheme is returned when a requested scheme is not registered.
var ErrUnknownScheme = errors.New("unknown scheme")

// Schemes lists the built-in palettes by name.
var Schemes = map[string]Scheme{
	"imperial":   Imperial,
	"ocean":      Ocean,
	"monochrome": Monochrome,
	"ansi":       ANSI,
}

// Lookup returns a copy of the named built-in scheme. Names are
// case-insensitive.
func Lookup(name string) (Scheme, error) {
	s, ok := Schemes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s, nil
}

// Names returns the registered scheme names, sorted.
func Names() []string {
	names := make([]string, 0, len(Schemes))
	for name := range Schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
