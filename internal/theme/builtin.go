package theme

import "github.com/opencode-ai/palette/internal/color"

// Built-in family constants.
const (
	// BuiltinFamilyName is the name of the system family shipped with the
	// program.
	BuiltinFamilyName = "Default"
	// BuiltinLightTheme is the light theme of the built-in family and the
	// registry's initial current theme.
	BuiltinLightTheme = "Light"
	// BuiltinDarkTheme is the dark theme of the built-in family.
	BuiltinDarkTheme = "Dark"
)

// BuiltinFamily constructs the system family: light and dark themes over the
// default catalog with pure schema defaults and no overrides. It is built
// from compiled constant data, tagged system, and therefore never editable in
// place.
func BuiltinFamily() *Family {
	light, err := NewTheme(BuiltinLightTheme, color.Light, nil)
	if err != nil {
		panic(err)
	}
	dark, err := NewTheme(BuiltinDarkTheme, color.Dark, nil)
	if err != nil {
		panic(err)
	}
	f, err := NewFamily(FamilyConfig{
		Name:       BuiltinFamilyName,
		Author:     "palette",
		Provenance: ProvenanceSystem,
	}, light, dark)
	if err != nil {
		panic(err)
	}
	return f
}
