package ui

// Color helpers return the escape sequence for a role in the active theme,
// or "" when colors are disabled.

func ColorReset() string     { return GetCurrentTheme().Reset }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorGreen() string     { return GetCurrentTheme().Success }
func ColorRed() string       { return GetCurrentTheme().Error }
func ColorYellow() string    { return GetCurrentTheme().Warning }
func ColorBlue() string      { return GetCurrentTheme().Info }
func ColorCyan() string      { return GetCurrentTheme().Primary }
func ColorGrey() string      { return GetCurrentTheme().Secondary }

// Paint wraps s in the given color and a reset, or returns s unchanged when
// colors are disabled.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
