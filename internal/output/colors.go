package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Method      *color.Color
	URL         *color.Color
	StatusOK    *color.Color
	StatusWarn  *color.Color
	StatusError *color.Color
	HeaderKey   *color.Color
	HeaderValue *color.Color
	Success     *color.Color
	Error       *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Method:      color.New(color.FgBlue, color.Bold),
		URL:         color.New(color.FgCyan),
		StatusOK:    color.New(color.FgGreen, color.Bold),
		StatusWarn:  color.New(color.FgYellow, color.Bold),
		StatusError: color.New(color.FgRed, color.Bold),
		HeaderKey:   color.New(color.FgYellow),
		HeaderValue: color.New(color.FgWhite),
		Success:     color.New(color.FgGreen),
		Error:       color.New(color.FgRed),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Method.DisableColor()
	scheme.URL.DisableColor()
	scheme.StatusOK.DisableColor()
	scheme.StatusWarn.DisableColor()
	scheme.StatusError.DisableColor()
	scheme.HeaderKey.DisableColor()
	scheme.HeaderValue.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()

	return scheme
}

// TerminalSupportsColor reports whether stdout is a terminal that can
// render ANSI colors. Piped output gets plain text.
func TerminalSupportsColor() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
