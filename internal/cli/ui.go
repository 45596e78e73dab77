// Package cli provides terminal presentation helpers. Converting resolved
// colors into hex for display happens here, at the presentation boundary,
// not in the resolution engine.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/opencode-ai/palette/internal/color"
)

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorEnabled() bool {
	return !noColor && hasTTY()
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func styleHeader(s string) string {
	if !colorEnabled() {
		return s
	}
	return headerStyle.Render(s)
}

// swatch renders a small colored block for a resolved color, or nothing when
// colored output is off.
func swatch(c color.Hsla) string {
	if !colorEnabled() {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hslaToHex(c))).
		Render("   ")
}

// hslaToHex converts to the #RRGGBB form terminals and stylesheets expect.
// Alpha is dropped; the hex form is display-only.
func hslaToHex(c color.Hsla) string {
	r, g, b := colorful.Hsl(c.H*360, c.S, c.L).RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
