package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorAlert   = lipgloss.Color("196") // Red
	colorSkip    = lipgloss.Color("214") // Orange
	colorHeading = lipgloss.Color("39")  // Blue
	colorMuted   = lipgloss.Color("245") // Gray
)

// palette holds the styles used by TextReporter. A plain palette leaves
// text untouched.
type palette struct {
	styled  bool
	alert   lipgloss.Style
	skip    lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
}

func plainPalette() palette {
	return palette{}
}

func colorPalette() palette {
	return palette{
		styled:  true,
		alert:   lipgloss.NewStyle().Bold(true).Foreground(colorAlert),
		skip:    lipgloss.NewStyle().Foreground(colorSkip),
		heading: lipgloss.NewStyle().Bold(true).Foreground(colorHeading),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func (p palette) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// ColorEnabled reports whether output to w should be styled.
//
// Returns false if:
//   - NO_COLOR is set
//   - w is not backed by a file descriptor
//   - w is not a terminal
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
