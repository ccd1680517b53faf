package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/phpx-labs/cargo-php/internal/ext"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// FormatError renders err for the terminal, with a hint for errors the user
// can act on.
func FormatError(err error) string {
	msg := errorStyle.Render("error:") + " " + err.Error()

	var incompatible *ext.IncompatibleError
	switch {
	case errors.As(err, &incompatible):
		msg += "\n" + mutedStyle.Render(fmt.Sprintf("  rebuild the extension against ext-php-rs %s or use a matching %s", incompatible.Required, rootCmd.Name()))
	case errors.Is(err, ext.ErrLoad):
		msg += "\n" + mutedStyle.Render("  if the extension links against libphp, list it under the preload config key")
	}
	return msg
}
