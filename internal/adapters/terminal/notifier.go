// Package terminal renders toasts on a terminal.
package terminal

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/atelier/internal/core/effects"
	"github.com/example/atelier/internal/ports/secondary"
)

// Notifier prints one line per toast, marked by level.
type Notifier struct {
	out      io.Writer
	colorize bool
}

// NewNotifier creates a notifier writing to out.
func NewNotifier(out io.Writer, colorize bool) *Notifier {
	return &Notifier{out: out, colorize: colorize}
}

// Notify implements secondary.Notifier.
func (n *Notifier) Notify(level, message string) {
	var mark *color.Color
	var symbol string
	switch level {
	case effects.LevelSuccess:
		mark, symbol = color.New(color.FgGreen), "✓"
	case effects.LevelError:
		mark, symbol = color.New(color.FgRed), "✗"
	default:
		mark, symbol = color.New(color.FgCyan), "•"
	}

	if n.colorize {
		mark.EnableColor()
	} else {
		mark.DisableColor()
	}
	fmt.Fprintf(n.out, "%s %s\n", mark.Sprint(symbol), message)
}

var _ secondary.Notifier = (*Notifier)(nil)
