// Package logging configures the logrus logger used for diagnostics.
//
// Lines are written to stderr as "LEVEL: message", the same shape as the
// "ERROR:" line printed by main, so warnings and failures read alike.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Formatter renders entries as "LEVEL: message key=value ...".
type Formatter struct {
	// Color styles the level label; set when writing to a terminal
	Color bool
}

var levelStyles = map[logrus.Level]lipgloss.Style{
	logrus.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	logrus.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	logrus.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	logrus.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// Label returns the prefix for a level: DEBUG, INFO, WARN, ERROR.
func Label(level logrus.Level) string {
	switch level {
	case logrus.WarnLevel:
		return "WARN"
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "ERROR"
	default:
		return strings.ToUpper(level.String())
	}
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	label := Label(entry.Level)
	if f.Color {
		if style, ok := levelStyles[entry.Level]; ok {
			label = style.Render(label)
		}
	}
	fmt.Fprintf(&b, "%s: %s", label, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// New returns a logger writing to w at the named level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&Formatter{Color: IsTerminal(w)})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
