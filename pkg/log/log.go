// Package log provides the logger used throughout the emulator. It is a
// thin interface so components can be handed a null logger in tests.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields = logrus.Fields

type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})

	// WithFields returns a Logger that attaches fields to every entry.
	WithFields(fields Fields) Logger
}

type logger struct {
	entry *logrus.Entry
}

// New returns a Logger writing to stdout at the given level. Colours are
// only used when stdout is a terminal.
func New(level string) Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    !tty,
		ForceColors:      tty,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}

	return &logger{entry: logrus.NewEntry(l)}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(fields)}
}
