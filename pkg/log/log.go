// Package log defines the logging interface used across the emulator and
// a default implementation backed by logrus.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the interface the emulator components log through. Hosts may
// provide their own implementation.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns the default Logger, a logrus logger configured for plain,
// unsorted, timestamp-free output.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewDebug returns a Logger that also emits debug output.
func NewDebug() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
