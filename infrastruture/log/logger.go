// Package log provides prefixed, colored loggers backed by logrus.
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix must not be empty")
	ErrNilWriter   = errors.New("logger writer must not be nil")
)

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	logger *logrus.Logger
}

// New creates a Logger whose prefix is painted with the given ANSI color.
// An empty color disables coloring.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if out == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{logger: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.logger.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.logger.Error(msg)
}

// Debug logs verbose diagnostics.
func (l *Logger) Debug(msg string) {
	l.logger.Debug(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	header := fmt.Sprintf("[%s] [%s]", f.prefix, strings.ToUpper(e.Level.String()))
	if f.color != "" {
		header = f.color + header + config.ColorReset
	}

	b.WriteString(header)
	b.WriteByte(' ')
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}
