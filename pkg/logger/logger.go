// Package logger printf-style обёртка над logrus.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger логгер сервиса. Пишет JSON в stdout и, если указан, в файл.
type Logger struct {
	entry *logrus.Logger
	file  *os.File
}

// New создает логгер. file может быть пустым, тогда пишем только в stdout.
// level: debug, info, warn, error.
func New(file, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(lvl)

	result := &Logger{entry: l}

	if file == "" {
		l.SetOutput(os.Stdout)
		return result, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("logger: open %s: %w", file, err)
	}
	l.SetOutput(io.MultiWriter(os.Stdout, f))
	result.file = f

	return result, nil
}

// NewWithWriter создает логгер поверх произвольного writer (тесты, CLI-команды)
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	l.SetOutput(w)
	return &Logger{entry: l}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// Fatal логирует и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.entry.Fatalf(format, v...)
}

// Close закрывает файл лога
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
