// Package logger provides structured logging utilities
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds logger configuration
type Config struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // text or json
	Output     string `mapstructure:"output"`      // stdout, stderr, or file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, RFC3339Nano, etc
}

var log = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	return l
}

// Init initializes the logger with configuration
func Init(cfg Config) {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	timeFormat := time.RFC3339
	if strings.TrimSpace(cfg.TimeFormat) != "" {
		timeFormat = strings.TrimSpace(cfg.TimeFormat)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timeFormat})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timeFormat})
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Output)) {
	case "", "stderr":
		log.SetOutput(os.Stderr)
	case "stdout":
		log.SetOutput(os.Stdout)
	default:
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Warnf("logger: failed to open log file %s: %v", cfg.Output, err)
			return
		}
		log.SetOutput(f)
	}
}

// SetOutput redirects log output, mostly for tests
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Debug logs debug message (only shown when level=debug)
func Debug(msg string) {
	log.Debug(msg)
}

// Debugf logs formatted debug message
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Info logs info message
func Info(msg string) {
	log.Info(msg)
}

// Infof logs formatted info message
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warn logs warning message
func Warn(msg string) {
	log.Warn(msg)
}

// Warnf logs formatted warning message
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Error logs error message
func Error(msg string) {
	log.Error(msg)
}

// Errorf logs formatted error message
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Fatalf logs formatted fatal message and exits
func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}

// WithFields returns a log message with structured fields
func WithFields(fields map[string]interface{}) *FieldLogger {
	return &FieldLogger{entry: log.WithFields(logrus.Fields(fields))}
}

// FieldLogger allows structured logging with fields
type FieldLogger struct {
	entry *logrus.Entry
}

func (l *FieldLogger) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *FieldLogger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *FieldLogger) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *FieldLogger) Error(msg string) {
	l.entry.Error(msg)
}

// HTTP logs HTTP protocol activity
func HTTP(method, path string, status, latencyMs int) {
	WithFields(map[string]interface{}{
		"protocol": "http",
		"method":   method,
		"path":     path,
		"status":   status,
		"latency":  latencyMs,
	}).Debug(fmt.Sprintf("HTTP %s %s %d - %dms", method, path, status, latencyMs))
}
