package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the application. It
// decouples components from the concrete backend (zerolog in production,
// the standard library logger where zerolog is unavailable or undesired).
type Logger interface {
	// Info logs an informational message with optional structured fields.
	Info(msg string, fields ...Field)
	// Error logs an error message with the causing error and optional fields.
	Error(msg string, err error, fields ...Field)
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...Field)
	// Printf logs a formatted message at info level (log.Printf compatibility).
	Printf(format string, v ...any)
	// Println logs its arguments at info level (log.Println compatibility).
	Println(v ...any)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a Logger writing human-readable output to stderr.
func NewDefaultLogger() Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return &ZerologAdapter{logger: zerolog.New(writer).With().Timestamp().Logger()}
}

// NewLogger returns a Logger writing JSON to w, tagged with a component name.
func NewLogger(w io.Writer, component string) Logger {
	return &ZerologAdapter{
		logger: zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	}
}

// Info logs an informational message.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.logger.Info(), fields).Msg(msg)
}

// Error logs an error message with its cause.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs a debug-level message.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, v ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Println logs its arguments at info level.
func (a *ZerologAdapter) Println(v ...any) {
	a.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// applyFields attaches structured fields to a zerolog event, dispatching
// on the value's dynamic type.
func (a *ZerologAdapter) applyFields(ev *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	return ev
}

// StdLoggerAdapter adapts the standard library *log.Logger to the Logger
// interface. Fields are rendered as trailing key=value pairs.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps a standard library logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info logs an informational message.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs an error message with its cause.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		fields = append(fields, Err(err))
	}
	a.logger.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Debug logs a debug-level message.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf logs a formatted message.
func (a *StdLoggerAdapter) Printf(format string, v ...any) {
	a.logger.Printf(format, v...)
}

// Println logs its arguments.
func (a *StdLoggerAdapter) Println(v ...any) {
	a.logger.Println(v...)
}

// formatFields renders fields as " key=value ..." for plain-text output.
func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key, f.Value)
	}
	return sb.String()
}
