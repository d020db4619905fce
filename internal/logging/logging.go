package logging

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

// Level controls which messages a Logger emits
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is a single structured key/value pair attached to a log line
type Field struct {
	Key   string
	Value interface{}
}

// WithField creates a single structured field
func WithField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// WithFields converts a map into a sorted field list for stable output
func WithFields(fields map[string]interface{}) []Field {
	out := make([]Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, Field{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Logger is a leveled logger with structured fields
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to stderr at the given level
func New(level Level) *Logger {
	return &Logger{
		level: level,
		out:   log.New(os.Stderr, "", log.LstdFlags|log.LUTC),
	}
}

// Debug logs at debug level
func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.emit(LevelDebug, msg, fields...)
}

// Info logs at info level
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.emit(LevelInfo, msg, fields...)
}

// Warn logs at warn level
func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.emit(LevelWarn, msg, fields...)
}

// Error logs at error level
func (l *Logger) Error(msg string, fields ...interface{}) {
	l.emit(LevelError, msg, fields...)
}

func (l *Logger) emit(level Level, msg string, fields ...interface{}) {
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(level.String())
	b.WriteString(" ")
	b.WriteString(msg)

	for _, f := range fields {
		switch v := f.(type) {
		case Field:
			writeField(&b, v)
		case []Field:
			for _, inner := range v {
				writeField(&b, inner)
			}
		default:
			b.WriteString(fmt.Sprintf(" %v", v))
		}
	}

	l.out.Println(b.String())
}

func writeField(b *strings.Builder, f Field) {
	b.WriteString(fmt.Sprintf(" %s=%v", f.Key, f.Value))
}
