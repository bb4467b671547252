// Package logging is a small leveled logfmt logger. Notator writes to
// a file (or nowhere) because stdout belongs to the terminal UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a settings string to a level, defaulting to Info.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

type Field struct {
	Key   string
	Value any
}

// F is shorthand for building a Field at a call site.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Enabled(level Level) bool
}

type logger struct {
	out   io.Writer
	min   Level
	bound []Field
	mu    *sync.Mutex
}

func New(out io.Writer, min Level) Logger {
	if out == nil {
		out = os.Stdout
	}
	return &logger{out: out, min: min, mu: &sync.Mutex{}}
}

// Nop returns a logger that drops everything.
func Nop() Logger {
	return &logger{out: io.Discard, min: Error, mu: &sync.Mutex{}}
}

func (l *logger) Enabled(level Level) bool {
	return l != nil && level >= l.min
}

func (l *logger) With(fields ...Field) Logger {
	if l == nil {
		return Nop()
	}
	bound := make([]Field, 0, len(l.bound)+len(fields))
	bound = append(bound, l.bound...)
	bound = append(bound, fields...)
	return &logger{out: l.out, min: l.min, bound: bound, mu: l.mu}
}

func (l *logger) Debug(msg string, fields ...Field) { l.emit(Debug, msg, fields) }
func (l *logger) Info(msg string, fields ...Field)  { l.emit(Info, msg, fields) }
func (l *logger) Warn(msg string, fields ...Field)  { l.emit(Warn, msg, fields) }
func (l *logger) Error(msg string, fields ...Field) { l.emit(Error, msg, fields) }

func (l *logger) emit(level Level, msg string, fields []Field) {
	if !l.Enabled(level) {
		return
	}
	var line strings.Builder
	line.WriteString("ts=")
	line.WriteString(time.Now().UTC().Format(time.RFC3339Nano))
	line.WriteString(" level=")
	line.WriteString(level.String())
	line.WriteString(" msg=")
	line.WriteString(encode(msg))
	for _, f := range l.bound {
		appendField(&line, f)
	}
	for _, f := range fields {
		appendField(&line, f)
	}
	line.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, line.String())
}

func appendField(line *strings.Builder, f Field) {
	line.WriteByte(' ')
	line.WriteString(f.Key)
	line.WriteByte('=')
	line.WriteString(encodeValue(f.Value))
}

func encodeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return encode(v)
	case error:
		return encode(v.Error())
	case bool:
		return strconv.FormatBool(v)
	case time.Duration:
		return encode(v.String())
	case fmt.Stringer:
		return encode(v.String())
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", v)
	default:
		return encode(fmt.Sprintf("%v", v))
	}
}

// encode quotes a value only when logfmt needs it to.
func encode(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsAny(value, " \t\n\r\"=") {
		return strconv.Quote(value)
	}
	return value
}
