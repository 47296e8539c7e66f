package logx

import "time"

// Logger is a minimal structured logging interface based on key-value fields.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field represents a single structured log field (key-value pair).
type Field struct {
	Key   string
	Value any
}

// Any creates a field with an arbitrary value type.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a time.Duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates an "err" field holding the error text; nil errors log as "<nil>".
func Err(err error) Field {
	if err == nil {
		return Field{Key: "err", Value: "<nil>"}
	}
	return Field{Key: "err", Value: err.Error()}
}

type discard struct{}

// Nop returns a Logger that drops everything; useful in tests and as a
// default for optional loggers.
func Nop() Logger { return discard{} }

func (discard) Debug(string, ...Field) {}

func (discard) Info(string, ...Field) {}

func (discard) Warn(string, ...Field) {}

func (discard) Error(string, ...Field) {}

func (d discard) With(...Field) Logger { return d }

func (discard) Sync() error { return nil }

var _ Logger = discard{}
