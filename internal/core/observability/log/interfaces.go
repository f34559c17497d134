package log

import "time"

type Log interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	With(fields ...Field) Log

	SetLevel(level Level)
	GetLevel() Level
}

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

type Field struct {
	Key   string
	Type  FieldType
	Value any
}

// A FieldType indicates which member of the Field union struct should be used
// and how it should be serialized.
type FieldType uint8

const (
	UnknownType FieldType = iota
	BoolType
	DurationType
	Float64Type
	IntType
	StringType
	ErrorType
)

// Field constructors for the value types this module logs.

func Bool(key string, value bool) Field {
	return Field{Key: key, Type: BoolType, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Type: DurationType, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Type: Float64Type, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Type: IntType, Value: value}
}

func String(key, value string) Field {
	return Field{Key: key, Type: StringType, Value: value}
}

func Err(err error) Field {
	return Field{Key: "error", Type: ErrorType, Value: err}
}

func Any(key string, value any) Field {
	return Field{Key: key, Type: UnknownType, Value: value}
}
