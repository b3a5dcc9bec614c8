package logger

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Environment string
	Level       Level
	Format      Format
	// Service and Version are attached to every entry when set.
	Service string
	Version string
}

type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)

	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Strings(key string, values []string) Field {
	return Field{Key: key, Value: values}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l *Level) Decode(value string) error {
	lvl := Level(strings.ToLower(value))
	switch lvl {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		*l = lvl
		return nil
	}
	return fmt.Errorf("invalid log level: %s", value)
}

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

func (f *Format) Decode(value string) error {
	format := Format(strings.ToLower(value))
	switch format {
	case FormatJSON, FormatText:
		*f = format
		return nil
	}
	return fmt.Errorf("invalid log format: %s", value)
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext never returns nil; without a request logger it falls back to a nop.
func FromContext(ctx context.Context) Logger {
	return FromContextOr(ctx, NewNop())
}

func FromContextOr(ctx context.Context, fallback Logger) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return fallback
}
