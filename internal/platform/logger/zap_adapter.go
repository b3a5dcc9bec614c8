package logger

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(config Config) (Logger, error) {
	zapConfig := baseZapConfig(config.Environment)
	zapConfig.Level = zap.NewAtomicLevelAt(parseZapLevel(config.Level))

	if config.Format == FormatText {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	initial := make(map[string]interface{}, 2)
	if config.Service != "" {
		initial["service"] = config.Service
	}
	if config.Version != "" {
		initial["version"] = config.Version
	}
	if len(initial) > 0 {
		zapConfig.InitialFields = initial
	}

	logger, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return Wrap(logger), nil
}

// Wrap adapts an existing zap logger.
func Wrap(l *zap.Logger) Logger {
	return &zapLogger{logger: l}
}

func baseZapConfig(environment string) zap.Config {
	if strings.ToLower(environment) == "development" {
		return zap.NewDevelopmentConfig()
	}
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, fieldsToZapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, fieldsToZapFields(fields)...)
}

func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, fieldsToZapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, fieldsToZapFields(fields)...)
}

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{
		logger: l.logger.With(fieldsToZapFields(fields)...),
	}
}

func parseZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fieldsToZapFields(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		switch v := field.Value.(type) {
		case string:
			zapFields = append(zapFields, zap.String(field.Key, v))
		case int:
			zapFields = append(zapFields, zap.Int(field.Key, v))
		case bool:
			zapFields = append(zapFields, zap.Bool(field.Key, v))
		case []string:
			zapFields = append(zapFields, zap.Strings(field.Key, v))
		case time.Duration:
			zapFields = append(zapFields, zap.Duration(field.Key, v))
		case error:
			zapFields = append(zapFields, zap.NamedError(field.Key, v))
		default:
			zapFields = append(zapFields, zap.Any(field.Key, v))
		}
	}
	return zapFields
}
