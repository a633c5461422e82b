package internal

import (
	"fmt"
	"os"
	"time"

	"borica/entity"
	"borica/services"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes JSON records through zap and mirrors everything at info level
// and above to an optional LogWriter.
type Logger struct {
	category string
	zap      *zap.Logger
	writer   services.LogWriter
}

// NewLogger creates a logger for category; debug enables debug records.
// writer may be nil.
func NewLogger(category string, debug bool, writer services.LogWriter) *Logger {
	level := "info"
	if debug {
		level = "debug"
	}
	return NewLoggerLevel(category, level, writer)
}

// NewLoggerLevel is NewLogger with a named level: debug, info, warn or error.
func NewLoggerLevel(category, level string, writer services.LogWriter) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	zapLogger, err := config.Build()
	if err != nil {
		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.Lock(os.Stderr),
			parseLevel(level),
		))
	}
	return newLoggerWithCore(category, zapLogger, writer)
}

func newLoggerWithCore(category string, zapLogger *zap.Logger, writer services.LogWriter) *Logger {
	return &Logger{
		category: category,
		zap:      zapLogger.With(zap.String("category", category)),
		writer:   writer,
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) Debug(text string) {
	l.zap.Debug(text)
}

func (l *Logger) Info(text string) {
	l.zap.Info(text)
	l.mirror(zapcore.InfoLevel, text, nil)
}

func (l *Logger) Warn(text string) {
	l.zap.Warn(text)
	l.mirror(zapcore.WarnLevel, text, nil)
}

func (l *Logger) Error(text string, err error) {
	l.zap.Error(text, zap.Error(err))
	l.mirror(zapcore.ErrorLevel, text, err)
}

func (l *Logger) Sync() error {
	return l.zap.Sync()
}

func (l *Logger) mirror(level zapcore.Level, text string, err error) {
	if l.writer == nil || !l.zap.Core().Enabled(level) {
		return
	}
	message := &entity.LogMessage{
		Time:     time.Now(),
		Level:    level.String(),
		Category: l.category,
		Text:     text,
	}
	if err != nil {
		message.Error = err.Error()
	}
	if werr := l.writer.WriteLogMessage(message); werr != nil {
		l.zap.Warn(fmt.Sprintf("write log message: %v", werr))
	}
}

// secret masks an identifier for log output.
func secret(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
