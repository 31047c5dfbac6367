// Package logging provides logging facilities for the editor.
//
// The terminal belongs to the editor while it runs, so log lines go to a
// file instead of stdout.
package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper of zap.SugaredLogger.
type Logger = *zap.SugaredLogger

// DefaultFile is where logs go unless SetOutput is called.
const DefaultFile = "app.log"

var (
	mu         sync.Mutex
	logLevel   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	outputPath = DefaultFile
	sink       zapcore.WriteSyncer
	closeSink  func()
)

// SetLogLevel sets the level of every logger with ["debug", "info", "warn", "error"].
// Unlike the output, the level can be changed while loggers are in use.
func SetLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		logLevel.SetLevel(zapcore.DebugLevel)
	case "info":
		logLevel.SetLevel(zapcore.InfoLevel)
	case "warn":
		logLevel.SetLevel(zapcore.WarnLevel)
	case "error":
		logLevel.SetLevel(zapcore.ErrorLevel)
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}

// SetOutput sets the file loggers created afterwards append to.
func SetOutput(path string) {
	mu.Lock()
	defer mu.Unlock()

	if path == outputPath {
		return
	}
	if closeSink != nil {
		closeSink()
	}
	outputPath = path
	sink, closeSink = nil, nil
}

// New creates a new logger with the given name.
func New(name string) Logger {
	mu.Lock()
	defer mu.Unlock()

	if sink == nil {
		ws, closer, err := zap.Open(outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file %s: %v\n", outputPath, err)
			return Nop()
		}
		sink, closeSink = ws, closer
	}

	return zap.New(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), sink, logLevel),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	).Named(name).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return zap.NewNop().Sugar()
}

// Sync flushes the log file.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()

	if sink == nil {
		return nil
	}
	return sink.Sync()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
