// Package logging builds the base zap loggers used by the service mains.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing to stdout, tagged with the service and
// environment. Setting LOG_FILE tees the stream into that file as well.
func New(service, env string) (*zap.Logger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.MessageKey = "msg"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	sink := zapcore.AddSync(os.Stdout)
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, err
		}
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(f))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zap.InfoLevel)
	logger := zap.New(core, zap.AddCaller()).With(
		zap.String("service", service),
		zap.String("env", env),
	)
	return logger, nil
}

// Must is New with a panic on failure, for use at process start.
func Must(service, env string) *zap.Logger {
	logger, err := New(service, env)
	if err != nil {
		panic(err)
	}
	return logger
}

// System tags a logger for lines emitted outside any request, keeping the
// trace fields present on every entry.
func System(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		logger = zap.L()
	}
	return logger.With(
		zap.String("trace_id", "system"),
		zap.String("span_id", "system"),
	)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
