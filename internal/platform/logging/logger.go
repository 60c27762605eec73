package logging

import (
	"errors"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/banner-server/internal/platform/timeutil"
)

// ServiceName identifies this process in the serviceContext of every entry.
const ServiceName = "banner-server"

// defaultVersion tags entries when Logger is used before Init.
const defaultVersion = "dev"

var (
	loggerOnce sync.Once
	baseLogger *zap.Logger
	loggerErr  error
)

// Init builds the process logger and tags every entry with the service name and
// version. Only the first call to Init or Logger takes effect; later calls
// return the original build error.
func Init(version string) error {
	loggerOnce.Do(func() {
		baseLogger, loggerErr = newLogger(version)
		if loggerErr != nil {
			baseLogger = zap.NewNop()
		}
	})
	return loggerErr
}

// Logger returns the process logger, building it with the default version when
// Init has not run.
func Logger() *zap.Logger {
	_ = Init(defaultVersion)
	return baseLogger
}

// Sync flushes buffered entries. Errors from syncing a terminal or pipe stdout
// are dropped.
func Sync() error {
	if err := Logger().Sync(); err != nil && !ignorableSyncErr(err) {
		return err
	}
	return nil
}

func ignorableSyncErr(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}

func newLogger(version string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = encodeTimeMicros
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.EncodeLevel = encodeSeverity
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.CallerKey = "caller"

	return cfg.Build(
		zap.AddCaller(),
		zap.Fields(serviceContext(version)),
	)
}

// serviceContext is the Cloud Error Reporting grouping key.
func serviceContext(version string) zap.Field {
	return zap.Dict("serviceContext",
		zap.String("service", ServiceName),
		zap.String("version", version),
	)
}

func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(timeutil.RFC3339Micros))
}

// encodeSeverity maps zap levels to Cloud Logging severity names.
func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	severity := "DEFAULT"
	switch level {
	case zapcore.DebugLevel:
		severity = "DEBUG"
	case zapcore.InfoLevel:
		severity = "INFO"
	case zapcore.WarnLevel:
		severity = "WARNING"
	case zapcore.ErrorLevel:
		severity = "ERROR"
	case zapcore.DPanicLevel:
		severity = "CRITICAL"
	case zapcore.PanicLevel:
		severity = "ALERT"
	case zapcore.FatalLevel:
		severity = "EMERGENCY"
	}
	enc.AppendString(severity)
}
