package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger builds JSON logger writing to stderr and installs it as the global one.
func InitLogger(environment, logLevel string) *zap.Logger {
	zapLogLevel, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		zapLogLevel = zap.WarnLevel
	}

	zapConfig := zap.NewProductionConfig()

	zapConfig.Level.SetLevel(zapLogLevel)
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapConfig.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	logger = logger.WithOptions(zap.AddStacktrace(zapcore.FatalLevel))
	if environment != "" {
		logger = logger.With(zap.String("environment", environment))
	}

	zap.ReplaceGlobals(logger)

	return logger
}
