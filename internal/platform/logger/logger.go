package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	fieldRequestID  = "request_id"
	fieldContractID = "contract_id"
)

// newLogger builds the base Logger for a Context. The RequestID field is
// attached if the Context carries one.
func newLogger(ctx context.Context) *zap.Logger {
	logger := build()

	if v := ctx.Value(KeyRequestID); v != nil {
		logger = logger.With(zap.String(fieldRequestID, v.(string)))
	}

	return logger
}

func build() *zap.Logger {
	if os.Getenv("DEV_LOGGING") != "" {
		logger, _ := zap.NewDevelopment()
		return logger
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		// fall back to a no-op logger rather than refusing to run
		return zap.NewNop()
	}

	return logger
}
