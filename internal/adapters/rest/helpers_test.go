package rest

import (
	"io"
	"log/slog"
	logger_adapter "marketplace-proxy/internal/adapters/logger"
	"marketplace-proxy/internal/core/port"
)

func discardLogger() port.LoggerPort {
	return logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer: io.Discard,
		Level:  slog.LevelError,
	})
}
