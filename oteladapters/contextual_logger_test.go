package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/AntonStoeckl/lending-registry-go/oteladapters"
)

func Test_SlogBridgeLogger_WritesToConsoleHandler(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	console := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLogger("test", console, otelslog.WithLoggerProvider(noop.NewLoggerProvider()))
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message")
	logger.InfoContext(ctx, "User user123 is borrowing book: book1", "book_id", "book1")
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"level":"DEBUG"`)
	assert.Contains(t, output, `"msg":"User user123 is borrowing book: book1"`)
	assert.Contains(t, output, `"book_id":"book1"`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"level":"ERROR"`)
}

func Test_SlogBridgeLogger_RespectsConsoleLevel(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	console := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := oteladapters.NewSlogBridgeLogger("test", console, otelslog.WithLoggerProvider(noop.NewLoggerProvider()))

	// act
	logger.InfoContext(context.Background(), "info message")
	logger.WarnContext(context.Background(), "warn message")

	// assert
	assert.NotContains(t, buf.String(), "info message")
	assert.Contains(t, buf.String(), "warn message")
}
