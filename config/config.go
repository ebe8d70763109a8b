package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/AntonStoeckl/lending-registry-go/core"
	"github.com/AntonStoeckl/lending-registry-go/lending"
)

const (
	EnvLogLevel             = "LENDING_LOG_LEVEL"
	EnvLogFormat            = "LENDING_LOG_FORMAT"
	EnvSeed                 = "LENDING_SEED"
	EnvObservabilityEnabled = "LENDING_OBSERVABILITY_ENABLED"
)

var (
	ErrLoadingEnvFileFailed = errors.New("loading env file failed")
	ErrInvalidLogLevel      = errors.New("invalid log level")
	ErrInvalidLogFormat     = errors.New("invalid log format")
	ErrInvalidBool          = errors.New("invalid boolean")
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config holds all settings of the CLI.
type Config struct {
	LogLevel             slog.Level
	LogFormat            LogFormat
	Seed                 lending.Seed
	ObservabilityEnabled bool
}

// Load reads the optional env files (".env" if none are given) and then the environment.
// A missing env file is not an error. A variable that is unset or blank in the environment
// takes its value from the first env file defining it, otherwise its default.
// The process environment is never modified.
func Load(envFiles ...string) (Config, error) {
	fileValues, err := readEnvFiles(envFiles)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) string {
		if value := os.Getenv(key); strings.TrimSpace(value) != "" {
			return value
		}

		return fileValues[key]
	}

	var errs []error

	logLevel, err := ParseLogLevel(withDefault(lookup(EnvLogLevel), "info"))
	errs = append(errs, err)

	logFormat, err := ParseLogFormat(withDefault(lookup(EnvLogFormat), string(LogFormatText)))
	errs = append(errs, err)

	seed := lending.DefaultSeed()
	if raw := strings.TrimSpace(lookup(EnvSeed)); raw != "" {
		seed, err = ParseSeed(raw)
		errs = append(errs, err)
	}

	rawObservability := lookup(EnvObservabilityEnabled)
	observabilityEnabled, err := strconv.ParseBool(withDefault(rawObservability, "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: %w: %q", EnvObservabilityEnabled, ErrInvalidBool, rawObservability))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel:             logLevel,
		LogFormat:            logFormat,
		Seed:                 seed,
		ObservabilityEnabled: observabilityEnabled,
	}, nil
}

// ParseLogLevel accepts debug, info, warn and error, in any case.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%s: %w: %q", EnvLogLevel, ErrInvalidLogLevel, raw)
	}

	return level, nil
}

// ParseLogFormat accepts text and json.
func ParseLogFormat(raw string) (LogFormat, error) {
	switch format := LogFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case LogFormatText, LogFormatJSON:
		return format, nil
	default:
		return LogFormatText, fmt.Errorf("%s: %w: %q", EnvLogFormat, ErrInvalidLogFormat, raw)
	}
}

// ParseSeed reads a comma separated list of book IDs. A book written as id=user is borrowed by user.
func ParseSeed(raw string) (lending.Seed, error) {
	var seed lending.Seed

	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		bookID, borrower, borrowed := strings.Cut(item, "=")
		entry := lending.SeedEntry{BookID: strings.TrimSpace(bookID), Status: core.Available}

		if borrowed {
			entry.Status = core.Borrowed
			entry.BorrowedBy = strings.TrimSpace(borrower)
		}

		seed = append(seed, entry)
	}

	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvSeed, err)
	}

	return seed, nil
}

// NewLogHandler builds the console slog.Handler described by cfg.
func NewLogHandler(w io.Writer, cfg Config) slog.Handler {
	options := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.LogFormat == LogFormatJSON {
		return slog.NewJSONHandler(w, options)
	}

	return slog.NewTextHandler(w, options)
}

// readEnvFiles merges the env files; a key keeps the value of the first file that defines it.
func readEnvFiles(envFiles []string) (map[string]string, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	merged := make(map[string]string)

	for _, envFile := range envFiles {
		values, err := godotenv.Read(envFile)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFileFailed, fmt.Errorf("%s: %w", envFile, err))
		}

		for key, value := range values {
			if _, exists := merged[key]; !exists {
				merged[key] = value
			}
		}
	}

	return merged, nil
}

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
