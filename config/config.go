package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/thisisjab/tably/source"
	"github.com/thisisjab/tably/translate"
)

// Config is the optional YAML run configuration for the tably command. Empty
// fields fall back to stdin, stdout, and an info-level colored logger.
type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Input  string       `yaml:"input"`
	Output string       `yaml:"output"`
	Watch  bool         `yaml:"watch"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Type  string `yaml:"type"`
}

// Parse builds the translator configuration and the logger from cfg.
func (cfg Config) Parse() (*translate.Config, *slog.Logger, error) {
	logger, err := parseLoggerConfig(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create logger: %w", err)
	}

	if cfg.Watch && cfg.Input == "" {
		return nil, logger, fmt.Errorf("watch mode needs an input file")
	}

	var src source.Source
	if cfg.Input == "" {
		src = source.NewReaderSource("stdin", os.Stdin)
	} else {
		src = source.NewFileSource(logger, cfg.Input)
	}

	var sink translate.Sink
	if cfg.Output == "" {
		sink = translate.NewWriterSink("stdout", os.Stdout)
	} else {
		sink = translate.NewFileSink(cfg.Output)
	}

	return &translate.Config{
		Source: src,
		Sink:   sink,
	}, logger, nil
}

func parseLoggerConfig(cfg LoggerConfig) (*slog.Logger, error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	// Logs go to stderr; stdout belongs to the YAML document.
	w := os.Stderr

	var handler slog.Handler
	switch cfg.Type {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "colored-text", "":
		handler = tint.NewHandler(w, &tint.Options{Level: level})
	default:
		return nil, fmt.Errorf("invalid log type: %s", cfg.Type)
	}

	return slog.New(handler), nil
}
