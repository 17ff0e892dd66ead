// Package logging provides structured logging functionality.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string
	Console    bool
	File       bool
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultLogConfig returns the default logging configuration.
func DefaultLogConfig() LogConfig {
	home, _ := os.UserHomeDir()
	return LogConfig{
		Level:      "info",
		Console:    true,
		File:       true,
		FilePath:   filepath.Join(home, ".config", "reflectr", "logs", "reflectr.log"),
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
	}
}

// NewLogger creates a new logger with default configuration.
func NewLogger() zerolog.Logger {
	return NewLoggerWithConfig(DefaultLogConfig())
}

// NewLoggerWithConfig creates a new logger with the specified configuration.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				if ll, ok := i.(string); ok {
					switch ll {
					case "debug":
						return "\033[36mDBG\033[0m"
					case "info":
						return "\033[32mINF\033[0m"
					case "warn":
						return "\033[33mWRN\033[0m"
					case "error":
						return "\033[31mERR\033[0m"
					default:
						return ll
					}
				}
				return "???"
			},
		}
		writers = append(writers, consoleWriter)
	}

	if cfg.File {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err == nil {
			fileWriter := &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			}
			writers = append(writers, fileWriter)
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stderr
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	return zerolog.New(writer).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetDebugLevel sets the global log level to debug.
func SetDebugLevel() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// WithUser adds a user id to the logger context.
func WithUser(logger zerolog.Logger, userID string) zerolog.Logger {
	return logger.With().Str("user_id", userID).Logger()
}

// WithTrade adds a trade id to the logger context.
func WithTrade(logger zerolog.Logger, tradeID string) zerolog.Logger {
	return logger.With().Str("trade_id", tradeID).Logger()
}

// LogCheckIn logs a pre-trade check-in event.
func LogCheckIn(logger zerolog.Logger, tradeID, symbol, state string, impulsiveness int, warned bool) {
	logger.Info().
		Str("event", "checkin").
		Str("trade_id", tradeID).
		Str("symbol", symbol).
		Str("state", state).
		Int("impulsiveness", impulsiveness).
		Bool("risk_warning", warned).
		Msg("Trade checked in")
}

// LogDebrief logs a post-trade debrief event.
func LogDebrief(logger zerolog.Logger, tradeID, outcome string, followedPlan, tilt bool) {
	logger.Info().
		Str("event", "debrief").
		Str("trade_id", tradeID).
		Str("outcome", outcome).
		Bool("followed_plan", followedPlan).
		Bool("tilt", tilt).
		Msg("Trade debriefed")
}

// LogInsight logs an AI insight request.
func LogInsight(logger zerolog.Logger, trades int, duration time.Duration, fallback bool) {
	logger.Info().
		Str("event", "insight").
		Int("trades", trades).
		Dur("duration", duration).
		Bool("fallback", fallback).
		Msg("Insight generated")
}

// LogUpgrade logs an entitlement upgrade.
func LogUpgrade(logger zerolog.Logger, userID string, alreadyPro bool) {
	logger.Info().
		Str("event", "upgrade").
		Str("user_id", userID).
		Bool("already_pro", alreadyPro).
		Msg("Pro upgrade processed")
}
