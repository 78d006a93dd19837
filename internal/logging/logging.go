// Package logging builds the application logger: human-readable
// timestamped lines, color-coded by severity on the console and written
// plain to a rotated log file.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" json:"level"`

	// TimeFormat is the timestamp layout (Go time format).
	TimeFormat string `mapstructure:"time-format" json:"time-format"`

	// File is the log file path.
	File string `mapstructure:"file" json:"file"`

	// MaxSize is the maximum size in megabytes before rotation.
	MaxSize int `mapstructure:"max-size" json:"max-size"`

	// MaxBackups is the maximum number of rotated files to retain.
	MaxBackups int `mapstructure:"max-backups" json:"max-backups"`

	// MaxAge is the maximum number of days to retain rotated files.
	MaxAge int `mapstructure:"max-age" json:"max-age"`

	// Compress gzips rotated files.
	Compress bool `mapstructure:"compress" json:"compress"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		TimeFormat: "2006-01-02 15:04:05.000",
		File:       "magnet-framer.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// New creates a logger that tees every entry to the console and the
// configured log file.
func New(config Config) *zap.Logger {
	config.applyDefaults()
	level := config.zapLevel()

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  true,
	})

	return zap.New(zapcore.NewTee(
		zapcore.NewCore(consoleEncoder(config), zapcore.AddSync(os.Stdout), level),
		zapcore.NewCore(fileEncoder(config), fileSink, level),
	))
}

// zapLevel converts the string level to zapcore.Level.
func (c Config) zapLevel() zapcore.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// applyDefaults applies default values to empty fields.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Level == "" {
		c.Level = defaults.Level
	}
	if c.TimeFormat == "" {
		c.TimeFormat = defaults.TimeFormat
	}
	if c.File == "" {
		c.File = defaults.File
	}
	if c.MaxSize == 0 {
		c.MaxSize = defaults.MaxSize
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = defaults.MaxBackups
	}
	if c.MaxAge == 0 {
		c.MaxAge = defaults.MaxAge
	}
}

func consoleEncoder(config Config) zapcore.Encoder {
	cfg := encoderConfig(config)
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func fileEncoder(config Config) zapcore.Encoder {
	cfg := encoderConfig(config)
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func encoderConfig(config Config) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(config.TimeFormat),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}
