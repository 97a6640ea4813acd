package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines the configuration for the logger.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, console
	EnableColor bool   // only honoured in console mode
}

const coloredConsole = "colored-console"

var (
	globalLogger *zap.Logger
	once         sync.Once
	registerOnce sync.Once
)

// DefaultConfig reads LOG_LEVEL, LOG_FORMAT, NO_COLOR and LOG_COLOR.
func DefaultConfig() Config {
	return Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Format:      getEnv("LOG_FORMAT", "console"),
		EnableColor: shouldEnableColor(),
	}
}

// New builds a standalone logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := "json"
	if cfg.Format == "console" {
		encoding = "console"
		encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		if cfg.EnableColor {
			encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoding = coloredConsole
			if err := registerColoredConsole(); err != nil {
				return nil, err
			}
		}
	}

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Encoding:          encoding,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: cfg.Level != "debug",
	}

	return zapConfig.Build()
}

func registerColoredConsole() error {
	var err error
	registerOnce.Do(func() {
		err = zap.RegisterEncoder(coloredConsole, func(ec zapcore.EncoderConfig) (zapcore.Encoder, error) {
			return NewColoredConsoleEncoder(ec), nil
		})
	})
	if err != nil {
		return fmt.Errorf("register %s encoder: %w", coloredConsole, err)
	}
	return nil
}

// Initialize sets up the global logger. Only the first call has an effect.
func Initialize(cfg Config) {
	once.Do(func() {
		l, err := New(cfg)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		globalLogger = l.WithOptions(zap.AddCallerSkip(1))
	})
}

// Get returns the global logger, initializing it from the environment if needed.
func Get() *zap.Logger {
	Initialize(DefaultConfig())
	return globalLogger
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.ToLower(value)
	}
	return fallback
}

func parseLevel(lvl string) zapcore.Level {
	l, err := zapcore.ParseLevel(strings.ToLower(lvl))
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// shouldEnableColor honours NO_COLOR (https://no-color.org/) then LOG_COLOR.
func shouldEnableColor() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	if val := os.Getenv("LOG_COLOR"); val != "" {
		return val == "true" || val == "1"
	}
	return true
}
