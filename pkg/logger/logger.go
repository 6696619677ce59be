package logger

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/fundtracker/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout = "15:04:05 02-01-2006"
	name       = "fundtracker"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger replaces the global zap logger. The console encoding is meant
// for a terminal; json is for log shippers.
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[strings.ToLower(conf.LogLvl)]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	encoding, encodeConfig, err := encoder(conf.LogFormat)
	if err != nil {
		return err
	}

	c := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          encoding,
		EncoderConfig:     encodeConfig,
		DisableStacktrace: lvl > zapcore.DebugLevel,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named(name))

	return nil
}

func encoder(format string) (string, zapcore.EncoderConfig, error) {
	switch strings.ToLower(format) {
	case "", config.LogFormatConsole:
		return config.LogFormatConsole, zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		}, nil
	case config.LogFormatJSON:
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeDuration = zapcore.MillisDurationEncoder
		return config.LogFormatJSON, cfg, nil
	}
	return "", zapcore.EncoderConfig{}, fmt.Errorf("unsupported log format: %s", format)
}
