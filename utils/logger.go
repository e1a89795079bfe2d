package utils

import (
	"sync"

	"rentride/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// GetLogger returns the process-wide zap logger, building it on first use.
// Production gets JSON at info level; everything else gets the colorized
// console encoder at debug level.
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if config.IsProduction() {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		var err error
		logger, err = cfg.Build()
		if err != nil {
			panic("logger init failed: " + err.Error())
		}
		zap.ReplaceGlobals(logger)
	})
	return logger
}
