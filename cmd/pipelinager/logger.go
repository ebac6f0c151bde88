package main

import (
	"github.com/viant/pipelinager/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger creates production json logger or development console logger
func newLogger(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}
