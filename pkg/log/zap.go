package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the zap-backed Logger from config. Falls back to sane
// defaults on unknown values instead of failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode == "debug" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Mode == "debug",
		Encoding:         cfg.Encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if zapCfg.Encoding == "" {
		zapCfg.Encoding = "console"
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any)  { l.sugar.Debug(arg...) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)   { l.sugar.Info(arg...) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)   { l.sugar.Warn(arg...) }
func (l *zapLogger) Error(ctx context.Context, arg ...any)  { l.sugar.Error(arg...) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any)  { l.sugar.Fatal(arg...) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.sugar.DPanic(arg...) }
func (l *zapLogger) Panic(ctx context.Context, arg ...any)  { l.sugar.Panic(arg...) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}

func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}

func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}
