package commands

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/erraggy/oasbundler/bundler"
)

// ZapAdapter wraps a *zap.SugaredLogger to implement bundler.Logger.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a ZapAdapter from a *zap.Logger.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	return &ZapAdapter{logger: logger.Sugar()}
}

// Debug implements bundler.Logger.
func (z *ZapAdapter) Debug(msg string, attrs ...any) { z.logger.Debugw(msg, attrs...) }

// Info implements bundler.Logger.
func (z *ZapAdapter) Info(msg string, attrs ...any) { z.logger.Infow(msg, attrs...) }

// Warn implements bundler.Logger.
func (z *ZapAdapter) Warn(msg string, attrs ...any) { z.logger.Warnw(msg, attrs...) }

// Error implements bundler.Logger.
func (z *ZapAdapter) Error(msg string, attrs ...any) { z.logger.Errorw(msg, attrs...) }

// With implements bundler.Logger.
func (z *ZapAdapter) With(attrs ...any) bundler.Logger {
	return &ZapAdapter{logger: z.logger.With(attrs...)}
}

var _ bundler.Logger = (*ZapAdapter)(nil)

// newZapLogger builds the CLI logger writing to w. Verbose mode uses the
// development console encoding at debug level; otherwise production JSON
// at warn level, so only collisions and failures show up.
func newZapLogger(verbose bool, w io.Writer) *zap.Logger {
	cfg := zap.NewProductionConfig()
	level := zapcore.WarnLevel
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		level = zapcore.DebugLevel
	}

	var enc zapcore.Encoder
	if cfg.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	} else {
		enc = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core)
}
