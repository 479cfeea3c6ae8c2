package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Options selects and configures a Logger backend.
type Options struct {
	Backend string // "slog" (default) or "zap"
	Level   string // debug, info, warn, error
	Output  io.Writer
}

// New builds a Logger from opts. An unknown level falls back to info; an
// unknown backend is an error.
func New(opts Options) (Logger, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		var level slog.Level
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			level = slog.LevelInfo
		}
		h := slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: level})
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		level := zapcore.InfoLevel
		if err := level.Set(strings.ToLower(opts.Level)); err != nil {
			level = zapcore.InfoLevel
		}
		encCfg := zapcore.EncoderConfig{
			MessageKey:  "message",
			LevelKey:    "level",
			TimeKey:     "ts",
			EncodeLevel: zapcore.LowercaseLevelEncoder,
			EncodeTime:  zapcore.ISO8601TimeEncoder,
		}
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(opts.Output), level)
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}
