// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported record encodings.
const (
	JSON    = "json"
	CONSOLE = "console"
	LOGFMT  = "logfmt"
)

const defaultLevel = zapcore.InfoLevel

// Config is used to provide dependencies to New.
type Config struct {
	// Level is the minimum enabled level ("debug", "info", "warn", "error").
	// If Level is not provided, INFO is used.
	Level string

	// Format is one of "json", "console" or "logfmt". If Format is not
	// provided, console is used.
	Format string

	// Writer is the sink for encoded log records. If a Writer is not provided,
	// os.Stderr will be used as the log sink.
	Writer io.Writer
}

// New creates a logger from c. An error is returned for unknown levels or
// formats.
func New(c Config) (*zap.Logger, error) {
	level := defaultLevel
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(c.Level))); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", c.Level)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case JSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case LOGFMT:
		encoder = zaplogfmt.NewEncoder(encoderConfig)
	case CONSOLE, "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("unknown log format %q", c.Format)
	}

	core := zapcore.NewCore(encoder, writeSyncer(c.Writer), level)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(writeSyncer(c.Writer))), nil
}

// writeSyncer adapts w for zap. Writers, with the exception of an *os.File,
// need to be safe for concurrent use by multiple go routines.
func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	if w == nil {
		w = os.Stderr
	}
	switch t := w.(type) {
	case *os.File:
		return zapcore.Lock(t)
	case zapcore.WriteSyncer:
		return t
	default:
		return zapcore.AddSync(w)
	}
}
