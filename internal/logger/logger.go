// Package logger builds the zap logger used by every component.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	isatty "github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing to w. Format is one of "auto", "logfmt" or
// "json"; auto picks the console encoder when w is an interactive terminal
// and logfmt otherwise.
func New(w io.Writer, format, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: parse level %q: %w", level, err)
	}

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}
	config.EncodeDuration = func(d time.Duration, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(d.String())
	}

	encoder, err := newEncoder(w, format, config)
	if err != nil {
		return nil, err
	}

	return zap.New(zapcore.NewCore(
		encoder,
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)), nil
}

func newEncoder(w io.Writer, format string, config zapcore.EncoderConfig) (zapcore.Encoder, error) {
	switch format {
	case "auto", "":
		if istty(w) {
			return zapcore.NewConsoleEncoder(config), nil
		}
		return zaplogfmt.NewEncoder(config), nil
	case "logfmt":
		return zaplogfmt.NewEncoder(config), nil
	case "json":
		return zapcore.NewJSONEncoder(config), nil
	default:
		return nil, fmt.Errorf("logger: unknown format %q", format)
	}
}

func istty(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
